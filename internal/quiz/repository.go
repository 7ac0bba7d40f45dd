package quiz

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"quiz-platform/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUserByEmail returns (nil, nil) when no account has that email.
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("Error finding user by email %s: %v", email, err)
		return nil, err
	}
	return &user, nil
}

// GetStudents lists every account whose role is STUDENT.
func (r *Repository) GetStudents() ([]models.User, error) {
	var students []models.User
	err := r.db.Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("UPPER(roles.name) = ?", strings.ToUpper(models.RoleStudent)).
		Order("users.id ASC").
		Find(&students).Error
	if err != nil {
		log.Printf("Error listing students: %v", err)
		return nil, err
	}
	return students, nil
}

// CreateQuizWithAssignments persists the quiz (questions included, by
// ownership) and the fan-out records as one transaction. The
// assignment rows go in as a single batch insert.
func (r *Repository) CreateQuizWithAssignments(quiz *models.Quiz, assignments []models.StudentQuiz) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		for i := range assignments {
			assignments[i].QuizID = quiz.ID
		}
		return tx.Create(&assignments).Error
	})
	if err != nil {
		log.Printf("Error creating quiz %q: %v", quiz.Title, err)
		return err
	}
	log.Printf("Created quiz %d with %d assignments", quiz.ID, len(assignments))
	return nil
}

func (r *Repository) GetQuizzesByTeacher(teacherID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := r.db.Preload("Teacher").
		Where("teacher_id = ?", teacherID).
		Order("id ASC").
		Find(&quizzes).Error
	if err != nil {
		log.Printf("Error getting quizzes for teacher %d: %v", teacherID, err)
		return nil, err
	}
	return quizzes, nil
}

// GetAssignmentsByStudentEmail returns the student's assignment rows
// with quiz and owning teacher loaded, ordered by id so the listing is
// stable.
func (r *Repository) GetAssignmentsByStudentEmail(email string) ([]models.StudentQuiz, error) {
	var records []models.StudentQuiz
	err := r.db.
		Joins("JOIN users ON users.id = student_quizzes.student_id").
		Where("users.email = ?", email).
		Preload("Quiz").
		Preload("Quiz.Teacher").
		Order("student_quizzes.id ASC").
		Find(&records).Error
	if err != nil {
		log.Printf("Error getting assignments for student %s: %v", email, err)
		return nil, err
	}
	return records, nil
}
