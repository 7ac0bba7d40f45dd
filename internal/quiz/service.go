package quiz

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"quiz-platform/internal/models"
)

// Store is the slice of the persistence layer the quiz flows need.
type Store interface {
	GetUserByEmail(email string) (*models.User, error)
	GetStudents() ([]models.User, error)
	CreateQuizWithAssignments(quiz *models.Quiz, assignments []models.StudentQuiz) error
	GetQuizzesByTeacher(teacherID uint) ([]models.Quiz, error)
	GetAssignmentsByStudentEmail(email string) ([]models.StudentQuiz, error)
}

// Notifier pushes a message to every connected dashboard client.
type Notifier interface {
	Broadcast(messageType string, data interface{})
}

type Service struct {
	repo     Store
	notifier Notifier
}

func NewService(repo Store, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// CreateQuiz builds the quiz with its questions, snapshots the total
// points, and assigns the quiz to every current student in one
// transaction. With zero students the quiz is still created.
func (s *Service) CreateQuiz(req models.QuizCreateRequest) error {
	teacher, err := models.RequireTeacher(s.repo, req.TeacherEmail, req.TeacherRole)
	if err != nil {
		return err
	}

	questions := make([]models.Question, 0, len(req.Questions))
	totalPoints := 0
	for _, input := range req.Questions {
		questions = append(questions, models.Question{
			Text:    input.Text,
			Points:  input.Points,
			Type:    input.Type,
			Options: pq.StringArray(input.Options),
			Correct: datatypes.JSON(input.Correct),
		})
		totalPoints += input.Points
	}

	quiz := &models.Quiz{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Difficulty:       req.Difficulty,
		TimeLimit:        req.TimeLimit,
		PassingScore:     req.PassingScore,
		Randomize:        req.Randomize,
		ImmediateResults: req.ImmediateResults,
		TotalPoints:      totalPoints,
		TeacherID:        teacher.ID,
		Teacher:          teacher,
		Questions:        questions,
	}

	students, err := s.repo.GetStudents()
	if err != nil {
		return err
	}

	assignments := make([]models.StudentQuiz, 0, len(students))
	for _, student := range students {
		assignments = append(assignments, models.StudentQuiz{
			StudentID: student.ID,
			Coins:     totalPoints,
			Completed: false,
		})
	}

	if err := s.repo.CreateQuizWithAssignments(quiz, assignments); err != nil {
		return err
	}
	log.Printf("Quiz %d assigned to %d students", quiz.ID, len(assignments))

	if s.notifier != nil {
		s.notifier.Broadcast("quiz_created", quiz.ToSummary())
	}
	return nil
}

// QuizzesByTeacher lists a teacher's quizzes as flat summaries, no
// question lists.
func (s *Service) QuizzesByTeacher(teacherID uint) ([]models.QuizSummary, error) {
	quizzes, err := s.repo.GetQuizzesByTeacher(teacherID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.QuizSummary, 0, len(quizzes))
	for i := range quizzes {
		summaries = append(summaries, quizzes[i].ToSummary())
	}
	return summaries, nil
}

// StudentQuizzes lists the assignment records for a student email,
// projected for display.
func (s *Service) StudentQuizzes(email string) ([]models.StudentQuizView, error) {
	records, err := s.repo.GetAssignmentsByStudentEmail(email)
	if err != nil {
		return nil, err
	}

	views := make([]models.StudentQuizView, 0, len(records))
	for i := range records {
		views = append(views, records[i].ToView())
	}
	return views, nil
}
