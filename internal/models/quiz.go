package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Quiz struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Difficulty       string         `json:"difficulty"`
	TimeLimit        int            `json:"timeLimit"`
	PassingScore     int            `json:"passingScore"`
	Randomize        bool           `json:"randomize"`
	ImmediateResults bool           `json:"immediateResults"`
	// TotalPoints is a snapshot of the question point sum taken at
	// creation time. It is not recomputed if questions change.
	TotalPoints int        `json:"totalPoints"`
	TeacherID   uint       `json:"teacher_id"`
	Teacher     *User      `json:"teacher,omitempty"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type Question struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	QuizID    uint           `json:"quiz_id"`
	Text      string         `json:"text" gorm:"not null"`
	Points    int            `json:"points"`
	Type      string         `json:"type"`
	Options   pq.StringArray `json:"options" gorm:"type:text[]"`
	// Correct holds the answer encoding as submitted. Its JSON shape
	// depends on Type (single choice, multiple choice, ...), so it is
	// stored opaquely.
	Correct datatypes.JSON `json:"correct" gorm:"type:jsonb"`
}

// StudentQuiz links one student to one quiz and tracks that student's
// progress. One row per (student, quiz) pair, created when the quiz is
// assigned.
type StudentQuiz struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	StudentID uint           `json:"student_id"`
	Student   *User          `json:"student,omitempty"`
	QuizID    uint           `json:"quiz_id"`
	Quiz      *Quiz          `json:"quiz,omitempty"`
	Coins     int            `json:"coins"`
	Completed bool           `json:"completed" gorm:"default:false"`
}
