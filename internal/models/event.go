package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Event is an announcement created by a teacher. Immutable after
// creation in the visible flows.
type Event struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
	Title        string         `json:"title" gorm:"not null"`
	Time         time.Time      `json:"time"`
	Participants pq.StringArray `json:"participants" gorm:"type:text[]"`
	Primary      bool           `json:"primary" gorm:"column:is_primary"`
	TeacherID    uint           `json:"teacher_id"`
	Teacher      *User          `json:"teacher,omitempty"`
}
