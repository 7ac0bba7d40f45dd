package models

import (
	"encoding/json"
	"time"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type QuestionInput struct {
	Text    string          `json:"text" validate:"required"`
	Points  int             `json:"points"`
	Type    string          `json:"type"`
	Options []string        `json:"options"`
	Correct json.RawMessage `json:"correct"`
}

type QuizCreateRequest struct {
	TeacherEmail     string          `json:"teacherEmail"`
	TeacherRole      string          `json:"teacherRole"`
	Title            string          `json:"title" validate:"required"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Difficulty       string          `json:"difficulty"`
	TimeLimit        int             `json:"timeLimit"`
	PassingScore     int             `json:"passingScore"`
	Randomize        bool            `json:"randomize"`
	ImmediateResults bool            `json:"immediateResults"`
	Questions        []QuestionInput `json:"questions" validate:"dive"`
}

type EventCreateRequest struct {
	TeacherEmail string    `json:"teacherEmail"`
	TeacherRole  string    `json:"teacherRole"`
	Title        string    `json:"title" validate:"required"`
	Time         time.Time `json:"time"`
	Participants []string  `json:"participants"`
	Primary      bool      `json:"primary"`
}

// UserProjection is the view of an account returned on login. It never
// carries the password hash.
type UserProjection struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Coins     int    `json:"coins"`
}

func (u *User) ToProjection() UserProjection {
	roleName := ""
	if u.Role != nil {
		roleName = u.Role.Name
	}
	return UserProjection{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
		Role:      roleName,
		Coins:     u.Coins,
	}
}

type LeaderboardEntry struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Coins     int    `json:"coins"`
}

// QuizSummary is the flat projection used by the by-teacher listing.
// The owned question list is deliberately omitted.
type QuizSummary struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Difficulty       string `json:"difficulty"`
	TimeLimit        int    `json:"timeLimit"`
	PassingScore     int    `json:"passingScore"`
	Randomize        bool   `json:"randomize"`
	ImmediateResults bool   `json:"immediateResults"`
	TotalPoints      int    `json:"totalPoints"`
	TeacherName      string `json:"teacherName"`
}

func (q *Quiz) ToSummary() QuizSummary {
	teacherName := ""
	if q.Teacher != nil {
		teacherName = q.Teacher.Name
	}
	return QuizSummary{
		ID:               q.ID,
		Title:            q.Title,
		Description:      q.Description,
		Category:         q.Category,
		Difficulty:       q.Difficulty,
		TimeLimit:        q.TimeLimit,
		PassingScore:     q.PassingScore,
		Randomize:        q.Randomize,
		ImmediateResults: q.ImmediateResults,
		TotalPoints:      q.TotalPoints,
		TeacherName:      teacherName,
	}
}

type StudentQuizView struct {
	QuizTitle   string `json:"quizTitle"`
	TeacherName string `json:"teacherName"`
	Coins       int    `json:"coins"`
	Completed   bool   `json:"completed"`
}

func (sq *StudentQuiz) ToView() StudentQuizView {
	view := StudentQuizView{
		Coins:     sq.Coins,
		Completed: sq.Completed,
	}
	if sq.Quiz != nil {
		view.QuizTitle = sq.Quiz.Title
		if sq.Quiz.Teacher != nil {
			view.TeacherName = sq.Quiz.Teacher.Name
		}
	}
	return view
}
