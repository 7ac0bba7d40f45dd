package event

import (
	"github.com/lib/pq"

	"quiz-platform/internal/models"
)

// Store is the slice of the persistence layer the event flows need.
type Store interface {
	GetUserByEmail(email string) (*models.User, error)
	CreateEvent(event *models.Event) error
	GetAllEvents() ([]models.Event, error)
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

// CreateEvent validates the actor like quiz creation does, then
// performs a single insert. No fan-out.
func (s *Service) CreateEvent(req models.EventCreateRequest) error {
	teacher, err := models.RequireTeacher(s.repo, req.TeacherEmail, req.TeacherRole)
	if err != nil {
		return err
	}

	event := &models.Event{
		Title:        req.Title,
		Time:         req.Time,
		Participants: pq.StringArray(req.Participants),
		Primary:      req.Primary,
		TeacherID:    teacher.ID,
		Teacher:      teacher,
	}
	if err := s.repo.CreateEvent(event); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.Broadcast("event_created", event)
	}
	return nil
}

// ListEvents returns every event record. There is no actor check on
// this listing.
func (s *Service) ListEvents() ([]models.Event, error) {
	return s.repo.GetAllEvents()
}
