package event

import (
	"errors"
	"testing"
	"time"

	"quiz-platform/internal/models"
)

type stubStore struct {
	users  map[string]*models.User
	events []models.Event
}

func newStubStore() *stubStore {
	return &stubStore{users: map[string]*models.User{}}
}

func (s *stubStore) addUser(id uint, email, role string) {
	s.users[email] = &models.User{
		ID:    id,
		Email: email,
		Name:  email,
		Role:  &models.Role{Name: role},
	}
}

func (s *stubStore) GetUserByEmail(email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *stubStore) CreateEvent(event *models.Event) error {
	event.ID = uint(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

func (s *stubStore) GetAllEvents() ([]models.Event, error) {
	return s.events, nil
}

type recordingNotifier struct {
	types []string
}

func (n *recordingNotifier) Broadcast(messageType string, data interface{}) {
	n.types = append(n.types, messageType)
}

func TestCreateEventActorPreconditions(t *testing.T) {
	store := newStubStore()
	store.addUser(1, "student@example.com", "STUDENT")
	svc := NewService(store, nil)

	req := models.EventCreateRequest{Title: "Exam week"}
	if err := svc.CreateEvent(req); !errors.Is(err, models.ErrMissingActor) {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}

	req.TeacherEmail = "ghost@example.com"
	req.TeacherRole = "TEACHER"
	if err := svc.CreateEvent(req); !errors.Is(err, models.ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound, got %v", err)
	}

	// A student claiming the TEACHER role is still rejected.
	req.TeacherEmail = "student@example.com"
	if err := svc.CreateEvent(req); !errors.Is(err, models.ErrNotATeacher) {
		t.Fatalf("expected ErrNotATeacher, got %v", err)
	}

	if len(store.events) != 0 {
		t.Fatalf("expected no events persisted, got %d", len(store.events))
	}
}

func TestCreateEventAndList(t *testing.T) {
	store := newStubStore()
	store.addUser(1, "teacher@example.com", "TEACHER")
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier)

	when := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	req := models.EventCreateRequest{
		TeacherEmail: "teacher@example.com",
		TeacherRole:  "teacher",
		Title:        "Exam week",
		Time:         when,
		Participants: []string{"class A", "class B"},
		Primary:      true,
	}
	if err := svc.CreateEvent(req); err != nil {
		t.Fatalf("CreateEvent returned error: %v", err)
	}

	events, err := svc.ListEvents()
	if err != nil {
		t.Fatalf("ListEvents returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	got := events[0]
	if got.Title != "Exam week" || !got.Time.Equal(when) || !got.Primary {
		t.Fatalf("unexpected event %+v", got)
	}
	if got.TeacherID != 1 {
		t.Fatalf("expected owning teacher 1, got %d", got.TeacherID)
	}
	if len(got.Participants) != 2 {
		t.Fatalf("expected participants preserved, got %v", got.Participants)
	}

	if len(notifier.types) != 1 || notifier.types[0] != "event_created" {
		t.Fatalf("expected one event_created broadcast, got %v", notifier.types)
	}
}
