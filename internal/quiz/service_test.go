package quiz

import (
	"encoding/json"
	"errors"
	"testing"

	"quiz-platform/internal/models"
)

type stubStore struct {
	users map[string]*models.User

	createdQuiz        *models.Quiz
	createdAssignments []models.StudentQuiz

	quizzesByTeacher map[uint][]models.Quiz
	assignments      map[string][]models.StudentQuiz
}

func newStubStore() *stubStore {
	return &stubStore{
		users:            map[string]*models.User{},
		quizzesByTeacher: map[uint][]models.Quiz{},
		assignments:      map[string][]models.StudentQuiz{},
	}
}

func (s *stubStore) addUser(id uint, email, role string) *models.User {
	u := &models.User{
		ID:    id,
		Email: email,
		Name:  email,
		Role:  &models.Role{Name: role},
	}
	s.users[email] = u
	return u
}

func (s *stubStore) GetUserByEmail(email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *stubStore) GetStudents() ([]models.User, error) {
	var students []models.User
	for _, u := range s.users {
		if u.HasRole(models.RoleStudent) {
			students = append(students, *u)
		}
	}
	return students, nil
}

func (s *stubStore) CreateQuizWithAssignments(quiz *models.Quiz, assignments []models.StudentQuiz) error {
	quiz.ID = 1
	for i := range assignments {
		assignments[i].QuizID = quiz.ID
	}
	s.createdQuiz = quiz
	s.createdAssignments = assignments
	return nil
}

func (s *stubStore) GetQuizzesByTeacher(teacherID uint) ([]models.Quiz, error) {
	return s.quizzesByTeacher[teacherID], nil
}

func (s *stubStore) GetAssignmentsByStudentEmail(email string) ([]models.StudentQuiz, error) {
	return s.assignments[email], nil
}

type recordingNotifier struct {
	types []string
}

func (n *recordingNotifier) Broadcast(messageType string, data interface{}) {
	n.types = append(n.types, messageType)
}

func createReq(email, role string, questions []models.QuestionInput) models.QuizCreateRequest {
	return models.QuizCreateRequest{
		TeacherEmail: email,
		TeacherRole:  role,
		Title:        "Algebra basics",
		Category:     "math",
		Difficulty:   "easy",
		TimeLimit:    20,
		PassingScore: 50,
		Questions:    questions,
	}
}

func TestCreateQuizActorPreconditions(t *testing.T) {
	store := newStubStore()
	store.addUser(1, "student@example.com", "STUDENT")
	svc := NewService(store, nil)

	cases := []struct {
		name  string
		email string
		role  string
		want  error
	}{
		{"missing email", "", "TEACHER", models.ErrMissingActor},
		{"missing role", "t@example.com", "", models.ErrMissingActor},
		{"unknown actor", "ghost@example.com", "TEACHER", models.ErrActorNotFound},
		{"student claiming teacher", "student@example.com", "TEACHER", models.ErrNotATeacher},
	}
	for _, tc := range cases {
		err := svc.CreateQuiz(createReq(tc.email, tc.role, nil))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if store.createdQuiz != nil || store.createdAssignments != nil {
		t.Fatalf("expected no rows created on precondition failure")
	}
}

func TestCreateQuizFanOut(t *testing.T) {
	store := newStubStore()
	store.addUser(1, "teacher@example.com", "TEACHER")
	store.addUser(2, "s1@example.com", "STUDENT")
	store.addUser(3, "s2@example.com", "STUDENT")
	store.addUser(4, "s3@example.com", "STUDENT")
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier)

	questions := []models.QuestionInput{
		{Text: "2+2?", Points: 5, Type: "single", Options: []string{"3", "4"}, Correct: json.RawMessage(`"4"`)},
		{Text: "Primes below 10?", Points: 10, Type: "multiple", Options: []string{"2", "3", "4"}, Correct: json.RawMessage(`["2","3"]`)},
		{Text: "x in x+1=3?", Points: 15, Type: "single", Options: []string{"1", "2"}, Correct: json.RawMessage(`"2"`)},
	}

	if err := svc.CreateQuiz(createReq("teacher@example.com", "teacher", questions)); err != nil {
		t.Fatalf("CreateQuiz returned error: %v", err)
	}

	quiz := store.createdQuiz
	if quiz == nil {
		t.Fatalf("expected quiz to be persisted")
	}
	if quiz.TotalPoints != 30 {
		t.Fatalf("expected total points 30, got %d", quiz.TotalPoints)
	}
	if quiz.TeacherID != 1 {
		t.Fatalf("expected owning teacher 1, got %d", quiz.TeacherID)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(quiz.Questions))
	}
	if quiz.Questions[1].Text != "Primes below 10?" || len(quiz.Questions[1].Options) != 3 {
		t.Fatalf("question order or options not preserved: %+v", quiz.Questions[1])
	}

	if len(store.createdAssignments) != 3 {
		t.Fatalf("expected one assignment per student, got %d", len(store.createdAssignments))
	}
	seen := map[uint]bool{}
	for _, a := range store.createdAssignments {
		if a.Coins != 30 {
			t.Fatalf("expected assignment coins 30, got %d", a.Coins)
		}
		if a.Completed {
			t.Fatalf("expected assignment to start incomplete")
		}
		if a.QuizID != quiz.ID {
			t.Fatalf("expected assignment bound to quiz %d, got %d", quiz.ID, a.QuizID)
		}
		if seen[a.StudentID] {
			t.Fatalf("duplicate assignment for student %d", a.StudentID)
		}
		seen[a.StudentID] = true
	}
	if seen[1] {
		t.Fatalf("teacher must not receive an assignment")
	}

	if len(notifier.types) != 1 || notifier.types[0] != "quiz_created" {
		t.Fatalf("expected one quiz_created broadcast, got %v", notifier.types)
	}
}

func TestCreateQuizWithZeroStudents(t *testing.T) {
	store := newStubStore()
	store.addUser(1, "teacher@example.com", "TEACHER")
	svc := NewService(store, nil)

	questions := []models.QuestionInput{{Text: "q", Points: 7}}
	if err := svc.CreateQuiz(createReq("teacher@example.com", "TEACHER", questions)); err != nil {
		t.Fatalf("CreateQuiz returned error: %v", err)
	}
	if store.createdQuiz == nil {
		t.Fatalf("expected quiz created even with no students")
	}
	if len(store.createdAssignments) != 0 {
		t.Fatalf("expected zero assignments, got %d", len(store.createdAssignments))
	}
}

func TestQuizzesByTeacherProjection(t *testing.T) {
	store := newStubStore()
	teacher := store.addUser(1, "teacher@example.com", "TEACHER")
	store.quizzesByTeacher[1] = []models.Quiz{
		{
			ID:          4,
			Title:       "Algebra",
			TotalPoints: 30,
			TeacherID:   1,
			Teacher:     teacher,
			Questions:   []models.Question{{Text: "hidden"}},
		},
	}
	svc := NewService(store, nil)

	summaries, err := svc.QuizzesByTeacher(1)
	if err != nil {
		t.Fatalf("QuizzesByTeacher returned error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.ID != 4 || got.Title != "Algebra" || got.TotalPoints != 30 {
		t.Fatalf("unexpected summary %+v", got)
	}
	if got.TeacherName != "teacher@example.com" {
		t.Fatalf("expected teacher name in summary, got %q", got.TeacherName)
	}

	if other, err := svc.QuizzesByTeacher(99); err != nil || len(other) != 0 {
		t.Fatalf("expected empty result for unknown teacher, got %v, %v", other, err)
	}
}

func TestStudentQuizzesRoundTrip(t *testing.T) {
	store := newStubStore()
	teacher := store.addUser(1, "teacher@example.com", "TEACHER")
	quiz := &models.Quiz{ID: 2, Title: "Algebra", Teacher: teacher}
	store.assignments["s1@example.com"] = []models.StudentQuiz{
		{ID: 1, StudentID: 2, QuizID: 2, Quiz: quiz, Coins: 30, Completed: false},
		{ID: 5, StudentID: 2, QuizID: 3, Quiz: &models.Quiz{ID: 3, Title: "Geometry"}, Coins: 12, Completed: true},
	}
	svc := NewService(store, nil)

	views, err := svc.StudentQuizzes("s1@example.com")
	if err != nil {
		t.Fatalf("StudentQuizzes returned error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].QuizTitle != "Algebra" || views[0].TeacherName != "teacher@example.com" || views[0].Coins != 30 || views[0].Completed {
		t.Fatalf("unexpected first view %+v", views[0])
	}
	if views[1].QuizTitle != "Geometry" || views[1].TeacherName != "" || !views[1].Completed {
		t.Fatalf("unexpected second view %+v", views[1])
	}
}
