package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"quiz-platform/internal/models"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func writeActorError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, models.ErrMissingActor):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrActorNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrNotATeacher):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		return false
	}
	return true
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateQuiz(req); err != nil {
		if !writeActorError(w, err) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Quiz created and assigned to all students"))
}

func (h *Handler) GetQuizzesByTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, err := strconv.ParseUint(r.URL.Query().Get("teacherId"), 10, 32)
	if err != nil {
		http.Error(w, "Invalid teacherId", http.StatusBadRequest)
		return
	}

	summaries, err := h.service.QuizzesByTeacher(uint(teacherID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func (h *Handler) GetStudentQuizzes(w http.ResponseWriter, r *http.Request) {
	studentEmail := r.URL.Query().Get("studentEmail")
	if studentEmail == "" {
		http.Error(w, "studentEmail is required", http.StatusBadRequest)
		return
	}

	views, err := h.service.StudentQuizzes(studentEmail)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}
