package account

import (
	"fmt"
	"strings"

	"quiz-platform/internal/models"
)

const leaderboardSize = 10

// Store is the slice of the persistence layer the account flows need.
type Store interface {
	GetUserByEmail(email string) (*models.User, error)
	GetRoleByName(name string) (*models.Role, error)
	CreateUser(user *models.User) error
	TopStudentsByCoins(limit int) ([]models.User, error)
}

// LeaderboardCache keeps the top-student projection hot between
// requests. A miss is reported as an error.
type LeaderboardCache interface {
	GetTopStudents() ([]models.LeaderboardEntry, error)
	SetTopStudents(entries []models.LeaderboardEntry) error
	InvalidateTopStudents() error
}

type Service struct {
	repo   Store
	cache  LeaderboardCache
	hasher PasswordHasher
}

func NewService(repo Store, cache LeaderboardCache, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		hasher: hasher,
	}
}

// Register creates one account. The role defaults to STUDENT when
// absent or blank and is resolved case-insensitively.
func (s *Service) Register(req models.RegisterRequest) error {
	existing, err := s.repo.GetUserByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.ErrDuplicateEmail
	}

	roleName := strings.TrimSpace(req.Role)
	if roleName == "" {
		roleName = models.RoleStudent
	}
	roleName = strings.ToUpper(roleName)

	role, err := s.repo.GetRoleByName(roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("%w: %s", models.ErrUnknownRole, roleName)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Name:      req.Firstname + " " + req.Lastname,
		Email:     req.Email,
		Password:  hashed,
		RoleID:    role.ID,
		Role:      role,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return err
	}

	// A new student starts at the default balance but may still enter
	// a short leaderboard.
	if s.cache != nil {
		_ = s.cache.InvalidateTopStudents()
	}
	return nil
}

// Login returns the account projection on success and
// models.ErrInvalidCredentials on any failure. Unknown email, wrong
// password and role mismatch are indistinguishable to the caller.
func (s *Service) Login(req models.LoginRequest) (*models.UserProjection, error) {
	user, err := s.repo.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.Password, req.Password); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Role) != "" && !user.HasRole(req.Role) {
		return nil, models.ErrInvalidCredentials
	}

	projection := user.ToProjection()
	return &projection, nil
}

// TopStudents returns at most leaderboardSize STUDENT accounts ordered
// by coin balance descending, id ascending on ties.
func (s *Service) TopStudents() ([]models.LeaderboardEntry, error) {
	if s.cache != nil {
		if entries, err := s.cache.GetTopStudents(); err == nil && entries != nil {
			return entries, nil
		}
	}

	users, err := s.repo.TopStudentsByCoins(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, models.LeaderboardEntry{
			Firstname: u.Firstname,
			Lastname:  u.Lastname,
			Coins:     u.Coins,
		})
	}
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}

	if s.cache != nil {
		_ = s.cache.SetTopStudents(entries)
	}
	return entries, nil
}
