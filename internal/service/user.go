package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

// RegisterInput carries the signup form fields.
type RegisterInput struct {
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	Password      string `json:"password"`
	DOB           string `json:"dob"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	Qualification string `json:"qualification"`
	Branch        string `json:"branch"`
	PassoutYear   string `json:"passoutYear"`
}

// UserService defines the account directory use cases.
type UserService interface {
	// Register creates a new account. The password is stored as a bcrypt hash.
	Register(ctx context.Context, in RegisterInput) error

	// Authenticate verifies the credentials and returns the reduced profile view.
	Authenticate(ctx context.Context, email, password string) (*model.UserProfile, error)

	// ResetPassword replaces the credential for an existing account.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// List returns every account.
	List(ctx context.Context) ([]model.User, error)

	// Stats computes the aggregate view from a full scan of accounts.
	Stats(ctx context.Context) (*model.UserStats, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) error {
	if in.Email == "" || in.FullName == "" || in.Password == "" {
		return fmt.Errorf("%w: email, fullName and password are required", ErrValidation)
	}
	status, err := model.ParseCategory(in.Status)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Email:         in.Email,
		FullName:      in.FullName,
		PasswordHash:  string(hash),
		DOB:           in.DOB,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		Phone:         in.Phone,
		Status:        status,
		Qualification: in.Qualification,
		Branch:        in.Branch,
		PassoutYear:   in.PassoutYear,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.UserProfile, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Indistinguishable from a wrong password on purpose.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	p := u.Profile()
	return &p, nil
}

func (s *userService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return fmt.Errorf("%w: email and newPassword are required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	n, err := s.repo.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Stats groups the full account list in memory. Composite groupings use
// struct keys so a field containing the rendered delimiter cannot collide
// with a neighboring group.
func (s *userService) Stats(ctx context.Context) (*model.UserStats, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{
		TotalUsers:   len(users),
		StatusCount:  make(map[model.Category]int, len(model.Categories())),
		CityCount:    make(map[string]int),
		StateCount:   make(map[string]int),
		CountryCount: make(map[string]int),
		ByQualYear:   make(map[model.QualificationKey]int),
		ByBranchQual: make(map[model.BranchKey]int),
	}
	for _, c := range model.Categories() {
		stats.StatusCount[c] = 0
	}

	for _, u := range users {
		stats.StatusCount[u.Status]++
		stats.CityCount[u.City]++
		stats.StateCount[u.State]++
		stats.CountryCount[u.Country]++
		stats.ByQualYear[model.QualificationKey{
			Qualification: u.Qualification,
			PassoutYear:   u.PassoutYear,
			Status:        u.Status,
		}]++
		stats.ByBranchQual[model.BranchKey{
			Branch:        u.Branch,
			Qualification: u.Qualification,
			PassoutYear:   u.PassoutYear,
			Status:        u.Status,
		}]++
	}
	return stats, nil
}
