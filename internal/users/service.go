package users

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/userdesk/internal/platform/httpx"
)

// Messages returned to clients on invalid input.
const (
	msgCreateRequired = "Name and email are required"
	msgUpdateRequired = "ID, name and email are required"
	msgDeleteRequired = "ID is required"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, name, email string) (User, error)
	UpdateUser(ctx context.Context, id int64, name, email string) (User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Service handles user business logic.
type Service struct {
	repo     RepositoryPort
	validate *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// CreateUser validates in and stores a new user.
func (s *Service) CreateUser(ctx context.Context, in CreateInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return User{}, httpx.Invalid(msgCreateRequired)
	}
	return s.repo.CreateUser(ctx, in.Name, in.Email)
}

// UpdateUser validates in and overwrites the stored name and email.
func (s *Service) UpdateUser(ctx context.Context, in UpdateInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return User{}, httpx.Invalid(msgUpdateRequired)
	}
	return s.repo.UpdateUser(ctx, in.ID, in.Name, in.Email)
}

// DeleteUser validates in and removes the user.
func (s *Service) DeleteUser(ctx context.Context, in DeleteInput) error {
	if err := s.validate.Struct(in); err != nil {
		return httpx.Invalid(msgDeleteRequired)
	}
	return s.repo.DeleteUser(ctx, in.ID)
}
