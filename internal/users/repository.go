package users

import (
	"context"
	"fmt"

	"github.com/odyssey-erp/userdesk/internal/platform/db"
	"github.com/odyssey-erp/userdesk/internal/platform/httpx"
)

const (
	listUsersSQL  = `SELECT id, name, email FROM users ORDER BY id ASC`
	createUserSQL = `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, name, email`
	updateUserSQL = `UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING id, name, email`
	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	exec *db.Executor
}

// NewRepository constructs a repository.
func NewRepository(exec *db.Executor) *Repository {
	return &Repository{exec: exec}
}

// ListUsers returns all users ordered by id.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	return db.Query[User](ctx, r.exec, listUsersSQL)
}

// CreateUser inserts a user and returns it with the generated id.
func (r *Repository) CreateUser(ctx context.Context, name, email string) (User, error) {
	rows, err := db.Query[User](ctx, r.exec, createUserSQL, name, email)
	if err != nil {
		return User{}, err
	}
	if len(rows) == 0 {
		return User{}, fmt.Errorf("users: insert returned no row: %w", db.ErrStore)
	}
	return rows[0], nil
}

// UpdateUser overwrites name and email and returns the stored row.
func (r *Repository) UpdateUser(ctx context.Context, id int64, name, email string) (User, error) {
	rows, err := db.Query[User](ctx, r.exec, updateUserSQL, name, email, id)
	if err != nil {
		return User{}, err
	}
	if len(rows) == 0 {
		return User{}, httpx.NotFound("User not found")
	}
	return rows[0], nil
}

// DeleteUser removes the user with id. Deleting a missing id is not an error.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	_, err := db.Query[User](ctx, r.exec, deleteUserSQL, id)
	return err
}
