package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/userdesk/internal/platform/httpx"
)

type stubRepo struct {
	calls    int
	users    []User
	created  User
	updated  User
	err      error
	lastName string
	lastID   int64
}

func (s *stubRepo) ListUsers(ctx context.Context) ([]User, error) {
	s.calls++
	return s.users, s.err
}

func (s *stubRepo) CreateUser(ctx context.Context, name, email string) (User, error) {
	s.calls++
	s.lastName = name
	return s.created, s.err
}

func (s *stubRepo) UpdateUser(ctx context.Context, id int64, name, email string) (User, error) {
	s.calls++
	s.lastID = id
	s.lastName = name
	return s.updated, s.err
}

func (s *stubRepo) DeleteUser(ctx context.Context, id int64) error {
	s.calls++
	s.lastID = id
	return s.err
}

func TestServiceListUsersNeverNil(t *testing.T) {
	svc := NewService(&stubRepo{})
	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestServiceCreateUserValidation(t *testing.T) {
	cases := []CreateInput{
		{},
		{Name: "Ada"},
		{Email: "ada@example.com"},
		{Name: "   ", Email: "ada@example.com"},
	}
	for _, in := range cases {
		repo := &stubRepo{}
		_, err := NewService(repo).CreateUser(context.Background(), in)
		require.ErrorIs(t, err, httpx.ErrValidation)
		assert.Equal(t, "Name and email are required", err.Error())
		assert.Zero(t, repo.calls, "store must not be touched for %+v", in)
	}
}

func TestServiceCreateUserTrimsInput(t *testing.T) {
	repo := &stubRepo{created: User{ID: 1, Name: "Ada", Email: "ada@example.com"}}
	got, err := NewService(repo).CreateUser(context.Background(), CreateInput{Name: "  Ada ", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", repo.lastName)
	assert.EqualValues(t, 1, got.ID)
}

func TestServiceUpdateUserValidation(t *testing.T) {
	cases := []UpdateInput{
		{ID: 1, Name: "A"},
		{Name: "A", Email: "a@example.com"},
		{ID: -3, Name: "A", Email: "a@example.com"},
		{ID: 1, Email: "a@example.com"},
	}
	for _, in := range cases {
		repo := &stubRepo{}
		_, err := NewService(repo).UpdateUser(context.Background(), in)
		require.ErrorIs(t, err, httpx.ErrValidation)
		assert.Equal(t, "ID, name and email are required", err.Error())
		assert.Zero(t, repo.calls)
	}
}

func TestServiceUpdateUserPassesThroughNotFound(t *testing.T) {
	repo := &stubRepo{err: httpx.NotFound("User not found")}
	_, err := NewService(repo).UpdateUser(context.Background(), UpdateInput{ID: 5, Name: "A", Email: "a@example.com"})
	require.ErrorIs(t, err, httpx.ErrNotFound)
	assert.EqualValues(t, 5, repo.lastID)
}

func TestServiceDeleteUser(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	err := svc.DeleteUser(context.Background(), DeleteInput{})
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "ID is required", err.Error())
	assert.Zero(t, repo.calls)

	require.NoError(t, svc.DeleteUser(context.Background(), DeleteInput{ID: 3}))
	assert.EqualValues(t, 3, repo.lastID)

	repo.err = errors.New("store failure")
	require.Error(t, svc.DeleteUser(context.Background(), DeleteInput{ID: 3}))
}
