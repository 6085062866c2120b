package users

// User represents a stored user record.
type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// CreateInput carries the fields accepted on creation. The store assigns the id.
type CreateInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateInput replaces name and email of the user with ID.
type UpdateInput struct {
	ID    int64  `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// DeleteInput identifies the user to remove.
type DeleteInput struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}
