package domain

import (
	"context"

	"github.com/google/uuid"
)

// User records exist only to gate candidate listing and report generation: a
// caller is authorized when a stored user matches its submitted identity
// exactly. There is no password, token or role.
type User struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

type UserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

func (in *UserInput) ToUser(id uuid.UUID) *User {
	return &User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
}

// UserIdentity is the three-field tuple submitted per request and checked
// against stored users. It is matched structurally, never cached.
type UserIdentity struct {
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	Email     string `form:"email" validate:"required"`
}

type UserRepository interface {
	Insert(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	// FindByIdentity returns the user whose first name, last name and email
	// all match exactly, or nil when there is none.
	FindByIdentity(ctx context.Context, identity UserIdentity) (*User, error)
	Replace(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserUsecase interface {
	Create(ctx context.Context, input *UserInput) (*User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Update(ctx context.Context, id uuid.UUID, input *UserInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}
