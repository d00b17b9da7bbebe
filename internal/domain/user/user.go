package user

import (
	"context"
	"errors"
	"strings"

	"staybook/internal/domain/shared/validation"
)

var (
	ErrNameRequired = validation.NewError("User name is required")
	ErrIDRequired   = validation.NewError("User id is required")
	ErrNotFound     = errors.New("user: not found")
)

// User identifies a guest. Immutable after construction.
type User struct {
	ID   string
	Name string
}

// New validates the name before the id so the first failing field decides
// the message.
func New(id, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	return &User{ID: id, Name: name}, nil
}

type Repository interface {
	ByID(ctx context.Context, id string) (*User, error)
	Save(ctx context.Context, user *User) error
}
