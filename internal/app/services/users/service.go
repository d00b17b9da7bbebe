package users

import (
	"context"

	"github.com/google/uuid"

	"staybook/internal/app/dto"
	"staybook/internal/domain/user"
)

// Service creates and looks up guests.
type Service struct {
	Repo user.Repository
}

func NewService(repo user.Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, req dto.CreateUserRequest) (*user.User, error) {
	guest, err := user.New(uuid.NewString(), req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *Service) ByID(ctx context.Context, id string) (*user.User, error) {
	return s.Repo.ByID(ctx, id)
}
