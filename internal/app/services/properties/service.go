package properties

import (
	"context"

	"github.com/google/uuid"

	"staybook/internal/app/dto"
	"staybook/internal/domain/property"
)

// Service creates and looks up properties on behalf of the HTTP layer.
type Service struct {
	Repo property.Repository
}

func NewService(repo property.Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, req dto.CreatePropertyRequest) (*property.Property, error) {
	prop, err := property.New(uuid.NewString(), req.Name, req.Description, req.MaxGuests, req.BasePricePerNight)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Save(ctx, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

func (s *Service) ByID(ctx context.Context, id string) (*property.Property, error) {
	return s.Repo.ByID(ctx, id)
}
