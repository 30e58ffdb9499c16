package application

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new application with a zero file count. The name check
// happens before the insert so a taken name reports its current owner;
// field validation is left to the entity hook.
func (s *Service) Register(ctx context.Context, email, name, origin string) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return &AlreadyRegisteredError{Name: name, OwnerEmail: existing.DeveloperEmail}
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	return s.repo.Create(ctx, &Application{
		DeveloperEmail:  email,
		ApplicationName: name,
		Origin:          origin,
	})
}
