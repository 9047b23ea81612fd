package cliente

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/locadora-web/resource"
)

// ErrNotFound is returned when the cliente is not in the cached list
var ErrNotFound = errors.New("cliente not found")

/*
 * Service is an API, so it uses pointer semantics.
 * Cliente is data, value semantics.
 */

type UseCase interface {
	List(ctx context.Context) ([]Cliente, error)
	Find(id string) (Cliente, error)
	Dependentes(ctx context.Context, id string) (Cliente, error)
	Toggle(ctx context.Context, id string) (bool, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// List fetches the clientes and returns the cached list.
// On failure the previous list is returned along with the error.
func (s *Service) List(ctx context.Context) ([]Cliente, error) {
	err := s.Repo.List(ctx)
	if err != nil {
		return s.Repo.Items(), fmt.Errorf("listing clientes: %w", err)
	}
	return s.Repo.Items(), nil
}

// Find looks the cliente up in the cached list
func (s *Service) Find(id string) (Cliente, error) {
	c, ok := resource.Find(s.Repo.Items(), id)
	if !ok {
		return Cliente{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c, nil
}

// Dependentes loads the cliente with its dependentes expanded
func (s *Service) Dependentes(ctx context.Context, id string) (Cliente, error) {
	c, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Cliente{}, fmt.Errorf("selecting dependentes: %w", err)
	}
	return c, nil
}

// Toggle flips estahAtivo with a full PUT and returns the new state
func (s *Service) Toggle(ctx context.Context, id string) (bool, error) {
	c, err := s.Find(id)
	if err != nil {
		return false, err
	}

	payload := UpdateFrom(c).Toggled()
	_, err = s.Repo.Update(ctx, payload)
	if err != nil {
		return c.EstahAtivo, fmt.Errorf("toggling cliente: %w", err)
	}
	return payload.EstahAtivo, nil
}
