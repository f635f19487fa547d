package inventory

import (
	"context"
	"errors"
)

// Service exposes the lifecycle operations on stored lines: the manual
// active/inactive toggle and the two carrier-side porting outcomes. Partial
// edits go through the editors package, not here.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var errRepoRequired = errors.New("inventory: repository not configured")

func (s *Service) List(ctx context.Context) ([]Line, error) {
	if s.repo == nil {
		return nil, errRepoRequired
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Line, error) {
	if s.repo == nil {
		return Line{}, errRepoRequired
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Groups(ctx context.Context) ([]Group, error) {
	if s.repo == nil {
		return nil, errRepoRequired
	}
	return s.repo.Groups(ctx)
}

// ToggleStatus flips active/inactive. ErrPortInFlight while a port is open,
// ErrInvalidTransition for reserved/suspended lines.
func (s *Service) ToggleStatus(ctx context.Context, id string) (Line, error) {
	return s.transition(ctx, id, ToggleActive)
}

// CompletePorting applies the carrier's "port completed" event.
func (s *Service) CompletePorting(ctx context.Context, id string) (Line, error) {
	return s.transition(ctx, id, CompletePorting)
}

// FailPorting applies the carrier's "port failed" event.
func (s *Service) FailPorting(ctx context.Context, id string) (Line, error) {
	return s.transition(ctx, id, FailPorting)
}

func (s *Service) transition(ctx context.Context, id string, fn func(Line) (Line, error)) (Line, error) {
	if s.repo == nil {
		return Line{}, errRepoRequired
	}
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return Line{}, err
	}
	next, err := fn(cur)
	if err != nil {
		return Line{}, err
	}
	if err := s.repo.Put(ctx, next); err != nil {
		return Line{}, err
	}
	return next, nil
}
