package editors

import (
	"context"
	"time"

	"linedesk/internal/inventory"
)

// Service drives the projection/reconciliation cycle against the repository.
// All user-correctable validation happens here, before any write; a failed
// submission never leaves a partially applied line behind.
type Service struct {
	repo  inventory.Repository
	clock func() time.Time
}

func NewService(repo inventory.Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

// Project loads a line and derives the view for the requested editor.
func (s *Service) Project(ctx context.Context, id string, k Kind) (View, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v, ok := Project(l, k)
	if !ok {
		return nil, ErrUnknownView
	}
	return v, nil
}

// Submit reconciles an edited view into the stored collection. The porting
// editor's date rule is checked up front; lookup failures and invariant
// violations leave the store untouched.
func (s *Service) Submit(ctx context.Context, v View) (inventory.Line, error) {
	now := s.clock().UTC()

	if pv, ok := v.(PortingView); ok {
		if err := ValidatePorting(pv, now); err != nil {
			return inventory.Line{}, err
		}
	}

	if gv, ok := v.(GeneralView); ok && gv.Line.ID == "" {
		return s.add(ctx, gv, now)
	}

	existing, err := s.repo.Get(ctx, v.LineID())
	if err != nil {
		return inventory.Line{}, err
	}
	merged, err := Merge(existing, v, now)
	if err != nil {
		return inventory.Line{}, err
	}
	if err := s.repo.Put(ctx, merged); err != nil {
		return inventory.Line{}, err
	}
	return merged, nil
}

func (s *Service) add(ctx context.Context, gv GeneralView, now time.Time) (inventory.Line, error) {
	created := NewLine(gv.Line, now)
	if violated := created.Validate(); len(violated) > 0 {
		return inventory.Line{}, &InvariantError{Violations: violated}
	}
	if err := s.repo.Put(ctx, created); err != nil {
		return inventory.Line{}, err
	}
	return created, nil
}
