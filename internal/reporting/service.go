package reporting

import (
	"context"
	"errors"
	"strings"

	"linedesk/internal/inventory"
)

// Apply returns the lines matching the filter, in their original order. The
// input slice is not modified.
func Apply(lines []inventory.Line, groups []inventory.Group, f Filter) []inventory.Line {
	var member map[string]struct{}
	if f.GroupID != "" {
		member = map[string]struct{}{}
		for _, g := range groups {
			if g.ID != f.GroupID {
				continue
			}
			for _, id := range g.LineIDs {
				member[id] = struct{}{}
			}
		}
	}

	term := strings.ToLower(strings.TrimSpace(f.Term))

	out := make([]inventory.Line, 0, len(lines))
	for _, l := range lines {
		if !f.IncludeInactive &&
			(l.Status == inventory.LineStatusInactive || l.Status == inventory.LineStatusSuspended) {
			continue
		}
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		if member != nil {
			if _, ok := member[l.ID]; !ok {
				continue
			}
		}
		if term != "" && !matchesTerm(l, term) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesTerm(l inventory.Line, term string) bool {
	return strings.Contains(strings.ToLower(l.Label), term) ||
		strings.Contains(strings.ToLower(l.Number), term) ||
		strings.Contains(strings.ToLower(l.AssignedTo), term)
}

// Summarize reduces a (typically filtered) sequence into aggregate figures.
// The mean usage is 0 for an empty input, never NaN.
func Summarize(lines []inventory.Line) Summary {
	var out Summary
	var usageSum float64

	for _, l := range lines {
		out.Total++
		switch l.Status {
		case inventory.LineStatusActive:
			out.Active++
		case inventory.LineStatusPorting:
			out.Porting++
		case inventory.LineStatusInactive, inventory.LineStatusSuspended:
			out.Inactive++
		case inventory.LineStatusReserved:
			out.Reserved++
		}
		out.TotalCalls += l.Stats.IncomingCalls + l.Stats.OutgoingCalls
		out.TotalSMS += l.Stats.SMSSent + l.Stats.SMSReceived
		out.TotalMinutes += l.Stats.CallMinutes
		usageSum += l.Stats.UsagePercentage
	}

	if out.Total > 0 {
		out.AverageUsage = usageSum / float64(out.Total)
	}
	return out
}

// Service answers filtered listing and summary queries over the repository.
type Service struct {
	repo inventory.Repository
}

func NewService(repo inventory.Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context, f Filter) ([]inventory.Line, error) {
	if s.repo == nil {
		return nil, errors.New("reporting: repository not configured")
	}
	lines, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(lines, groups, f), nil
}

func (s *Service) Summary(ctx context.Context, f Filter) (Summary, error) {
	filtered, err := s.List(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(filtered), nil
}
