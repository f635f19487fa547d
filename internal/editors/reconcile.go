package editors

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"linedesk/internal/inventory"

	"github.com/google/uuid"
)

// MinPortingLead is the minimum distance between submission time and the
// estimated completion date of a porting request.
const MinPortingLead = 7 * 24 * time.Hour

var (
	// ErrUnknownView means a View variant this package does not define.
	ErrUnknownView = errors.New("editors: unknown view variant")

	// ErrValidation wraps user-correctable input problems caught before
	// reconciliation.
	ErrValidation = errors.New("editors: validation failed")
)

// InvariantError reports that a reconciled line violated structural
// invariants; the prior entity was retained.
type InvariantError struct {
	Violations []string
}

func (e *InvariantError) Error() string {
	return "editors: invariants violated: " + strings.Join(e.Violations, ", ")
}

// ValidatePorting runs the user-correctable checks on a porting submission.
// These run before reconciliation; reconcile itself never raises them.
func ValidatePorting(v PortingView, now time.Time) error {
	if strings.TrimSpace(v.Porting.PreviousProvider) == "" {
		return fmt.Errorf("%w: previous provider is required", ErrValidation)
	}
	if v.Porting.EstimatedCompletionDate.IsZero() {
		return fmt.Errorf("%w: estimated completion date is required", ErrValidation)
	}
	if v.Porting.EstimatedCompletionDate.Before(now.Add(MinPortingLead)) {
		return fmt.Errorf("%w: estimated completion date must be at least 7 days out", ErrValidation)
	}
	return nil
}

// Reconcile merges an edited view back into the collection and returns the
// updated collection plus the resulting line. The input slice is not
// modified.
//
//   - General: the located entity is replaced wholesale (the editor owns the
//     full shape); an empty view id is add mode and inserts a new line with
//     creation defaults and a fresh id.
//   - Porting: only status and the porting record are written; submission
//     always forces status=porting and sub-state=in_progress.
//   - Templates: the SMSConfig sub-object is replaced as a unit.
//
// A view id that matches no entity fails with inventory.ErrNotFound (general
// add mode excepted). If the merged line violates invariants the collection
// is returned unchanged alongside an *InvariantError.
func Reconcile(collection []inventory.Line, v View, now time.Time) ([]inventory.Line, inventory.Line, error) {
	if gv, ok := v.(GeneralView); ok && gv.Line.ID == "" {
		created := NewLine(gv.Line, now)
		if violated := created.Validate(); len(violated) > 0 {
			return collection, inventory.Line{}, &InvariantError{Violations: violated}
		}
		out := make([]inventory.Line, 0, len(collection)+1)
		for _, l := range collection {
			out = append(out, l.Clone())
		}
		out = append(out, created)
		return out, created, nil
	}

	idx := -1
	for i := range collection {
		if collection[i].ID == v.LineID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return collection, inventory.Line{}, inventory.ErrNotFound
	}

	merged, err := Merge(collection[idx], v, now)
	if err != nil {
		return collection, inventory.Line{}, err
	}

	out := make([]inventory.Line, 0, len(collection))
	for i := range collection {
		if i == idx {
			out = append(out, merged)
		} else {
			out = append(out, collection[i].Clone())
		}
	}
	return out, merged, nil
}

// Merge applies a view to a single existing line, preserving every field the
// view does not carry. Pure; both inputs stay untouched.
func Merge(existing inventory.Line, v View, now time.Time) (inventory.Line, error) {
	var merged inventory.Line

	switch view := v.(type) {
	case GeneralView:
		merged = view.Line.Clone()
		// The id is assigned at creation and no editor may reassign it.
		merged.ID = existing.ID

	case PortingView:
		merged = inventory.BeginPorting(existing, view.Porting, now)

	case TemplateView:
		merged = existing.Clone()
		cfg := view.SMSConfig
		cfg.Templates = append([]inventory.SMSTemplate(nil), view.SMSConfig.Templates...)
		merged.SMSConfig = cfg

	default:
		return inventory.Line{}, ErrUnknownView
	}

	merged = merged.Normalize()
	if violated := merged.Validate(); len(violated) > 0 {
		return inventory.Line{}, &InvariantError{Violations: violated}
	}
	return merged, nil
}

// NewLine builds a freshly created line from the general editor's add form:
// a new id, and creation defaults for everything the form left unset (voice
// capability on, empty SMS and blocking config, entry plan tier).
func NewLine(form inventory.Line, now time.Time) inventory.Line {
	l := form.Clone()
	l.ID = uuid.NewString()

	if l.Status == "" {
		l.Status = inventory.LineStatusActive
	}
	if l.Type == "" {
		l.Type = inventory.LineTypeMobile
	}
	if l.DateAcquired.IsZero() {
		l.DateAcquired = now
	}
	if !anyCapability(l.Capabilities) {
		l.Capabilities.Voice = true
	}
	if l.Plan.Name == "" {
		l.Plan = inventory.Plan{
			Name:            "Standard",
			MonthlyCost:     14.90,
			IncludedSMS:     500,
			IncludedMinutes: 1000,
			NextRenewal:     now.AddDate(0, 1, 0),
		}
	}
	// Creation never carries a porting request or usage history.
	l.Porting = nil
	l.Stats = inventory.UsageStats{}

	return l.Normalize()
}

func anyCapability(c inventory.Capabilities) bool {
	return c.SMS || c.MMS || c.Voice || c.Fax || c.International || c.Shortcode
}
