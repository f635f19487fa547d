package inventory

import (
	"errors"
	"time"
)

var (
	// ErrPortInFlight rejects manual status changes while a port is open.
	ErrPortInFlight = errors.New("inventory: porting request in flight")

	// ErrInvalidTransition rejects a lifecycle operation the current status
	// does not permit.
	ErrInvalidTransition = errors.New("inventory: invalid status transition")
)

// The line status lifecycle:
//
//	active <-> inactive            manual toggle, blocked while porting
//	any     -> porting             porting editor submit (BeginPorting)
//	porting -> active              carrier reports the port completed
//	porting -> previous status     carrier reports the port failed
//
// All functions are pure: they return a new Line and never mutate the input.

// ToggleActive flips a line between active and inactive. The toggle is a
// rejected no-op during an in-flight port, and is not defined for reserved or
// suspended lines.
func ToggleActive(l Line) (Line, error) {
	if l.Status == LineStatusPorting || l.PortInFlight() {
		return l, ErrPortInFlight
	}
	out := l.Clone()
	switch l.Status {
	case LineStatusActive:
		out.Status = LineStatusInactive
	case LineStatusInactive:
		out.Status = LineStatusActive
	default:
		return l, ErrInvalidTransition
	}
	return out, nil
}

// BeginPorting records a submitted porting request. Whatever sub-state the
// request carried, submission always advances it to in_progress, and the line
// status is forced to porting. The pre-porting status is kept so a failure
// can restore it; re-submitting while already porting keeps the original.
func BeginPorting(l Line, req PortingStatus, now time.Time) Line {
	out := l.Clone()

	prev := l.Status
	if l.Status == LineStatusPorting && l.Porting != nil {
		prev = l.Porting.PreviousStatus
	}

	req.Status = PortingInProgress
	if req.RequestDate.IsZero() {
		req.RequestDate = now
	}
	req.PreviousStatus = prev

	out.Status = LineStatusPorting
	out.Porting = &req
	return out
}

// CompletePorting applies the carrier's completion event: the line becomes
// active and the porting record is kept with a terminal sub-state.
func CompletePorting(l Line) (Line, error) {
	if !l.PortInFlight() {
		return l, ErrInvalidTransition
	}
	out := l.Clone()
	out.Status = LineStatusActive
	out.Porting.Status = PortingCompleted
	return out, nil
}

// FailPorting applies the carrier's failure event: the line returns to the
// status it had before the request (inactive when that was never recorded),
// and the porting record is retained for audit with a failed sub-state.
func FailPorting(l Line) (Line, error) {
	if !l.PortInFlight() {
		return l, ErrInvalidTransition
	}
	out := l.Clone()
	prev := l.Porting.PreviousStatus
	if prev == "" || prev == LineStatusPorting {
		prev = LineStatusInactive
	}
	out.Status = prev
	out.Porting.Status = PortingFailed
	return out, nil
}
