package inventory

import (
	"errors"
	"testing"
	"time"
)

func TestToggleActive_FlipsBothWays(t *testing.T) {
	l := validLine()

	out, err := ToggleActive(l)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if out.Status != LineStatusInactive {
		t.Fatalf("expected inactive, got %s", out.Status)
	}

	back, err := ToggleActive(out)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if back.Status != LineStatusActive {
		t.Fatalf("expected active, got %s", back.Status)
	}
}

func TestToggleActive_RejectedWhilePorting(t *testing.T) {
	l := validLine()
	l.Status = LineStatusPorting
	l.Porting = &PortingStatus{Status: PortingInProgress}

	out, err := ToggleActive(l)
	if !errors.Is(err, ErrPortInFlight) {
		t.Fatalf("expected ErrPortInFlight, got %v", err)
	}
	if out.Status != LineStatusPorting {
		t.Fatalf("rejected toggle must leave the line unchanged, got %s", out.Status)
	}
}

func TestToggleActive_UndefinedForSuspended(t *testing.T) {
	l := validLine()
	l.Status = LineStatusSuspended
	if _, err := ToggleActive(l); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestBeginPorting_ForcesInProgressAndRecordsPrevious(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	l := validLine()

	// The submitted record claims pending; submission always advances it.
	out := BeginPorting(l, PortingStatus{Status: PortingPending, PreviousProvider: "Orange"}, now)

	if out.Status != LineStatusPorting {
		t.Fatalf("expected porting status, got %s", out.Status)
	}
	if out.Porting.Status != PortingInProgress {
		t.Fatalf("expected in_progress, got %s", out.Porting.Status)
	}
	if out.Porting.PreviousStatus != LineStatusActive {
		t.Fatalf("expected previous status recorded, got %s", out.Porting.PreviousStatus)
	}
	if out.Porting.RequestDate != now {
		t.Fatalf("expected request date defaulted to now")
	}
	if l.Porting != nil {
		t.Fatalf("BeginPorting must not mutate its input")
	}
}

func TestBeginPorting_ResubmitKeepsOriginalPreviousStatus(t *testing.T) {
	now := time.Now().UTC()
	l := validLine()
	l.Status = LineStatusPorting
	l.Porting = &PortingStatus{Status: PortingInProgress, PreviousStatus: LineStatusInactive}

	out := BeginPorting(l, PortingStatus{PreviousProvider: "SFR"}, now)
	if out.Porting.PreviousStatus != LineStatusInactive {
		t.Fatalf("resubmit must keep the pre-porting status, got %s", out.Porting.PreviousStatus)
	}
}

func TestCompletePorting_ActivatesLine(t *testing.T) {
	l := validLine()
	l.Status = LineStatusPorting
	l.Porting = &PortingStatus{Status: PortingInProgress, PreviousStatus: LineStatusInactive}

	out, err := CompletePorting(l)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Status != LineStatusActive || out.Porting.Status != PortingCompleted {
		t.Fatalf("unexpected result: status=%s porting=%s", out.Status, out.Porting.Status)
	}
	if len(out.Validate()) != 0 {
		t.Fatalf("completed line should be valid: %v", out.Validate())
	}
}

func TestFailPorting_RevertsToPreviousStatus(t *testing.T) {
	l := validLine()
	l.Status = LineStatusPorting
	l.Porting = &PortingStatus{Status: PortingInProgress, PreviousStatus: LineStatusReserved}

	out, err := FailPorting(l)
	if err != nil {
		t.Fatalf("fail: %v", err)
	}
	if out.Status != LineStatusReserved {
		t.Fatalf("expected reverted status, got %s", out.Status)
	}
	if out.Porting == nil || out.Porting.Status != PortingFailed {
		t.Fatalf("failed porting record must be retained for audit")
	}
	if len(out.Validate()) != 0 {
		t.Fatalf("failed-port line should be valid: %v", out.Validate())
	}
}

func TestFailPorting_UnknownPreviousDefaultsInactive(t *testing.T) {
	l := validLine()
	l.Status = LineStatusPorting
	l.Porting = &PortingStatus{Status: PortingPending}

	out, err := FailPorting(l)
	if err != nil {
		t.Fatalf("fail: %v", err)
	}
	if out.Status != LineStatusInactive {
		t.Fatalf("expected inactive default, got %s", out.Status)
	}
}

func TestPortingEventsRequireOpenRequest(t *testing.T) {
	l := validLine()
	if _, err := CompletePorting(l); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := FailPorting(l); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
