package editors

import (
	"context"
	"errors"
	"testing"
	"time"

	"linedesk/internal/inventory"
)

func newTestService(t *testing.T, now time.Time) (*Service, *inventory.MemoryRepo) {
	t.Helper()
	repo := inventory.NewMemoryRepo(inventory.FixtureLines(), inventory.FixtureGroups())
	svc := NewService(repo)
	svc.clock = func() time.Time { return now }
	return svc, repo
}

func TestServiceSubmit_PortingDateTooSoon(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, now)

	view := PortingView{
		ID: "line-0001",
		Porting: inventory.PortingStatus{
			PreviousProvider:        "Orange",
			EstimatedCompletionDate: now.AddDate(0, 0, 3),
		},
	}

	_, err := svc.Submit(context.Background(), view)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	stored, _ := repo.Get(context.Background(), "line-0001")
	if stored.Status != inventory.LineStatusActive {
		t.Fatalf("rejected submit must leave the store untouched")
	}
}

func TestServiceSubmit_PortingHappyPath(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, now)

	view := PortingView{
		ID: "line-0002",
		Porting: inventory.PortingStatus{
			PreviousProvider:        "Bouygues",
			EstimatedCompletionDate: now.AddDate(0, 0, 14),
			Notes:                   "customer requested",
		},
	}

	updated, err := svc.Submit(context.Background(), view)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if updated.Status != inventory.LineStatusPorting || updated.Porting.Status != inventory.PortingInProgress {
		t.Fatalf("unexpected result: %+v", updated)
	}

	stored, _ := repo.Get(context.Background(), "line-0002")
	if stored.Status != inventory.LineStatusPorting {
		t.Fatalf("submit must persist the reconciled line")
	}
}

func TestServiceSubmit_AddAllocatesID(t *testing.T) {
	now := time.Now().UTC()
	svc, repo := newTestService(t, now)

	created, err := svc.Submit(context.Background(), GeneralView{Line: inventory.Line{
		Number: "+33600000002",
		Label:  "Fresh",
	}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected allocated id")
	}
	if _, err := repo.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("created line not stored: %v", err)
	}
}

func TestServiceProject_UnknownLine(t *testing.T) {
	svc, _ := newTestService(t, time.Now())
	if _, err := svc.Project(context.Background(), "ghost", KindGeneral); !errors.Is(err, inventory.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
