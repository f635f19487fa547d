package inventory

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRepo_GetUnknownID(t *testing.T) {
	r := NewMemoryRepo(FixtureLines(), FixtureGroups())
	if _, err := r.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepo_PutReplacesInPlaceAndAppendsNew(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo(FixtureLines(), FixtureGroups())

	before, _ := r.List(ctx)
	edited := before[1].Clone()
	edited.Label = "renamed"
	if err := r.Put(ctx, edited); err != nil {
		t.Fatalf("put: %v", err)
	}

	fresh := validLine()
	fresh.ID = "line-new"
	if err := r.Put(ctx, fresh); err != nil {
		t.Fatalf("put new: %v", err)
	}

	after, _ := r.List(ctx)
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d lines, got %d", len(before)+1, len(after))
	}
	if after[1].ID != edited.ID || after[1].Label != "renamed" {
		t.Fatalf("edited line must keep its position: %+v", after[1])
	}
	if after[len(after)-1].ID != "line-new" {
		t.Fatalf("new line must be appended at the end")
	}
}

func TestMemoryRepo_HandsOutDetachedCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo(FixtureLines(), FixtureGroups())

	got, err := r.Get(ctx, "line-0001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.SMSConfig.Templates[0].Name = "mutated"
	got.Label = "mutated"

	again, _ := r.Get(ctx, "line-0001")
	if again.Label == "mutated" || again.SMSConfig.Templates[0].Name == "mutated" {
		t.Fatalf("repo must not expose its internal state")
	}
}

func TestFixture_IsValid(t *testing.T) {
	for _, l := range FixtureLines() {
		if violated := l.Validate(); len(violated) != 0 {
			t.Fatalf("fixture line %s invalid: %v", l.ID, violated)
		}
	}
}
