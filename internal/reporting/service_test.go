package reporting

import (
	"context"
	"testing"

	"linedesk/internal/inventory"
)

func testLines() []inventory.Line {
	return []inventory.Line{
		{
			ID: "n1", Number: "+33123456789", Label: "Support principal", AssignedTo: "Claire",
			Type: inventory.LineTypeMobile, Status: inventory.LineStatusActive,
			Stats: inventory.UsageStats{IncomingCalls: 10, OutgoingCalls: 5, SMSSent: 3, SMSReceived: 2, CallMinutes: 40, UsagePercentage: 80},
		},
		{
			ID: "n2", Number: "+33987654321", Label: "Accueil", AssignedTo: "Marc",
			Type: inventory.LineTypeLandline, Status: inventory.LineStatusInactive,
			Stats: inventory.UsageStats{IncomingCalls: 2, CallMinutes: 10, UsagePercentage: 20},
		},
		{
			ID: "n3", Number: "+800112233", Label: "Ventes",
			Type: inventory.LineTypeTollFree, Status: inventory.LineStatusPorting,
			Porting: &inventory.PortingStatus{Status: inventory.PortingInProgress},
			Stats:   inventory.UsageStats{IncomingCalls: 8, OutgoingCalls: 1, UsagePercentage: 50},
		},
		{
			ID: "n4", Number: "0800-FLOWERS", Label: "Campagne",
			Type: inventory.LineTypeVanity, Status: inventory.LineStatusSuspended,
			Stats: inventory.UsageStats{UsagePercentage: 10},
		},
	}
}

func testGroups() []inventory.Group {
	return []inventory.Group{
		{ID: "g1", Name: "Front desk", LineIDs: []string{"n1", "n2"}},
	}
}

func TestApply_DefaultHidesInactiveAndSuspended(t *testing.T) {
	out := Apply(testLines(), testGroups(), Filter{})
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	for _, l := range out {
		if l.Status == inventory.LineStatusInactive || l.Status == inventory.LineStatusSuspended {
			t.Fatalf("inactive line leaked through default filter: %s", l.ID)
		}
	}

	all := Apply(testLines(), testGroups(), Filter{IncludeInactive: true})
	if len(all) != 4 {
		t.Fatalf("expected all 4 lines, got %d", len(all))
	}
}

func TestApply_TermMatchesCaseInsensitively(t *testing.T) {
	out := Apply(testLines(), testGroups(), Filter{Term: "SUPPORT", IncludeInactive: true})
	if len(out) != 1 || out[0].ID != "n1" {
		t.Fatalf("expected n1 for label match, got %v", out)
	}

	out = Apply(testLines(), testGroups(), Filter{Term: "marc", IncludeInactive: true})
	if len(out) != 1 || out[0].ID != "n2" {
		t.Fatalf("expected n2 for assignee match, got %v", out)
	}

	out = Apply(testLines(), testGroups(), Filter{Term: "800112233", IncludeInactive: true})
	if len(out) != 1 || out[0].ID != "n3" {
		t.Fatalf("expected n3 for number match, got %v", out)
	}
}

func TestApply_TypeAndGroup(t *testing.T) {
	out := Apply(testLines(), testGroups(), Filter{Type: inventory.LineTypeLandline, IncludeInactive: true})
	if len(out) != 1 || out[0].ID != "n2" {
		t.Fatalf("expected n2 for type filter, got %v", out)
	}

	out = Apply(testLines(), testGroups(), Filter{GroupID: "g1", IncludeInactive: true})
	if len(out) != 2 {
		t.Fatalf("expected 2 group members, got %d", len(out))
	}

	out = Apply(testLines(), testGroups(), Filter{GroupID: "missing", IncludeInactive: true})
	if len(out) != 0 {
		t.Fatalf("unknown group must match nothing, got %v", out)
	}
}

func TestSummarize_BucketsAndTotals(t *testing.T) {
	sum := Summarize(testLines())

	if sum.Total != 4 || sum.Active != 1 || sum.Porting != 1 || sum.Inactive != 2 {
		t.Fatalf("unexpected buckets: %+v", sum)
	}
	if sum.TotalCalls != 26 {
		t.Fatalf("expected 26 total calls, got %d", sum.TotalCalls)
	}
	if sum.TotalSMS != 5 {
		t.Fatalf("expected 5 total sms, got %d", sum.TotalSMS)
	}
	if sum.TotalMinutes != 50 {
		t.Fatalf("expected 50 minutes, got %d", sum.TotalMinutes)
	}
	if sum.AverageUsage != 40 {
		t.Fatalf("expected mean usage 40, got %v", sum.AverageUsage)
	}
}

func TestSummarize_EmptyInputYieldsZeroMean(t *testing.T) {
	sum := Summarize(nil)
	if sum.AverageUsage != 0 {
		t.Fatalf("expected 0 mean for empty input, got %v", sum.AverageUsage)
	}
	if sum.Total != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}

func TestService_SummaryOverFilteredSequence(t *testing.T) {
	repo := inventory.NewMemoryRepo(testLines(), testGroups())
	svc := NewService(repo)

	sum, err := svc.Summary(context.Background(), Filter{Term: "no such line"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Total != 0 || sum.AverageUsage != 0 {
		t.Fatalf("expected empty summary, got %+v", sum)
	}
}
