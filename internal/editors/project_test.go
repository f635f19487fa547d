package editors

import (
	"reflect"
	"testing"
	"time"

	"linedesk/internal/inventory"
)

func sampleLine() inventory.Line {
	return inventory.Line{
		ID:           "n1",
		Number:       "+33123456789",
		Label:        "Support",
		AssignedTo:   "Claire",
		Type:         inventory.LineTypeMobile,
		Status:       inventory.LineStatusActive,
		Capabilities: inventory.Capabilities{SMS: true, Voice: true},
		SMSConfig: inventory.SMSConfig{
			Enabled:   true,
			Templates: []inventory.SMSTemplate{{ID: "t1", Name: "Hi", Content: "Hello", UsageCount: 3}},
		},
		CallerID: inventory.CallerID{Display: "Support", Fallback: "+33123456789"},
		Stats:    inventory.UsageStats{IncomingCalls: 10, UsagePercentage: 40},
		Plan:     inventory.Plan{Name: "Pro"},
	}
}

func TestProject_UnknownKind(t *testing.T) {
	if _, ok := Project(sampleLine(), Kind("mailbox")); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestProjectPorting_DefaultsAbsentRecord(t *testing.T) {
	v := ProjectPorting(sampleLine())
	if v.ID != "n1" || v.Number != "+33123456789" || v.Status != inventory.LineStatusActive {
		t.Fatalf("unexpected projection: %+v", v)
	}
	if v.Porting.PreviousProvider != "" || !v.Porting.RequestDate.IsZero() {
		t.Fatalf("absent porting record must project as zero values: %+v", v.Porting)
	}
}

func TestProjectTemplates_AlwaysConcreteTemplates(t *testing.T) {
	l := sampleLine()
	l.SMSConfig.Templates = nil
	v := ProjectTemplates(l)
	if v.SMSConfig.Templates == nil {
		t.Fatalf("templates must never project as absent")
	}
}

func TestProject_DoesNotAliasSource(t *testing.T) {
	l := sampleLine()
	v := ProjectGeneral(l)
	v.Line.SMSConfig.Templates[0].Name = "mutated"
	v.Line.Label = "mutated"

	if l.SMSConfig.Templates[0].Name != "Hi" || l.Label != "Support" {
		t.Fatalf("projection must not alias the source entity")
	}
}

// Reconciling an unmodified projection is a no-op for the editors that do not
// force a state advance.
func TestProjectThenReconcile_IsNoOp(t *testing.T) {
	now := time.Now().UTC()
	l := sampleLine()
	collection := []inventory.Line{l}

	general := ProjectGeneral(l)
	afterGeneral, merged, err := Reconcile(collection, general, now)
	if err != nil {
		t.Fatalf("general reconcile: %v", err)
	}
	if !reflect.DeepEqual(merged, l.Normalize()) {
		t.Fatalf("general round trip changed the entity:\n got %+v\nwant %+v", merged, l)
	}
	if len(afterGeneral) != 1 {
		t.Fatalf("round trip must not grow the collection")
	}

	tpl := ProjectTemplates(l)
	_, merged, err = Reconcile(collection, tpl, now)
	if err != nil {
		t.Fatalf("template reconcile: %v", err)
	}
	if !reflect.DeepEqual(merged, l.Normalize()) {
		t.Fatalf("template round trip changed the entity:\n got %+v\nwant %+v", merged, l)
	}
}
