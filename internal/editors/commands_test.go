package editors

import (
	"errors"
	"testing"
)

func TestApply_CapabilityToggleDisablesSMSConfig(t *testing.T) {
	v := ProjectGeneral(sampleLine())
	if !v.Line.SMSConfig.Enabled {
		t.Fatalf("precondition: sms config enabled")
	}

	out, err := Apply(v, CapabilityToggled{Capability: CapabilitySMS})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Line.Capabilities.SMS {
		t.Fatalf("expected sms capability off")
	}
	if out.Line.SMSConfig.Enabled {
		t.Fatalf("disabling the capability must disable the sms config")
	}
	if !v.Line.Capabilities.SMS {
		t.Fatalf("Apply must not mutate its input view")
	}
}

func TestApply_SMSEnableRequiresCapability(t *testing.T) {
	v := ProjectGeneral(sampleLine())
	v.Line.Capabilities.SMS = false
	v.Line.SMSConfig.Enabled = false

	if _, err := Apply(v, SMSEnabledSet{Enabled: true}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestApply_BlockedAndWhitelistedStayDisjoint(t *testing.T) {
	v := ProjectGeneral(sampleLine())

	v, err := Apply(v, WhitelistedNumberAdded{Number: "+33611111111"})
	if err != nil {
		t.Fatalf("whitelist add: %v", err)
	}
	v, err = Apply(v, BlockedNumberAdded{Number: "+33611111111"})
	if err != nil {
		t.Fatalf("block add: %v", err)
	}

	if len(v.Line.Blocking.WhitelistedNumbers) != 0 {
		t.Fatalf("blocking a number must remove it from the whitelist: %v", v.Line.Blocking.WhitelistedNumbers)
	}
	if len(v.Line.Blocking.BlockedNumbers) != 1 {
		t.Fatalf("expected one blocked number, got %v", v.Line.Blocking.BlockedNumbers)
	}

	// And back the other way.
	v, err = Apply(v, WhitelistedNumberAdded{Number: "+33611111111"})
	if err != nil {
		t.Fatalf("re-whitelist: %v", err)
	}
	if len(v.Line.Blocking.BlockedNumbers) != 0 {
		t.Fatalf("whitelisting a number must remove it from the blocked list")
	}
}

func TestApply_BlockRuleValidation(t *testing.T) {
	v := ProjectGeneral(sampleLine())

	if _, err := Apply(v, BlockRuleAdded{Name: "", Condition: "hour >= 22"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}

	out, err := Apply(v, BlockRuleAdded{Name: "Night", Condition: "hour >= 22", Action: "voicemail"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	rules := out.Line.Blocking.CustomRules
	if len(rules) != 1 || rules[0].ID == "" {
		t.Fatalf("expected one rule with an allocated id, got %v", rules)
	}
}

func TestApply_Tags(t *testing.T) {
	v := ProjectGeneral(sampleLine())

	v, err := Apply(v, TagAdded{Tag: "vip"})
	if err != nil {
		t.Fatalf("tag add: %v", err)
	}
	v, err = Apply(v, TagAdded{Tag: "support"})
	if err != nil {
		t.Fatalf("tag add: %v", err)
	}
	v, err = Apply(v, TagRemoved{Tag: "vip"})
	if err != nil {
		t.Fatalf("tag remove: %v", err)
	}
	if len(v.Line.Tags) != 1 || v.Line.Tags[0] != "support" {
		t.Fatalf("unexpected tags: %v", v.Line.Tags)
	}
}
