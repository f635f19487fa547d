package editors

import (
	"errors"
	"fmt"
	"strings"

	"linedesk/internal/inventory"

	"github.com/google/uuid"
)

// Field updates inside the general editor are expressed as an enumerable set
// of commands applied through Apply, so the legal mutations are closed and
// type-checked instead of keyed by field-path strings.

var ErrUnknownCommand = errors.New("editors: unknown command")

type Command interface {
	isCommand()
}

type Capability string

const (
	CapabilitySMS           Capability = "sms"
	CapabilityMMS           Capability = "mms"
	CapabilityVoice         Capability = "voice"
	CapabilityFax           Capability = "fax"
	CapabilityInternational Capability = "international"
	CapabilityShortcode     Capability = "shortcode"
)

// CapabilityToggled flips one capability switch. Turning SMS off also
// disables the SMS configuration so the capability invariant keeps holding.
type CapabilityToggled struct {
	Capability Capability
}

// SMSEnabledSet, SMSAutoReplySet and SMSForwardingSet change the SMS
// configuration without touching the template list.
type SMSEnabledSet struct{ Enabled bool }
type SMSAutoReplySet struct{ AutoReply bool }
type SMSForwardingSet struct {
	Forward bool
	Email   string
}

type LabelSet struct{ Label string }
type AssignedToSet struct{ AssignedTo string }
type TagAdded struct{ Tag string }
type TagRemoved struct{ Tag string }

type CallerIDSet struct {
	Display  string
	Fallback string
}

type BlockingToggled struct{ Enabled bool }

// BlockedNumberAdded and WhitelistedNumberAdded keep the two sets disjoint:
// adding a number to one removes it from the other.
type BlockedNumberAdded struct{ Number string }
type WhitelistedNumberAdded struct{ Number string }

type BlockRuleAdded struct {
	Name      string
	Condition string
	Action    string
}

func (CapabilityToggled) isCommand()      {}
func (SMSEnabledSet) isCommand()          {}
func (SMSAutoReplySet) isCommand()        {}
func (SMSForwardingSet) isCommand()       {}
func (LabelSet) isCommand()               {}
func (AssignedToSet) isCommand()          {}
func (TagAdded) isCommand()               {}
func (TagRemoved) isCommand()             {}
func (CallerIDSet) isCommand()            {}
func (BlockingToggled) isCommand()        {}
func (BlockedNumberAdded) isCommand()     {}
func (WhitelistedNumberAdded) isCommand() {}
func (BlockRuleAdded) isCommand()         {}

// Apply reduces one command into a new view. The input view is not modified.
func Apply(v GeneralView, cmd Command) (GeneralView, error) {
	line := v.Line.Clone()

	switch c := cmd.(type) {
	case CapabilityToggled:
		if err := toggleCapability(&line, c.Capability); err != nil {
			return v, err
		}

	case SMSEnabledSet:
		if c.Enabled && !line.Capabilities.SMS {
			return v, fmt.Errorf("%w: sms capability is disabled", ErrValidation)
		}
		line.SMSConfig.Enabled = c.Enabled

	case SMSAutoReplySet:
		line.SMSConfig.AutoReply = c.AutoReply

	case SMSForwardingSet:
		if c.Forward && strings.TrimSpace(c.Email) == "" {
			return v, fmt.Errorf("%w: forwarding email is required", ErrValidation)
		}
		line.SMSConfig.ForwardToEmail = c.Forward
		line.SMSConfig.EmailDestination = c.Email

	case LabelSet:
		line.Label = c.Label

	case AssignedToSet:
		line.AssignedTo = c.AssignedTo

	case TagAdded:
		if strings.TrimSpace(c.Tag) == "" {
			return v, fmt.Errorf("%w: tag is required", ErrValidation)
		}
		line.Tags = append(line.Tags, c.Tag)

	case TagRemoved:
		kept := line.Tags[:0]
		for _, t := range line.Tags {
			if t != c.Tag {
				kept = append(kept, t)
			}
		}
		line.Tags = kept

	case CallerIDSet:
		line.CallerID.Display = c.Display
		line.CallerID.Fallback = c.Fallback

	case BlockingToggled:
		line.Blocking.Enabled = c.Enabled

	case BlockedNumberAdded:
		if strings.TrimSpace(c.Number) == "" {
			return v, fmt.Errorf("%w: number is required", ErrValidation)
		}
		line.Blocking.BlockedNumbers = appendUnique(line.Blocking.BlockedNumbers, c.Number)
		line.Blocking.WhitelistedNumbers = remove(line.Blocking.WhitelistedNumbers, c.Number)

	case WhitelistedNumberAdded:
		if strings.TrimSpace(c.Number) == "" {
			return v, fmt.Errorf("%w: number is required", ErrValidation)
		}
		line.Blocking.WhitelistedNumbers = appendUnique(line.Blocking.WhitelistedNumbers, c.Number)
		line.Blocking.BlockedNumbers = remove(line.Blocking.BlockedNumbers, c.Number)

	case BlockRuleAdded:
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Condition) == "" {
			return v, fmt.Errorf("%w: rule name and condition are required", ErrValidation)
		}
		line.Blocking.CustomRules = append(line.Blocking.CustomRules, inventory.BlockRule{
			ID:        uuid.NewString(),
			Name:      c.Name,
			Condition: c.Condition,
			Action:    c.Action,
		})

	default:
		return v, ErrUnknownCommand
	}

	return GeneralView{Line: line}, nil
}

func toggleCapability(l *inventory.Line, c Capability) error {
	switch c {
	case CapabilitySMS:
		l.Capabilities.SMS = !l.Capabilities.SMS
		if !l.Capabilities.SMS {
			// Keep the invariant: no enabled SMS config without the capability.
			l.SMSConfig.Enabled = false
		}
	case CapabilityMMS:
		l.Capabilities.MMS = !l.Capabilities.MMS
	case CapabilityVoice:
		l.Capabilities.Voice = !l.Capabilities.Voice
	case CapabilityFax:
		l.Capabilities.Fax = !l.Capabilities.Fax
	case CapabilityInternational:
		l.Capabilities.International = !l.Capabilities.International
	case CapabilityShortcode:
		l.Capabilities.Shortcode = !l.Capabilities.Shortcode
	default:
		return fmt.Errorf("%w: capability %q", ErrUnknownCommand, c)
	}
	return nil
}

func appendUnique(in []string, s string) []string {
	for _, v := range in {
		if v == s {
			return in
		}
	}
	return append(in, s)
}

func remove(in []string, s string) []string {
	out := in[:0]
	for _, v := range in {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
