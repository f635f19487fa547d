package inventory

import "strings"

// Invariant names reported by Validate. Handlers surface these verbatim, so
// they are part of the API vocabulary.
const (
	InvariantIDAssigned        = "id_assigned"
	InvariantNumberRequired    = "number_required"
	InvariantPortingCoupled    = "status_porting_coupled"
	InvariantSMSNeedsCapability = "sms_config_requires_sms_capability"
	InvariantFallbackRequired  = "caller_id_fallback_required"
	InvariantListsDisjoint     = "blocked_whitelist_disjoint"
)

// Normalize applies the defaulting and cleanup rules every saved line must
// satisfy: the caller-ID fallback defaults to the number, and the blocked and
// whitelisted sets are deduplicated with blocked entries winning conflicts.
// Returns a new value; the receiver is untouched.
func (l Line) Normalize() Line {
	out := l.Clone()

	if strings.TrimSpace(out.CallerID.Fallback) == "" {
		out.CallerID.Fallback = out.Number
	}

	out.Blocking.BlockedNumbers = dedupe(out.Blocking.BlockedNumbers)
	out.Blocking.WhitelistedNumbers = dedupe(out.Blocking.WhitelistedNumbers)

	blocked := make(map[string]struct{}, len(out.Blocking.BlockedNumbers))
	for _, n := range out.Blocking.BlockedNumbers {
		blocked[n] = struct{}{}
	}
	kept := out.Blocking.WhitelistedNumbers[:0]
	for _, n := range out.Blocking.WhitelistedNumbers {
		if _, clash := blocked[n]; !clash {
			kept = append(kept, n)
		}
	}
	out.Blocking.WhitelistedNumbers = kept

	return out
}

// Validate checks the structural invariants and returns the names of those
// violated. An empty result means the line is valid. No side effects.
func (l Line) Validate() []string {
	var violated []string

	if strings.TrimSpace(l.ID) == "" {
		violated = append(violated, InvariantIDAssigned)
	}
	if strings.TrimSpace(l.Number) == "" {
		violated = append(violated, InvariantNumberRequired)
	}

	// status == porting exactly when an open porting request exists.
	if (l.Status == LineStatusPorting) != l.PortInFlight() {
		violated = append(violated, InvariantPortingCoupled)
	}

	if l.SMSConfig.Enabled && !l.Capabilities.SMS {
		violated = append(violated, InvariantSMSNeedsCapability)
	}

	if strings.TrimSpace(l.CallerID.Fallback) == "" {
		violated = append(violated, InvariantFallbackRequired)
	}

	if !disjoint(l.Blocking.BlockedNumbers, l.Blocking.WhitelistedNumbers) {
		violated = append(violated, InvariantListsDisjoint)
	}

	return violated
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func disjoint(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, clash := set[s]; clash {
			return false
		}
	}
	return true
}
