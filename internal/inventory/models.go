package inventory

import "time"

// A Line is one acquired or reserved phone number together with its full
// configuration. It is the canonical record: every editor works on a
// projection of it and writes back through reconciliation, never directly.

type LineType string

const (
	LineTypeMobile        LineType = "mobile"
	LineTypeLandline      LineType = "landline"
	LineTypeTollFree      LineType = "tollfree"
	LineTypeInternational LineType = "international"
	LineTypeVanity        LineType = "vanity"
	LineTypeVirtual       LineType = "virtual"
)

type LineStatus string

const (
	LineStatusActive    LineStatus = "active"
	LineStatusInactive  LineStatus = "inactive"
	LineStatusPorting   LineStatus = "porting"
	LineStatusReserved  LineStatus = "reserved"
	LineStatusSuspended LineStatus = "suspended"
)

// PortingState is the sub-state of an optional porting request attached to a
// line. pending is only ever seeded by the system; the porting editor writes
// in_progress, and completed/failed are carrier-side outcomes.
type PortingState string

const (
	PortingPending    PortingState = "pending"
	PortingInProgress PortingState = "in_progress"
	PortingCompleted  PortingState = "completed"
	PortingFailed     PortingState = "failed"
)

type Line struct {
	ID         string   `json:"id"`
	Number     string   `json:"number"`
	Label      string   `json:"label"`
	AssignedTo string   `json:"assigned_to"`
	Tags       []string `json:"tags,omitempty"`

	DateAcquired time.Time  `json:"date_acquired"`
	DateExpires  *time.Time `json:"date_expires,omitempty"`

	Type   LineType   `json:"type"`
	Status LineStatus `json:"status"`

	Capabilities Capabilities `json:"capabilities"`
	SMSConfig    SMSConfig    `json:"sms_config"`
	CallerID     CallerID     `json:"caller_id"`
	Blocking     Blocking     `json:"blocking"`
	Stats        UsageStats   `json:"stats"`
	Plan         Plan         `json:"plan"`

	// Porting is present only while a porting request exists. Its sub-state
	// and the line status are coupled; see Validate.
	Porting *PortingStatus `json:"porting_status,omitempty"`
}

// Capabilities are independent feature switches on a line.
type Capabilities struct {
	SMS           bool `json:"sms"`
	MMS           bool `json:"mms"`
	Voice         bool `json:"voice"`
	Fax           bool `json:"fax"`
	International bool `json:"international"`
	Shortcode     bool `json:"shortcode"`
}

// SMSTemplate is a reusable message body. UsageCount is incremented by the
// sending path, which lives outside this service; editors never touch it.
type SMSTemplate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
	UsageCount int    `json:"usage_count"`
}

type SMSConfig struct {
	Enabled          bool          `json:"enabled"`
	AutoReply        bool          `json:"auto_reply"`
	ForwardToEmail   bool          `json:"forward_to_email"`
	EmailDestination string        `json:"email_destination,omitempty"`
	Templates        []SMSTemplate `json:"templates,omitempty"`
}

type BusinessInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Website string `json:"website"`
	Logo    string `json:"logo,omitempty"`
}

type CallerID struct {
	Display  string        `json:"display"`
	Fallback string        `json:"fallback"`
	Business *BusinessInfo `json:"business_info,omitempty"`
}

type BlockRule struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
}

type Blocking struct {
	Enabled               bool        `json:"enabled"`
	SpamFiltering         bool        `json:"spam_filtering"`
	AnonymousCallBlocking bool        `json:"anonymous_call_blocking"`
	BlockedNumbers        []string    `json:"blocked_numbers,omitempty"`
	WhitelistedNumbers    []string    `json:"whitelisted_numbers,omitempty"`
	CustomRules           []BlockRule `json:"custom_rules,omitempty"`
}

// UsageStats are read-only counters maintained by the usage pipeline.
type UsageStats struct {
	IncomingCalls       int     `json:"incoming_calls"`
	OutgoingCalls       int     `json:"outgoing_calls"`
	MissedCalls         int     `json:"missed_calls"`
	CallMinutes         int     `json:"call_minutes"`
	SMSSent             int     `json:"sms_sent"`
	SMSReceived         int     `json:"sms_received"`
	TotalCommunications int     `json:"total_communications"`
	UsagePercentage     float64 `json:"usage_percentage"`
}

type Plan struct {
	Name            string    `json:"name"`
	MonthlyCost     float64   `json:"monthly_cost"`
	IncludedSMS     int       `json:"included_sms"`
	IncludedMinutes int       `json:"included_minutes"`
	SMSUsed         int       `json:"sms_used"`
	MinutesUsed     int       `json:"minutes_used"`
	NextRenewal     time.Time `json:"next_renewal"`
}

type PortingStatus struct {
	Status                  PortingState `json:"status"`
	RequestDate             time.Time    `json:"request_date"`
	EstimatedCompletionDate time.Time    `json:"estimated_completion_date"`
	PreviousProvider        string       `json:"previous_provider"`
	Notes                   string       `json:"notes,omitempty"`

	// PreviousStatus is the line status recorded when the request was
	// submitted, so a failed port can restore it.
	PreviousStatus LineStatus `json:"previous_status,omitempty"`
}

// Group is a named set of line ids used only for filtering; it carries no
// behavior of its own.
type Group struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	LineIDs []string `json:"line_ids"`
}

// Clone returns a deep copy. Projections and repositories hand out clones so
// callers can never alias the stored record.
func (l Line) Clone() Line {
	out := l
	out.Tags = append([]string(nil), l.Tags...)
	if l.DateExpires != nil {
		d := *l.DateExpires
		out.DateExpires = &d
	}
	out.SMSConfig.Templates = append([]SMSTemplate(nil), l.SMSConfig.Templates...)
	if l.CallerID.Business != nil {
		b := *l.CallerID.Business
		out.CallerID.Business = &b
	}
	out.Blocking.BlockedNumbers = append([]string(nil), l.Blocking.BlockedNumbers...)
	out.Blocking.WhitelistedNumbers = append([]string(nil), l.Blocking.WhitelistedNumbers...)
	out.Blocking.CustomRules = append([]BlockRule(nil), l.Blocking.CustomRules...)
	if l.Porting != nil {
		p := *l.Porting
		out.Porting = &p
	}
	return out
}

// PortInFlight reports whether a porting request is still open on the line.
func (l Line) PortInFlight() bool {
	return l.Porting != nil &&
		(l.Porting.Status == PortingPending || l.Porting.Status == PortingInProgress)
}
