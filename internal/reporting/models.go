package reporting

import "linedesk/internal/inventory"

// Filter narrows the line collection for display. Zero values mean "no
// constraint" except IncludeInactive, which defaults to hiding inactive and
// suspended lines.
type Filter struct {
	// Term is matched case-insensitively against label, number and assignee.
	Term string `json:"term,omitempty"`

	Type inventory.LineType `json:"type,omitempty"`

	// GroupID restricts to members of a named group.
	GroupID string `json:"group_id,omitempty"`

	IncludeInactive bool `json:"include_inactive"`
}

// Summary aggregates a filtered sequence of lines. All figures are simple
// order-independent reductions, recomputed on demand and never cached.
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Porting  int `json:"porting"`
	Inactive int `json:"inactive"` // inactive or suspended
	Reserved int `json:"reserved"`

	TotalCalls   int `json:"total_calls"`
	TotalSMS     int `json:"total_sms"`
	TotalMinutes int `json:"total_minutes"`

	// AverageUsage is the arithmetic mean of usage percentages, 0 for an
	// empty input.
	AverageUsage float64 `json:"average_usage"`
}
