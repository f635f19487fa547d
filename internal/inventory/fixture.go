package inventory

import "time"

// Fixture dataset loaded when the service runs without a database. The shapes
// cover the interesting states: an active mobile line with SMS templates, a
// plain landline, a toll-free line with blocking rules, a system-seeded
// pending port, and a suspended vanity line.

func FixtureLines() []Line {
	acquired := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	renewal := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	return []Line{
		{
			ID:           "line-0001",
			Number:       "+33123456789",
			Label:        "Support principal",
			AssignedTo:   "Claire Fontaine",
			Tags:         []string{"support", "priority"},
			DateAcquired: acquired,
			Type:         LineTypeMobile,
			Status:       LineStatusActive,
			Capabilities: Capabilities{SMS: true, MMS: true, Voice: true, International: true},
			SMSConfig: SMSConfig{
				Enabled:          true,
				AutoReply:        true,
				ForwardToEmail:   true,
				EmailDestination: "support@linedesk.example",
				Templates: []SMSTemplate{
					{ID: "tpl-0001", Name: "Welcome", Content: "Thanks for reaching out, we will reply shortly.", UsageCount: 42},
					{ID: "tpl-0002", Name: "Out of hours", Content: "Our team is offline; we answer between 9:00 and 18:00.", UsageCount: 17},
				},
			},
			CallerID: CallerID{
				Display:  "Linedesk Support",
				Fallback: "+33123456789",
				Business: &BusinessInfo{Name: "Linedesk SARL", Address: "10 rue de la Paix, Paris", Website: "https://linedesk.example"},
			},
			Blocking: Blocking{Enabled: true, SpamFiltering: true},
			Stats: UsageStats{
				IncomingCalls: 320, OutgoingCalls: 180, MissedCalls: 14, CallMinutes: 2150,
				SMSSent: 860, SMSReceived: 940, TotalCommunications: 2300, UsagePercentage: 72,
			},
			Plan: Plan{Name: "Pro", MonthlyCost: 29.90, IncludedSMS: 2000, IncludedMinutes: 3000, SMSUsed: 860, MinutesUsed: 2150, NextRenewal: renewal},
		},
		{
			ID:           "line-0002",
			Number:       "+33987654321",
			Label:        "Accueil",
			AssignedTo:   "Marc Dupont",
			DateAcquired: acquired.AddDate(0, 2, 0),
			Type:         LineTypeLandline,
			Status:       LineStatusActive,
			Capabilities: Capabilities{Voice: true, Fax: true},
			CallerID:     CallerID{Display: "Accueil", Fallback: "+33987654321"},
			Stats: UsageStats{
				IncomingCalls: 510, OutgoingCalls: 95, MissedCalls: 31, CallMinutes: 1830,
				TotalCommunications: 605, UsagePercentage: 48,
			},
			Plan: Plan{Name: "Standard", MonthlyCost: 14.90, IncludedSMS: 0, IncludedMinutes: 2000, MinutesUsed: 1830, NextRenewal: renewal},
		},
		{
			ID:           "line-0003",
			Number:       "+800112233",
			Label:        "Numero vert ventes",
			AssignedTo:   "Equipe ventes",
			Tags:         []string{"sales"},
			DateAcquired: acquired.AddDate(0, 4, 0),
			Type:         LineTypeTollFree,
			Status:       LineStatusActive,
			Capabilities: Capabilities{Voice: true},
			CallerID:     CallerID{Display: "Ventes", Fallback: "+800112233"},
			Blocking: Blocking{
				Enabled:               true,
				SpamFiltering:         true,
				AnonymousCallBlocking: true,
				BlockedNumbers:        []string{"+33611111111", "+33622222222"},
				CustomRules: []BlockRule{
					{ID: "rule-0001", Name: "Night calls", Condition: "hour >= 22", Action: "voicemail"},
				},
			},
			Stats: UsageStats{
				IncomingCalls: 1240, OutgoingCalls: 10, MissedCalls: 88, CallMinutes: 5200,
				TotalCommunications: 1250, UsagePercentage: 91,
			},
			Plan: Plan{Name: "Business", MonthlyCost: 49.90, IncludedMinutes: 6000, MinutesUsed: 5200, NextRenewal: renewal},
		},
		{
			ID:           "line-0004",
			Number:       "+33700112233",
			Label:        "Ligne en portage",
			AssignedTo:   "Sophie Bernard",
			DateAcquired: acquired.AddDate(0, 5, 0),
			Type:         LineTypeMobile,
			Status:       LineStatusPorting,
			Capabilities: Capabilities{SMS: true, Voice: true},
			CallerID:     CallerID{Display: "Sophie B.", Fallback: "+33700112233"},
			Stats:        UsageStats{UsagePercentage: 5},
			Plan:         Plan{Name: "Standard", MonthlyCost: 14.90, IncludedSMS: 500, IncludedMinutes: 1000, NextRenewal: renewal},
			Porting: &PortingStatus{
				Status:                  PortingPending,
				RequestDate:             time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
				EstimatedCompletionDate: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
				PreviousProvider:        "Orange",
				Notes:                   "Seeded by carrier import",
				PreviousStatus:          LineStatusInactive,
			},
		},
		{
			ID:           "line-0005",
			Number:       "0800-FLOWERS",
			Label:        "Campagne printemps",
			DateAcquired: acquired.AddDate(1, 0, 0),
			Type:         LineTypeVanity,
			Status:       LineStatusSuspended,
			Capabilities: Capabilities{Voice: true},
			CallerID:     CallerID{Display: "Campagne", Fallback: "0800-FLOWERS"},
			Stats:        UsageStats{IncomingCalls: 45, CallMinutes: 120, TotalCommunications: 45, UsagePercentage: 12},
			Plan:         Plan{Name: "Standard", MonthlyCost: 14.90, NextRenewal: renewal},
		},
	}
}

func FixtureGroups() []Group {
	return []Group{
		{ID: "grp-0001", Name: "Support", LineIDs: []string{"line-0001", "line-0002"}},
		{ID: "grp-0002", Name: "Ventes", LineIDs: []string{"line-0003", "line-0005"}},
	}
}
