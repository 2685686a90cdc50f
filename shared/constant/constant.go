package constant

import (
	"time"
)

const (
	Empty = ""
)

const (
	// CacheTimezonePrefix namespaces cached address-to-timezone resolutions.
	CacheTimezonePrefix = "reminder:timezone"
)

const (
	DateFormat = time.RFC3339

	// EventTimeFormat renders the booking start in the customer's wall clock,
	// e.g. "3:00 PM".
	EventTimeFormat = "3:04 PM"

	// EventDateFormat renders the booking date for email copy,
	// e.g. "Saturday, March 8, 2025".
	EventDateFormat = "Monday, January 2, 2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelSchedulerScopeName  = "scheduler"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	// ReminderQueryLeadStart and ReminderQueryLeadEnd bound the coarse UTC
	// super-window for the candidate query. The window is deliberately wider
	// than the precise 24-25h reminder window so that every timezone offset
	// (UTC-12 through UTC+14) is covered in a single pass.
	ReminderQueryLeadStart = 23 * time.Hour
	ReminderQueryLeadEnd   = 26 * time.Hour

	// ReminderLeadStart and ReminderLeadEnd bound the precise per-customer
	// window, measured on the customer's local wall clock.
	ReminderLeadStart = 24 * time.Hour
	ReminderLeadEnd   = 25 * time.Hour
)
