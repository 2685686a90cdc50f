// Package timezone provides timezone utilities for the reminder service.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times on a customer's wall clock:
//     formatted := timezone.FormatIn(start, "America/New_York", "3:04 PM")
//
//  3. Computing a DST-correct reminder window:
//     w := timezone.ReminderWindow(time.Now().UTC(), "America/Chicago", 24, 25)
//     if w.Contains(booking.StartDate) { ... }
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "America/New_York", "Europe/London"
//
// The application timezone is configured via the APP_TIMEZONE environment
// variable and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform
// compatibility.
package timezone
