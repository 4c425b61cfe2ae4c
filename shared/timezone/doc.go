// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2025-06-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// loaded on first use. Use IANA names ("Asia/Manila", "UTC").
//
// Stay dates (check-in, check-out) are calendar dates and are deliberately
// not interpreted in this timezone; see the stay package.
package timezone
