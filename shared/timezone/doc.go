// Package timezone pins every date the service reasons about to APP_TIMEZONE.
//
// Stay dates are calendar days, not instants:
//
//	today := timezone.StartOfDay(timezone.Now())
//	checkIn, err := timezone.ParseDate("2024-12-10") // midnight in the app zone
//
// The zone is loaded when the package is imported and falls back to UTC when the name is
// unknown. Use IANA names such as Asia/Kolkata.
package timezone
