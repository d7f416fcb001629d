// Package timezone pins the timestamps the service produces to APP_TIMEZONE. Bookings and
// tokens are stamped with Now, lesson dates given without an offset are read with Parse, and
// responses render through Format. An unknown zone name falls back to UTC.
package timezone
