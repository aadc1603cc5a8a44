// file: internals/helpers/dbtime/day_range.go
package dbtime

import "time"

// Batas hari mengikuti zona waktu server (kiosk dan server satu gedung)

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DateKey: format tanggal kolom DATE
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
