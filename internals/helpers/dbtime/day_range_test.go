package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	at := time.Date(2026, 8, 31, 14, 45, 30, 123, loc)

	start := StartOfDay(at)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), start)

	end := EndOfDay(at)
	assert.True(t, end.After(at))
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 23, end.Hour())

	// akhir hari tepat sebelum tengah malam berikutnya
	assert.Equal(t, time.Nanosecond, start.AddDate(0, 0, 1).Sub(end))
}

func TestDateKey(t *testing.T) {
	at := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-05", DateKey(at))
}
