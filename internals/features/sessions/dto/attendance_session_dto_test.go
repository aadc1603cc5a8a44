package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)

	t.Run("default hari ini", func(t *testing.T) {
		d, err := StartSessionRequest{}.ResolveDate(now)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-14", time.Time(d).Format("2006-01-02"))
	})

	t.Run("tanggal eksplisit", func(t *testing.T) {
		in := "2026-03-10"
		d, err := StartSessionRequest{AttendanceSessionDate: &in}.ResolveDate(now)
		require.NoError(t, err)
		assert.Equal(t, in, time.Time(d).Format("2006-01-02"))
	})

	t.Run("format salah", func(t *testing.T) {
		in := "10-03-2026"
		_, err := StartSessionRequest{AttendanceSessionDate: &in}.ResolveDate(now)
		assert.Error(t, err)
	})
}
