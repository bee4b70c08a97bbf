package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPeakDailyDemand(t *testing.T) {
	t.Run("no holds means zero demand", func(t *testing.T) {
		assert.Equal(t, 0, peakDailyDemand(nil, day("2026-09-01"), day("2026-09-05")))
	})

	t.Run("single hold counts on every covered day", func(t *testing.T) {
		held := []Reservation{
			{StartDate: day("2026-09-01"), EndDate: day("2026-09-05"), Quantity: 2},
		}
		assert.Equal(t, 2, peakDailyDemand(held, day("2026-09-01"), day("2026-09-05")))
	})

	t.Run("overlapping holds stack on shared days", func(t *testing.T) {
		held := []Reservation{
			{StartDate: day("2026-09-01"), EndDate: day("2026-09-04"), Quantity: 2},
			{StartDate: day("2026-09-03"), EndDate: day("2026-09-06"), Quantity: 3},
		}
		// Sept 3 carries both holds
		assert.Equal(t, 5, peakDailyDemand(held, day("2026-09-01"), day("2026-09-06")))
	})

	t.Run("back to back stays never contend", func(t *testing.T) {
		held := []Reservation{
			{StartDate: day("2026-09-01"), EndDate: day("2026-09-03"), Quantity: 4},
			{StartDate: day("2026-09-03"), EndDate: day("2026-09-05"), Quantity: 4},
		}
		// End date is exclusive, so the peak is 4, not 8
		assert.Equal(t, 4, peakDailyDemand(held, day("2026-09-01"), day("2026-09-05")))
	})

	t.Run("holds outside the window are ignored", func(t *testing.T) {
		held := []Reservation{
			{StartDate: day("2026-08-01"), EndDate: day("2026-08-10"), Quantity: 9},
		}
		assert.Equal(t, 0, peakDailyDemand(held, day("2026-09-01"), day("2026-09-05")))
	})
}
