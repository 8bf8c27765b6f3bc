package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedulepro/calendar/internal/model"
)

func date(hour, minute int) time.Time {
	return time.Date(2030, time.June, 10, hour, minute, 0, 0, time.Local)
}

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots()

	require.Len(t, slots, SlotsPerDay)
	assert.Equal(t, model.TimeSlot{Hour: 0, Minute: 0}, slots[0])
	assert.Equal(t, model.TimeSlot{Hour: 23, Minute: 30}, slots[47])

	// Детерминированность: повторный вызов даёт ту же последовательность
	assert.Equal(t, slots, GenerateSlots())
}

func TestSlotIndex(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         int
	}{
		{0, 0, 0},
		{0, 29, 0},
		{0, 30, 1},
		{9, 0, 18},
		{12, 45, 25},
		{23, 30, 47},
		{23, 59, 47},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotIndex(date(tt.hour, tt.minute)), "%02d:%02d", tt.hour, tt.minute)
	}
}

func TestDayBounds(t *testing.T) {
	anchor := date(15, 42)

	start := DayStart(anchor)
	end := DayEnd(anchor)

	assert.Equal(t, time.Date(2030, time.June, 10, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2030, time.June, 10, 23, 59, 59, 999000000, time.Local), end)
}

func TestOffsetForInterval(t *testing.T) {
	day := date(0, 0)
	const slotHeight = 48.0

	t.Run("interval inside the day", func(t *testing.T) {
		top, height := OffsetForInterval(date(9, 0), date(10, 0), day, slotHeight)
		assert.Equal(t, 18*slotHeight, top)
		assert.Equal(t, 2*slotHeight, height)
	})

	t.Run("start clamped to day start", func(t *testing.T) {
		start := date(9, 0).AddDate(0, 0, -1) // вчера 09:00
		top, height := OffsetForInterval(start, date(1, 0), day, slotHeight)
		assert.Equal(t, 0.0, top)
		assert.Equal(t, 2*slotHeight, height)
	})

	t.Run("end clamped to day end", func(t *testing.T) {
		end := date(1, 0).AddDate(0, 0, 1) // завтра 01:00
		top, height := OffsetForInterval(date(23, 0), end, day, slotHeight)
		assert.Equal(t, 46*slotHeight, top)
		assert.InDelta(t, 2*slotHeight, height, 0.01)
		assert.LessOrEqual(t, top+height, SlotsPerDay*slotHeight)
	})

	t.Run("height never exceeds the grid", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			start := date(hour, 0)
			end := start.Add(3 * time.Hour)
			top, height := OffsetForInterval(start, end, day, slotHeight)
			assert.GreaterOrEqual(t, height, 0.0)
			assert.LessOrEqual(t, top+height, SlotsPerDay*slotHeight)
		}
	})
}
