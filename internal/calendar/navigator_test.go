package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	// 12 июня 2030 — среда
	wednesday := time.Date(2030, time.June, 12, 15, 30, 0, 0, time.Local)

	monday := WeekStart(wednesday)

	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, time.Date(2030, time.June, 10, 0, 0, 0, 0, time.Local), monday)

	// Воскресенье относится к предыдущей неделе
	sunday := time.Date(2030, time.June, 16, 10, 0, 0, 0, time.Local)
	assert.Equal(t, monday, WeekStart(sunday))

	// Идемпотентность
	assert.Equal(t, monday, WeekStart(monday))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(time.Date(2030, time.June, 12, 0, 0, 0, 0, time.Local))

	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	assert.Equal(t, days[0].AddDate(0, 0, 6), days[6])
}

func TestVisibleWindow(t *testing.T) {
	anchor := time.Date(2030, time.June, 12, 14, 0, 0, 0, time.Local)

	t.Run("day", func(t *testing.T) {
		start, end := VisibleWindow(anchor, ViewDay)
		assert.Equal(t, DayStart(anchor), start)
		assert.Equal(t, DayEnd(anchor), end)
	})

	t.Run("week", func(t *testing.T) {
		start, end := VisibleWindow(anchor, ViewWeek)
		assert.Equal(t, time.Date(2030, time.June, 10, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, DayEnd(time.Date(2030, time.June, 16, 0, 0, 0, 0, time.Local)), end)
	})

	t.Run("month", func(t *testing.T) {
		start, end := VisibleWindow(anchor, ViewMonth)
		assert.Equal(t, time.Date(2030, time.June, 1, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, time.Date(2030, time.June, 30, 23, 59, 59, 999000000, time.Local), end)
	})
}

func TestAdvance(t *testing.T) {
	anchor := time.Date(2030, time.June, 12, 0, 0, 0, 0, time.Local)

	assert.Equal(t, anchor.AddDate(0, 0, 1), Advance(anchor, ViewDay, 1))
	assert.Equal(t, anchor.AddDate(0, 0, -7), Advance(anchor, ViewWeek, -1))
	assert.Equal(t, time.July, Advance(anchor, ViewMonth, 1).Month())

	// Переполнение месяца по правилам stdlib: 31 янв + 1 мес = 3 марта
	jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local), Advance(jan31, ViewMonth, 1))
}

func TestFormatLabel(t *testing.T) {
	anchor := time.Date(2030, time.June, 12, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "Wednesday, 12 June 2030", FormatLabel(anchor, ViewDay))
	assert.Equal(t, "10 Jun 2030 - 16 Jun 2030", FormatLabel(anchor, ViewWeek))
	assert.Equal(t, "June 2030", FormatLabel(anchor, ViewMonth))
}

func TestMonthGridDays(t *testing.T) {
	// 1 января 2025 — среда: перед ним ровно два приглушённых дня (Пн, Вт)
	anchor := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local)

	days := MonthGridDays(anchor)

	require.Len(t, days, MonthGridSize)
	assert.Equal(t, time.Monday, days[0].Date.Weekday())

	leadingMuted := 0
	for _, d := range days {
		if !d.Muted {
			break
		}
		leadingMuted++
	}
	assert.Equal(t, 2, leadingMuted)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), days[2].Date)

	// Сетка непрерывна: каждый следующий день на сутки позже
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), days[i].Date)
	}
}
