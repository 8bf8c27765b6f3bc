package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleOccurrences(anchor time.Time) []model.Occurrence {
	day := calendar.DayStart(anchor)
	appt := func(id, title string, startHour, endHour int) model.Occurrence {
		a := model.Appointment{
			ID:    id,
			Title: title,
			Start: day.Add(time.Duration(startHour) * time.Hour),
			End:   day.Add(time.Duration(endHour) * time.Hour),
		}
		return model.Occurrence{Appointment: a, Start: a.Start, End: a.End}
	}

	return []model.Occurrence{
		appt("a1", "Morning standup", 9, 10),
		appt("a2", "Design review with a deliberately long title", 13, 15),
		appt("a3", "Evening wrap-up", 18, 19),
	}
}

func TestRenderAllModes(t *testing.T) {
	anchor := time.Date(2030, time.June, 12, 0, 0, 0, 0, time.Local)
	now := anchor.Add(12 * time.Hour)
	occurrences := sampleOccurrences(anchor)

	for _, mode := range []calendar.ViewMode{calendar.ViewDay, calendar.ViewWeek, calendar.ViewMonth} {
		t.Run(string(mode), func(t *testing.T) {
			img, err := Render(mode, occurrences, anchor, now)
			require.NoError(t, err)
			require.NotEmpty(t, img)
			assert.True(t, bytes.HasPrefix(img, pngMagic), "результат должен быть PNG")
		})
	}
}

func TestRenderEmptyCalendar(t *testing.T) {
	anchor := time.Date(2030, time.June, 12, 0, 0, 0, 0, time.Local)

	img, err := Render(calendar.ViewWeek, nil, anchor, anchor)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestRenderUnknownMode(t *testing.T) {
	_, err := Render(calendar.ViewMode("year"), nil, time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view mode")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 24))
	assert.Equal(t, "a very long titl...", truncate("a very long title indeed!", 19))
	assert.Len(t, truncate("abcdef", 3), 3)
}
