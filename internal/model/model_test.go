package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapsWindow(t *testing.T) {
	day := time.Date(2030, time.June, 10, 0, 0, 0, 0, time.Local)
	appt := Appointment{
		Start: day.Add(9 * time.Hour),
		End:   day.Add(10 * time.Hour),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"fully inside", day, day.AddDate(0, 0, 1), true},
		{"partial overlap at start", day.Add(9*time.Hour + 30*time.Minute), day.Add(11 * time.Hour), true},
		{"window ends exactly at start", day.Add(8 * time.Hour), day.Add(9 * time.Hour), false},
		{"window starts exactly at end", day.Add(10 * time.Hour), day.Add(11 * time.Hour), false},
		{"disjoint", day.AddDate(0, 0, 1), day.AddDate(0, 0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.OverlapsWindow(tt.start, tt.end))
		})
	}
}

func TestAppointmentWireFormat(t *testing.T) {
	appt := Appointment{
		Title:          "Standup",
		ParticipantIDs: []string{"u1"},
	}

	encoded, err := json.Marshal(appt)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(encoded, &wire))

	assert.NotContains(t, wire, "id", "пустой id опускается")
	assert.Contains(t, wire, "participantIds")
	assert.Contains(t, wire, "recurrence")
	assert.Nil(t, wire["recurrence"], "без повторения на проводе null")
}

func TestWeekdayTags(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayTag(time.Sunday))
	assert.Equal(t, "Sat", WeekdayTag(time.Saturday))

	d, ok := ParseWeekdayTag("Wed")
	assert.True(t, ok)
	assert.Equal(t, time.Wednesday, d)

	_, ok = ParseWeekdayTag("Wednesday")
	assert.False(t, ok)
}

func TestRequiresDays(t *testing.T) {
	assert.True(t, (&Recurrence{Type: RecurrenceWeekly}).RequiresDays())
	assert.True(t, (&Recurrence{Type: RecurrenceCustom}).RequiresDays())
	assert.False(t, (&Recurrence{Type: RecurrenceDaily}).RequiresDays())
	assert.False(t, (&Recurrence{Type: RecurrenceMonthly}).RequiresDays())
}

func TestTimeSlotString(t *testing.T) {
	assert.Equal(t, "00:00", TimeSlot{}.String())
	assert.Equal(t, "09:30", TimeSlot{Hour: 9, Minute: 30}.String())
	assert.Equal(t, "23:30", TimeSlot{Hour: 23, Minute: 30}.String())
}
