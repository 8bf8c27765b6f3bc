package model

import "time"

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none" // используется только в формах, в Appointment это nil
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceCustom  RecurrenceType = "custom"
)

// Recurrence описывает правило повторения встречи.
// Count = 0 означает неограниченное количество повторений.
type Recurrence struct {
	Type    RecurrenceType `json:"type"`
	Count   int            `json:"count"`
	EndDate *time.Time     `json:"endDate"`
	Days    []string       `json:"days"` // обязательно непустой для weekly и custom
}

// RequiresDays проверяет, требует ли тип повторения выбора дней недели
func (r *Recurrence) RequiresDays() bool {
	return r.Type == RecurrenceWeekly || r.Type == RecurrenceCustom
}

// WeekdayTags короткие метки дней недели в порядке time.Weekday (Sun = 0)
var WeekdayTags = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayTag возвращает метку дня недели для time.Weekday
func WeekdayTag(d time.Weekday) string {
	return WeekdayTags[int(d)]
}

// ParseWeekdayTag возвращает time.Weekday по метке дня недели
func ParseWeekdayTag(tag string) (time.Weekday, bool) {
	for i, t := range WeekdayTags {
		if t == tag {
			return time.Weekday(i), true
		}
	}
	return 0, false
}
