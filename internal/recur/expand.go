package recur

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/schedulepro/calendar/internal/model"
)

// maxOccurrencesPerAppointment защитный потолок на количество вхождений
// одной встречи в окне. Count в правиле не валидируется (его принимает
// сервер как есть), поэтому разворачивание обязано само себя ограничивать.
const maxOccurrencesPerAppointment = 1000

var weekdayByTag = map[string]rrule.Weekday{
	"Sun": rrule.SU,
	"Mon": rrule.MO,
	"Tue": rrule.TU,
	"Wed": rrule.WE,
	"Thu": rrule.TH,
	"Fri": rrule.FR,
	"Sat": rrule.SA,
}

// Expand разворачивает встречи в конкретные вхождения внутри окна
// [windowStart, windowEnd]. Обычные встречи проходят как единственное
// вхождение, если пересекают окно. Результат отсортирован по началу.
func Expand(appointments []model.Appointment, windowStart, windowEnd time.Time) []model.Occurrence {
	var occurrences []model.Occurrence
	for _, a := range appointments {
		occurrences = append(occurrences, expandAppointment(a, windowStart, windowEnd)...)
	}

	sort.Slice(occurrences, func(i, j int) bool {
		return occurrences[i].Start.Before(occurrences[j].Start)
	})
	return occurrences
}

func expandAppointment(a model.Appointment, windowStart, windowEnd time.Time) []model.Occurrence {
	if a.Recurrence == nil {
		if a.OverlapsWindow(windowStart, windowEnd) {
			return []model.Occurrence{{Appointment: a, Start: a.Start, End: a.End}}
		}
		return nil
	}

	rule, err := buildRule(a)
	if err != nil {
		// Непонятное правило не валит отрисовку: показываем базовую встречу
		if a.OverlapsWindow(windowStart, windowEnd) {
			return []model.Occurrence{{Appointment: a, Start: a.Start, End: a.End}}
		}
		return nil
	}

	starts := rule.Between(windowStart, windowEnd, true)
	if len(starts) > maxOccurrencesPerAppointment {
		starts = starts[:maxOccurrencesPerAppointment]
	}

	duration := a.End.Sub(a.Start)
	occurrences := make([]model.Occurrence, 0, len(starts))
	for _, start := range starts {
		occurrences = append(occurrences, model.Occurrence{
			Appointment: a,
			Start:       start,
			End:         start.Add(duration),
		})
	}
	return occurrences
}

// buildRule переводит правило повторения в RRULE:
// daily/weekly/monthly -> FREQ, custom -> weekly по выбранным дням,
// Count > 0 -> COUNT, EndDate -> UNTIL, Days -> BYDAY
func buildRule(a model.Appointment) (*rrule.RRule, error) {
	rec := a.Recurrence

	opt := rrule.ROption{Dtstart: a.Start}
	switch rec.Type {
	case model.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case model.RecurrenceWeekly, model.RecurrenceCustom:
		opt.Freq = rrule.WEEKLY
	case model.RecurrenceMonthly:
		opt.Freq = rrule.MONTHLY
	default:
		return nil, fmt.Errorf("unknown recurrence type %q", rec.Type)
	}

	if rec.Count > 0 {
		opt.Count = rec.Count
	}
	if rec.EndDate != nil {
		opt.Until = *rec.EndDate
	}
	if rec.RequiresDays() {
		for _, tag := range rec.Days {
			wd, ok := weekdayByTag[tag]
			if !ok {
				return nil, fmt.Errorf("unknown weekday tag %q", tag)
			}
			opt.Byweekday = append(opt.Byweekday, wd)
		}
	}

	return rrule.NewRRule(opt)
}
