package calendar

import (
	"time"

	"github.com/schedulepro/calendar/internal/model"
)

// MonthCellLimit максимум встреч, отображаемых в ячейке месяца
const MonthCellLimit = 3

// LayoutEngine вычисляет раскладку встреч для отрисовки.
// Источник текущего времени передаётся явно, чтобы раскладка была
// детерминированной и тестируемой с фиксированными часами.
type LayoutEngine struct {
	now func() time.Time
}

// NewLayoutEngine создаёт движок раскладки. При nil используется time.Now.
func NewLayoutEngine(now func() time.Time) *LayoutEngine {
	if now == nil {
		now = time.Now
	}
	return &LayoutEngine{now: now}
}

// PositionedAppointment встреча с вычисленной позицией в колонке дня
type PositionedAppointment struct {
	Appointment model.Appointment
	TopPx       float64
	HeightPx    float64
	Past        bool // встреча уже закончилась на момент раскладки
}

// MonthCell содержимое одной ячейки месяца
type MonthCell struct {
	Visible []model.Appointment
	Extra   int // сколько встреч не поместилось ("+N more")
}

// IsPast проверяет, находится ли момент в прошлом. Значение "сейчас"
// перечитывается при каждом вызове — между отрисовками оно продвигается.
func (e *LayoutEngine) IsPast(t time.Time) bool {
	return t.Before(e.now())
}

// AppointmentsOverlappingDay отбирает встречи, пересекающие день.
// Полуоткрытая семантика: встреча с end ровно в полночь не занимает
// следующий день.
func AppointmentsOverlappingDay(appointments []model.Appointment, day time.Time) []model.Appointment {
	ds := DayStart(day)
	de := DayEnd(day)

	var overlapping []model.Appointment
	for _, a := range appointments {
		if a.End.After(ds) && a.Start.Before(de) {
			overlapping = append(overlapping, a)
		}
	}
	return overlapping
}

// LayoutForDay вычисляет позиции всех встреч дня. Всё сравнение с "сейчас"
// внутри одного вызова использует одно захваченное значение времени.
func (e *LayoutEngine) LayoutForDay(appointments []model.Appointment, day time.Time, slotHeightPx float64) []PositionedAppointment {
	now := e.now()

	dayAppts := AppointmentsOverlappingDay(appointments, day)
	positioned := make([]PositionedAppointment, 0, len(dayAppts))
	for _, a := range dayAppts {
		top, height := OffsetForInterval(a.Start, a.End, day, slotHeightPx)
		positioned = append(positioned, PositionedAppointment{
			Appointment: a,
			TopPx:       top,
			HeightPx:    height,
			Past:        a.End.Before(now),
		})
	}
	return positioned
}

// MonthCellAppointments возвращает первые 3 встречи дня для ячейки месяца
// и количество не поместившихся
func MonthCellAppointments(appointments []model.Appointment, day time.Time) MonthCell {
	overlapping := AppointmentsOverlappingDay(appointments, day)

	cell := MonthCell{Visible: overlapping}
	if len(overlapping) > MonthCellLimit {
		cell.Visible = overlapping[:MonthCellLimit]
		cell.Extra = len(overlapping) - MonthCellLimit
	}
	return cell
}
