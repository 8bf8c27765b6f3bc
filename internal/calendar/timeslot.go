package calendar

import (
	"time"

	"github.com/schedulepro/calendar/internal/model"
)

// Константы сетки дня
const (
	SlotsPerDay  = 48 // получасовые слоты с 00:00 до 23:30
	SlotDuration = 30 * time.Minute
)

// GenerateSlots возвращает фиксированную последовательность из 48 получасовых
// слотов от (0,0) до (23,30). Чистая функция без побочных эффектов.
func GenerateSlots() []model.TimeSlot {
	slots := make([]model.TimeSlot, 0, SlotsPerDay)
	for h := 0; h < 24; h++ {
		slots = append(slots, model.TimeSlot{Hour: h, Minute: 0})
		slots = append(slots, model.TimeSlot{Hour: h, Minute: 30})
	}
	return slots
}

// SlotIndex возвращает индекс слота 0..47 для момента времени
// (floor от количества получасов с начала дня)
func SlotIndex(t time.Time) int {
	return (t.Hour()*60 + t.Minute()) / 30
}

// SlotTime возвращает момент времени начала слота в указанный день
func SlotTime(day time.Time, slot model.TimeSlot) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), slot.Hour, slot.Minute, 0, 0, day.Location())
}

// DayStart нормализует время к началу дня (00:00:00.000)
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd возвращает конец дня (23:59:59.999)
func DayEnd(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// ClampToDay обрезает интервал [start, end] границами дня day.
// Вызывающий обязан заранее исключить интервалы, не пересекающие день.
func ClampToDay(start, end, day time.Time) (time.Time, time.Time) {
	ds := DayStart(day)
	de := DayEnd(day)
	if start.Before(ds) {
		start = ds
	}
	if end.After(de) {
		end = de
	}
	return start, end
}

// OffsetForInterval вычисляет вертикальное смещение и высоту интервала в
// пикселях для отрисовки внутри колонки дня. Интервал предварительно
// обрезается границами дня; высота всегда неотрицательна при end > start.
func OffsetForInterval(start, end, day time.Time, slotHeightPx float64) (topPx, heightPx float64) {
	cs, ce := ClampToDay(start, end, day)
	topPx = float64(SlotIndex(cs)) * slotHeightPx
	heightPx = float64(ce.Sub(cs).Milliseconds()) / float64(SlotDuration.Milliseconds()) * slotHeightPx
	if heightPx < 0 {
		heightPx = 0
	}
	return topPx, heightPx
}
