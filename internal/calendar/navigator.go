package calendar

import (
	"fmt"
	"time"
)

// ViewMode режим отображения календаря
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// MonthGridSize размер сетки месяца: 6 недель по 7 дней
const MonthGridSize = 42

// WeekStart возвращает понедельник 00:00:00.000 недели, содержащей дату.
// Смещение (weekday+6)%7 переводит воскресенье (0) в 6, то есть недели
// начинаются с понедельника и заканчиваются воскресеньем.
func WeekStart(d time.Time) time.Time {
	mondayOffset := (int(d.Weekday()) + 6) % 7
	return DayStart(d).AddDate(0, 0, -mondayOffset)
}

// WeekDays возвращает 7 дней недели, содержащей дату (Пн-Вс)
func WeekDays(d time.Time) []time.Time {
	monday := WeekStart(d)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// VisibleWindow вычисляет отображаемое окно дат для опорной даты и режима
func VisibleWindow(anchor time.Time, mode ViewMode) (time.Time, time.Time) {
	switch mode {
	case ViewWeek:
		start := WeekStart(anchor)
		return start, DayEnd(start.AddDate(0, 0, 6))
	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return first, first.AddDate(0, 1, 0).Add(-time.Millisecond)
	default:
		return DayStart(anchor), DayEnd(anchor)
	}
}

// Advance сдвигает опорную дату вперёд или назад (direction = +1 / -1).
// Для месяца действуют правила переполнения stdlib (31 янв + 1 мес = 2/3 мар).
func Advance(anchor time.Time, mode ViewMode, direction int) time.Time {
	switch mode {
	case ViewWeek:
		return anchor.AddDate(0, 0, 7*direction)
	case ViewMonth:
		return anchor.AddDate(0, direction, 0)
	default:
		return anchor.AddDate(0, 0, direction)
	}
}

// FormatLabel форматирует заголовок окна для шапки календаря.
// Формат фиксирован: английские названия, порядок день/месяц/год.
func FormatLabel(anchor time.Time, mode ViewMode) string {
	switch mode {
	case ViewWeek:
		start := WeekStart(anchor)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s", start.Format("02 Jan 2006"), end.Format("02 Jan 2006"))
	case ViewMonth:
		return anchor.Format("January 2006")
	default:
		return anchor.Format("Monday, 02 January 2006")
	}
}

// MonthDay день в сетке месяца
type MonthDay struct {
	Date  time.Time
	Muted bool // день принадлежит соседнему месяцу
}

// MonthGridDays возвращает сетку месяца 6x7: 42 дня начиная с понедельника,
// идущего перед первым числом месяца (или совпадающего с ним)
func MonthGridDays(anchor time.Time) []MonthDay {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	start := WeekStart(first)

	days := make([]MonthDay, MonthGridSize)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = MonthDay{
			Date:  d,
			Muted: d.Month() != anchor.Month(),
		}
	}
	return days
}
