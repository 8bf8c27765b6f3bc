package validation

import (
	"errors"
	"time"

	"github.com/schedulepro/calendar/internal/model"
)

// Локальные ошибки валидации формы встречи. Обнаруживаются синхронно до
// любого обращения к серверу и показываются пользователю без повторов.
var (
	ErrPastStart             = errors.New("start time must be in the future")
	ErrInvalidInterval       = errors.New("end must be after start")
	ErrMissingRecurrenceDays = errors.New("select at least one day for weekly recurrence")
	ErrEmptyTitle            = errors.New("title is required")
)

// ValidateTimes проверяет интервал встречи и правило повторения.
// Проверки идут по порядку, возвращается первая ошибка:
//  1. start не раньше текущего времени
//  2. start строго раньше end
//  3. для weekly/custom выбран хотя бы один день недели
//
// Count и EndDate намеренно не проверяются — их принимает сервер как есть.
func ValidateTimes(rec *model.Recurrence, start, end, now time.Time) error {
	if start.Before(now) {
		return ErrPastStart
	}
	if !end.After(start) {
		return ErrInvalidInterval
	}
	if rec != nil && rec.RequiresDays() && len(rec.Days) == 0 {
		return ErrMissingRecurrenceDays
	}
	return nil
}
