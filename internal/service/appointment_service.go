package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/schedulepro/calendar/internal/api"
	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/draft"
	"github.com/schedulepro/calendar/internal/model"
	"github.com/schedulepro/calendar/internal/recur"
)

// AppointmentService оркестрирует работу со встречами: загрузка окна,
// создание/обновление/удаление с предварительной валидацией черновика.
// Валидационные ошибки уходят вызывающему без обёртки — их показывают
// пользователю; ошибки коллаборатора оборачиваются и не повторяются.
type AppointmentService struct {
	backend api.Backend
	logger  *zap.Logger
	now     func() time.Time
}

// NewAppointmentService создаёт сервис. При nil now используется time.Now.
func NewAppointmentService(backend api.Backend, logger *zap.Logger, now func() time.Time) *AppointmentService {
	if now == nil {
		now = time.Now
	}
	return &AppointmentService{
		backend: backend,
		logger:  logger,
		now:     now,
	}
}

// LoadWindow загружает встречи для отображаемого окна и разворачивает
// правила повторения в конкретные вхождения
func (s *AppointmentService) LoadWindow(ctx context.Context, userID string, anchor time.Time, mode calendar.ViewMode) ([]model.Occurrence, error) {
	start, end := calendar.VisibleWindow(anchor, mode)

	appointments, err := s.backend.AppointmentsByDate(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load window: %w", err)
	}

	occurrences := recur.Expand(appointments, start, end)

	s.logger.Debug("Window loaded",
		zap.String("user_id", userID),
		zap.String("view", string(mode)),
		zap.Time("window_start", start),
		zap.Time("window_end", end),
		zap.Int("appointments", len(appointments)),
		zap.Int("occurrences", len(occurrences)))

	return occurrences, nil
}

// Create валидирует черновик и создаёт встречу на сервере
func (s *AppointmentService) Create(ctx context.Context, d draft.Draft) (*model.Appointment, error) {
	payload, err := d.BuildCreatePayload(s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.backend.Create(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("Appointment created",
		zap.String("appointment_id", created.ID),
		zap.String("title", created.Title),
		zap.Time("start", created.Start),
		zap.Int("participants", len(created.ParticipantIDs)))

	return created, nil
}

// Update валидирует черновик и обновляет существующую встречу
func (s *AppointmentService) Update(ctx context.Context, userID string, d draft.Draft) (*model.Appointment, error) {
	payload, err := d.BuildUpdatePayload(s.now())
	if err != nil {
		return nil, err
	}

	updated, err := s.backend.Update(ctx, userID, payload)
	if err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.logger.Info("Appointment updated",
		zap.String("appointment_id", updated.ID),
		zap.String("title", updated.Title))

	return updated, nil
}

// Delete удаляет встречу
func (s *AppointmentService) Delete(ctx context.Context, id, userID string) error {
	if err := s.backend.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	s.logger.Info("Appointment deleted", zap.String("appointment_id", id))
	return nil
}

// Users получает справочник пользователей для подсказок гостей
func (s *AppointmentService) Users(ctx context.Context) ([]model.User, error) {
	users, err := s.backend.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

// Upcoming отбирает встречи для боковой панели "Upcoming Appointments".
// Прошедшие встречи (end < now) скрываются во всех режимах.
func (s *AppointmentService) Upcoming(appointments []model.Appointment, mode calendar.ViewMode, anchor time.Time) []model.Appointment {
	return UpcomingAt(appointments, mode, anchor, s.now())
}

// UpcomingAt чистая версия фильтра с явным "сейчас"
func UpcomingAt(appointments []model.Appointment, mode calendar.ViewMode, anchor, now time.Time) []model.Appointment {
	var upcoming []model.Appointment
	for _, a := range appointments {
		if a.End.Before(now) {
			continue
		}
		switch mode {
		case calendar.ViewWeek:
			start, end := calendar.VisibleWindow(anchor, calendar.ViewWeek)
			if !a.Start.Before(start) && !a.Start.After(end) {
				upcoming = append(upcoming, a)
			}
		case calendar.ViewMonth:
			if a.Start.Month() == anchor.Month() && a.Start.Year() == anchor.Year() {
				upcoming = append(upcoming, a)
			}
		default:
			if calendar.DayStart(a.Start).Equal(calendar.DayStart(anchor)) {
				upcoming = append(upcoming, a)
			}
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	return upcoming
}
