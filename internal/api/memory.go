package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schedulepro/calendar/internal/model"
)

// MemoryStore бэкенд в памяти для офлайн-отрисовки и тестов.
// Реализует те же контракты, что и HTTP-клиент, и как настоящий
// коллаборатор сам присваивает идентификаторы.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments map[string]model.Appointment
	users        []model.User
}

// NewMemoryStore создаёт пустое хранилище с заданным справочником пользователей
func NewMemoryStore(users ...model.User) *MemoryStore {
	return &MemoryStore{
		appointments: make(map[string]model.Appointment),
		users:        users,
	}
}

// Appointments возвращает все встречи (хранилище однопользовательское)
func (s *MemoryStore) Appointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointments := make([]model.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// AppointmentsByDate возвращает встречи, пересекающие окно [start, end]
func (s *MemoryStore) AppointmentsByDate(ctx context.Context, userID string, start, end time.Time) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var appointments []model.Appointment
	for _, a := range s.appointments {
		if a.OverlapsWindow(start, end) {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

// Create сохраняет встречу, присваивая ей новый id
func (s *MemoryStore) Create(ctx context.Context, payload model.Appointment) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload.ID = uuid.NewString()
	s.appointments[payload.ID] = payload
	return &payload, nil
}

// Update заменяет существующую встречу
func (s *MemoryStore) Update(ctx context.Context, userID string, payload model.Appointment) (*model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.appointments[payload.ID]; !exists {
		return nil, fmt.Errorf("appointment not found")
	}
	s.appointments[payload.ID] = payload
	return &payload, nil
}

// Delete удаляет встречу
func (s *MemoryStore) Delete(ctx context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.appointments[id]; !exists {
		return fmt.Errorf("appointment not found")
	}
	delete(s.appointments, id)
	return nil
}

// Users возвращает справочник пользователей
func (s *MemoryStore) Users(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...), nil
}

var _ Backend = (*MemoryStore)(nil)
