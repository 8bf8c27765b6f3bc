package viewstate

import (
	"sync"
	"time"

	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/draft"
)

// Session состояние одной сессии: режим отображения, опорная дата и
// открытый черновик формы (nil = форма закрыта)
type Session struct {
	View   calendar.ViewMode
	Anchor time.Time
	Draft  *draft.Draft
}

// Manager управляет состояниями сессий календаря.
// Всё состояние эфемерное и живёт только в памяти.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewManager создаёт менеджер состояний. При nil now используется time.Now.
func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions: make(map[string]*Session),
		now:      now,
	}
}

// session возвращает состояние, создавая его при первом обращении.
// Вызывается под мьютексом записи.
func (m *Manager) session(sessionID string) *Session {
	s, exists := m.sessions[sessionID]
	if !exists {
		s = &Session{View: calendar.ViewDay, Anchor: m.now()}
		m.sessions[sessionID] = s
	}
	return s
}

// Snapshot возвращает копию текущего состояния сессии
func (m *Manager) Snapshot(sessionID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(sessionID)
	snapshot := *s
	if s.Draft != nil {
		draftCopy := *s.Draft
		snapshot.Draft = &draftCopy
	}
	return snapshot
}

// SetView переключает режим отображения
func (m *Manager) SetView(sessionID string, view calendar.ViewMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(sessionID).View = view
}

// SetAnchor устанавливает опорную дату (например, клик по дню в месяце)
func (m *Manager) SetAnchor(sessionID string, anchor time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(sessionID).Anchor = anchor
}

// Navigate сдвигает опорную дату вперёд или назад в текущем режиме
// и возвращает новую дату
func (m *Manager) Navigate(sessionID string, direction int) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(sessionID)
	s.Anchor = calendar.Advance(s.Anchor, s.View, direction)
	return s.Anchor
}

// OpenDraft открывает форму с черновиком (создание или редактирование)
func (m *Manager) OpenDraft(sessionID string, d draft.Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(sessionID).Draft = &d
}

// UpdateDraft заменяет открытый черновик результатом чистого преобразования
func (m *Manager) UpdateDraft(sessionID string, d draft.Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.session(sessionID)
	if s.Draft != nil {
		s.Draft = &d
	}
}

// CloseDraft закрывает форму. Черновик при этом просто выбрасывается —
// отмена неявная, незавершённых вычислений не бывает.
func (m *Manager) CloseDraft(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(sessionID).Draft = nil
}

// Clear полностью удаляет состояние сессии
func (m *Manager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}
