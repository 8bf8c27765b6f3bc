package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/draft"
)

func newManager() (*Manager, time.Time) {
	now := time.Date(2030, time.June, 12, 10, 0, 0, 0, time.Local)
	return NewManager(func() time.Time { return now }), now
}

func TestDefaultSession(t *testing.T) {
	m, now := newManager()

	s := m.Snapshot("chat-1")

	assert.Equal(t, calendar.ViewDay, s.View)
	assert.Equal(t, now, s.Anchor)
	assert.Nil(t, s.Draft)
}

func TestSessionsAreIndependent(t *testing.T) {
	m, now := newManager()

	m.SetView("chat-1", calendar.ViewMonth)

	assert.Equal(t, calendar.ViewMonth, m.Snapshot("chat-1").View)
	assert.Equal(t, calendar.ViewDay, m.Snapshot("chat-2").View)
	assert.Equal(t, now, m.Snapshot("chat-2").Anchor)
}

func TestNavigateFollowsView(t *testing.T) {
	m, now := newManager()

	got := m.Navigate("chat-1", 1)
	assert.Equal(t, now.AddDate(0, 0, 1), got, "в режиме дня шаг — сутки")

	m.SetView("chat-1", calendar.ViewWeek)
	got = m.Navigate("chat-1", -1)
	assert.Equal(t, now.AddDate(0, 0, -6), got)

	m.SetAnchor("chat-1", now)
	m.SetView("chat-1", calendar.ViewMonth)
	got = m.Navigate("chat-1", 1)
	assert.Equal(t, time.July, got.Month())
}

func TestDraftLifecycle(t *testing.T) {
	m, now := newManager()

	d := draft.New(now, now.Add(30*time.Minute))
	d.Title = "Standup"
	m.OpenDraft("chat-1", d)

	s := m.Snapshot("chat-1")
	require.NotNil(t, s.Draft)
	assert.Equal(t, "Standup", s.Draft.Title)

	edited := *s.Draft
	edited.Title = "Standup (edited)"
	m.UpdateDraft("chat-1", edited)
	assert.Equal(t, "Standup (edited)", m.Snapshot("chat-1").Draft.Title)

	// Закрытие формы выбрасывает черновик
	m.CloseDraft("chat-1")
	assert.Nil(t, m.Snapshot("chat-1").Draft)

	// Обновление при закрытой форме — no-op
	m.UpdateDraft("chat-1", edited)
	assert.Nil(t, m.Snapshot("chat-1").Draft)
}

func TestSnapshotCopiesDraft(t *testing.T) {
	m, now := newManager()

	m.OpenDraft("chat-1", draft.New(now, now.Add(time.Hour)))

	s := m.Snapshot("chat-1")
	s.Draft.Title = "mutated locally"

	assert.Empty(t, m.Snapshot("chat-1").Draft.Title, "снимок не делит черновик с менеджером")
}

func TestClear(t *testing.T) {
	m, now := newManager()

	m.SetView("chat-1", calendar.ViewMonth)
	m.SetAnchor("chat-1", now.AddDate(0, 2, 0))
	m.Clear("chat-1")

	s := m.Snapshot("chat-1")
	assert.Equal(t, calendar.ViewDay, s.View)
	assert.Equal(t, now, s.Anchor)
}
