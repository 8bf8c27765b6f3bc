package model

import "time"

// Ограничения на поля встречи (совпадают с формой на фронтенде)
const (
	TitleMaxLength       = 50
	DescriptionMaxLength = 250
)

// Appointment представляет встречу в календаре.
// ID присваивается сервером; у несохранённых черновиков он пустой.
type Appointment struct {
	ID             string      `json:"id,omitempty"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Start          time.Time   `json:"start"`
	End            time.Time   `json:"end"`
	ParticipantIDs []string    `json:"participantIds"`
	Recurrence     *Recurrence `json:"recurrence"` // nil = без повторения
}

// OverlapsWindow проверяет пересечение встречи с окном [start, end]
// (полуоткрытая семантика: встреча, закончившаяся ровно в start, не считается)
func (a *Appointment) OverlapsWindow(start, end time.Time) bool {
	return a.End.After(start) && a.Start.Before(end)
}
