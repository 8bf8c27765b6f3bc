package api

import (
	"context"
	"time"

	"github.com/schedulepro/calendar/internal/model"
)

// Контракты удалённого коллаборатора. Ядро календаря само не ходит в сеть:
// оно получает готовые коллекции и отдаёт готовые payload'ы, а вызовы этих
// интерфейсов делает обвязка (сервис, фоновое обновление).

// AppointmentSource отдаёт встречи пользователя
type AppointmentSource interface {
	Appointments(ctx context.Context, userID string) ([]model.Appointment, error)
	AppointmentsByDate(ctx context.Context, userID string, start, end time.Time) ([]model.Appointment, error)
}

// PersistenceSink принимает запросы на изменение. Идентификаторы встреч
// присваивает только он — на клиенте id никогда не генерируются.
type PersistenceSink interface {
	Create(ctx context.Context, payload model.Appointment) (*model.Appointment, error)
	Update(ctx context.Context, userID string, payload model.Appointment) (*model.Appointment, error)
	Delete(ctx context.Context, id, userID string) error
}

// UserDirectory отдаёт справочник пользователей для подсказок гостей
type UserDirectory interface {
	Users(ctx context.Context) ([]model.User, error)
}

// Backend полный набор контрактов удалённого коллаборатора
type Backend interface {
	AppointmentSource
	PersistenceSink
	UserDirectory
}
