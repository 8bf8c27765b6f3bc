package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/schedulepro/calendar/internal/model"
	"github.com/schedulepro/calendar/internal/validation"
)

// DateLayout формат календарной даты в полях формы
const DateLayout = "2006-01-02"

// maxGuestSuggestions максимум подсказок в выпадающем списке гостей
const maxGuestSuggestions = 4

// Meridiem половина суток в 12-часовом формате
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ConvertTo24Hour переводит 12-часовой формат в 24-часовой:
// PM -> (h mod 12) + 12, AM -> h mod 12 (12 AM = 0, 12 PM = 12)
func ConvertTo24Hour(hour12 int, meridiem Meridiem) int {
	h := hour12 % 12
	if meridiem == PM {
		h += 12
	}
	return h
}

// DecomposeHour обратное преобразование: 24-часовой час в (1..12, AM/PM)
func DecomposeHour(hour24 int) (int, Meridiem) {
	meridiem := AM
	if hour24 >= 12 {
		meridiem = PM
	}
	h := hour24 % 12
	if h == 0 {
		h = 12
	}
	return h, meridiem
}

// AssembleDateTime собирает момент времени из раздельных полей формы.
// Секунды и миллисекунды принудительно обнуляются.
func AssembleDateTime(dateStr string, hour12, minute int, meridiem Meridiem) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), ConvertTo24Hour(hour12, meridiem), minute, 0, 0, time.Local), nil
}

// Draft черновик встречи: состояние открытой формы создания/редактирования.
// Значение иммутабельно — правки полей делаются копированием, гостевые
// операции возвращают новый черновик. Уничтожается при сохранении или
// закрытии формы.
type Draft struct {
	ID             string // пустой для новых встреч
	Title          string
	Description    string
	ParticipantIDs []string

	StartDate     string // формат DateLayout
	StartHour     int    // 1..12
	StartMinute   int
	StartMeridiem Meridiem

	EndDate     string
	EndHour     int
	EndMinute   int
	EndMeridiem Meridiem

	RecurrenceType    model.RecurrenceType
	RecurrenceCount   int
	RecurrenceEndDate string // формат DateLayout, пустая строка = не задана
	RecurrenceDays    []string
}

// New создаёт черновик для нового слота (дабл-клик по сетке)
func New(start, end time.Time) Draft {
	d := Draft{RecurrenceType: model.RecurrenceNone}
	d.setStart(start)
	d.setEnd(end)
	return d
}

// FromAppointment создаёт черновик для редактирования существующей встречи
func FromAppointment(a model.Appointment) Draft {
	d := Draft{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		ParticipantIDs: append([]string(nil), a.ParticipantIDs...),
		RecurrenceType: model.RecurrenceNone,
	}
	d.setStart(a.Start.Local())
	d.setEnd(a.End.Local())

	if a.Recurrence != nil {
		d.RecurrenceType = a.Recurrence.Type
		d.RecurrenceCount = a.Recurrence.Count
		d.RecurrenceDays = append([]string(nil), a.Recurrence.Days...)
		if a.Recurrence.EndDate != nil {
			d.RecurrenceEndDate = a.Recurrence.EndDate.Local().Format(DateLayout)
		}
	}
	return d
}

func (d *Draft) setStart(t time.Time) {
	d.StartDate = t.Format(DateLayout)
	d.StartHour, d.StartMeridiem = DecomposeHour(t.Hour())
	d.StartMinute = t.Minute()
}

func (d *Draft) setEnd(t time.Time) {
	d.EndDate = t.Format(DateLayout)
	d.EndHour, d.EndMeridiem = DecomposeHour(t.Hour())
	d.EndMinute = t.Minute()
}

// WithGuest добавляет гостя. Семантика множества: если гость уже выбран,
// возвращается черновик без изменений.
func (d Draft) WithGuest(userID string) Draft {
	for _, id := range d.ParticipantIDs {
		if id == userID {
			return d
		}
	}
	d.ParticipantIDs = append(append([]string(nil), d.ParticipantIDs...), userID)
	return d
}

// WithoutGuest убирает гостя из выбранных
func (d Draft) WithoutGuest(userID string) Draft {
	filtered := make([]string, 0, len(d.ParticipantIDs))
	for _, id := range d.ParticipantIDs {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	d.ParticipantIDs = filtered
	return d
}

// ToggleDay добавляет или убирает день недели в правиле повторения
func (d Draft) ToggleDay(day string) Draft {
	for i, existing := range d.RecurrenceDays {
		if existing == day {
			days := append([]string(nil), d.RecurrenceDays[:i]...)
			d.RecurrenceDays = append(days, d.RecurrenceDays[i+1:]...)
			return d
		}
	}
	d.RecurrenceDays = append(append([]string(nil), d.RecurrenceDays...), day)
	return d
}

// FilterUsers фильтрует справочник пользователей для подсказок гостей:
// регистронезависимое вхождение подстроки в имя, уже выбранные исключаются,
// не больше 4 результатов, порядок исходной коллекции сохраняется
func FilterUsers(users []model.User, selected []string, query string) []model.User {
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	query = strings.ToLower(query)
	var matches []model.User
	for _, u := range users {
		if selectedSet[u.ID] {
			continue
		}
		if !strings.Contains(strings.ToLower(u.Name), query) {
			continue
		}
		matches = append(matches, u)
		if len(matches) == maxGuestSuggestions {
			break
		}
	}
	return matches
}

// Interval собирает начало и конец встречи из полей формы
func (d Draft) Interval() (time.Time, time.Time, error) {
	start, err := AssembleDateTime(d.StartDate, d.StartHour, d.StartMinute, d.StartMeridiem)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("assemble start: %w", err)
	}
	end, err := AssembleDateTime(d.EndDate, d.EndHour, d.EndMinute, d.EndMeridiem)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("assemble end: %w", err)
	}
	return start, end, nil
}

// Recurrence собирает правило повторения из полей формы (nil для "none")
func (d Draft) Recurrence() (*model.Recurrence, error) {
	if d.RecurrenceType == model.RecurrenceNone || d.RecurrenceType == "" {
		return nil, nil
	}

	rec := &model.Recurrence{
		Type:  d.RecurrenceType,
		Count: d.RecurrenceCount,
		Days:  append([]string(nil), d.RecurrenceDays...),
	}
	if d.RecurrenceEndDate != "" {
		endDate, err := time.ParseInLocation(DateLayout, d.RecurrenceEndDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse recurrence end date: %w", err)
		}
		rec.EndDate = &endDate
	}
	return rec, nil
}

// BuildCreatePayload превращает черновик в запрос на создание встречи.
// Времена сериализуются в UTC, повторение "none" уходит на сервер как null.
func (d Draft) BuildCreatePayload(now time.Time) (model.Appointment, error) {
	if strings.TrimSpace(d.Title) == "" {
		return model.Appointment{}, validation.ErrEmptyTitle
	}

	start, end, err := d.Interval()
	if err != nil {
		return model.Appointment{}, err
	}
	rec, err := d.Recurrence()
	if err != nil {
		return model.Appointment{}, err
	}
	if err := validation.ValidateTimes(rec, start, end, now); err != nil {
		return model.Appointment{}, err
	}

	return model.Appointment{
		Title:          d.Title,
		Description:    d.Description,
		ParticipantIDs: append([]string(nil), d.ParticipantIDs...),
		Start:          start.UTC(),
		End:            end.UTC(),
		Recurrence:     rec,
	}, nil
}

// BuildUpdatePayload то же самое для обновления: дополнительно требует
// существующий идентификатор и прокидывает его без изменений.
// Гости и здесь уходят в каноническом поле participantIds.
func (d Draft) BuildUpdatePayload(now time.Time) (model.Appointment, error) {
	if d.ID == "" {
		return model.Appointment{}, fmt.Errorf("appointment id is required for update")
	}

	payload, err := d.BuildCreatePayload(now)
	if err != nil {
		return model.Appointment{}, err
	}
	payload.ID = d.ID
	return payload, nil
}
