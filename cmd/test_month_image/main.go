package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schedulepro/calendar/internal/api"
	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/model"
	"github.com/schedulepro/calendar/internal/recur"
	"github.com/schedulepro/calendar/internal/render"
)

// Офлайн-проверка отрисовки: наполняем хранилище в памяти тестовыми
// встречами и сохраняем картинки месяца и недели в файлы.
func main() {
	ctx := context.Background()
	now := time.Now()

	store := api.NewMemoryStore(
		model.User{ID: "u1", Name: "Alice Johnson"},
		model.User{ID: "u2", Name: "Bob Smith"},
	)

	// Тестовые встречи: обычные, многодневная и повторяющаяся
	monday := calendar.WeekStart(now)
	samples := []model.Appointment{
		{
			Title:          "Standup",
			Description:    "Daily sync",
			Start:          monday.Add(9 * time.Hour),
			End:            monday.Add(9*time.Hour + 30*time.Minute),
			ParticipantIDs: []string{"u1", "u2"},
			Recurrence: &model.Recurrence{
				Type: model.RecurrenceWeekly,
				Days: []string{"Mon", "Wed", "Fri"},
			},
		},
		{
			Title: "Design review",
			Start: monday.AddDate(0, 0, 1).Add(14 * time.Hour),
			End:   monday.AddDate(0, 0, 1).Add(15 * time.Hour),
		},
		{
			Title: "Offsite",
			Start: monday.AddDate(0, 0, 3).Add(10 * time.Hour),
			End:   monday.AddDate(0, 0, 4).Add(16 * time.Hour), // через полночь
		},
		{
			Title: "1:1 with Bob",
			Start: monday.AddDate(0, 0, 4).Add(11 * time.Hour),
			End:   monday.AddDate(0, 0, 4).Add(11*time.Hour + 30*time.Minute),
		},
	}

	for _, a := range samples {
		if _, err := store.Create(ctx, a); err != nil {
			fmt.Printf("Failed to seed store: %v\n", err)
			os.Exit(1)
		}
	}

	for _, mode := range []calendar.ViewMode{calendar.ViewMonth, calendar.ViewWeek} {
		start, end := calendar.VisibleWindow(now, mode)
		appointments, _ := store.AppointmentsByDate(ctx, "u1", start, end)
		occurrences := recur.Expand(appointments, start, end)

		image, err := render.Render(mode, occurrences, now, now)
		if err != nil {
			fmt.Printf("Failed to render %s view: %v\n", mode, err)
			os.Exit(1)
		}

		filename := fmt.Sprintf("%s.png", mode)
		if err := os.WriteFile(filename, image, 0644); err != nil {
			fmt.Printf("Failed to write %s: %v\n", filename, err)
			os.Exit(1)
		}

		fmt.Printf("✅ %s view saved to %s (%d occurrences)\n", mode, filename, len(occurrences))
	}

	fmt.Printf("📅 Window label: %s\n", calendar.FormatLabel(now, calendar.ViewMonth))
}
