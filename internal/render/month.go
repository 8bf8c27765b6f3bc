package render

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"

	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/model"
)

// RenderMonth отрисовывает режим месяца: сетка 6x7, в ячейке до трёх
// встреч и счётчик "+N more"
func RenderMonth(occurrences []model.Occurrence, anchor, now time.Time) ([]byte, error) {
	dc := createCanvas()
	drawTitle(dc, calendar.FormatLabel(anchor, calendar.ViewMonth))

	gridTop := float64(headerHeight) + 20
	gridLeft := 20.0
	cellWidth := float64(imageWidth-40) / totalDaysInWeek
	cellHeight := (float64(imageHeight) - gridTop - 20) / 6

	// Шапка дней недели
	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	dc.SetColor(textColor)
	for i, wd := range weekdays {
		dc.DrawStringAnchored(wd, gridLeft+float64(i)*cellWidth+cellWidth/2, gridTop-10, 0.5, 0.5)
	}

	appointments := appointmentsOf(occurrences)
	today := calendar.DayStart(now)

	for i, day := range calendar.MonthGridDays(anchor) {
		row := i / totalDaysInWeek
		col := i % totalDaysInWeek
		x := gridLeft + float64(col)*cellWidth
		y := gridTop + float64(row)*cellHeight

		drawMonthCell(dc, appointments, day, today, now, x, y, cellWidth, cellHeight)
	}

	return encodeImage(dc)
}

// drawMonthCell рисует одну ячейку месяца: фон, число и встречи дня
func drawMonthCell(dc *gg.Context, appointments []model.Appointment, day calendar.MonthDay, today time.Time, now time.Time, x, y, width, height float64) {
	// Фон: дни соседних месяцев приглушены, сегодня подсвечен
	switch {
	case day.Muted:
		dc.SetColor(mutedCellColor)
	case day.Date.Equal(today):
		dc.SetColor(todayBgColor)
	default:
		dc.SetColor(evenDayColor)
	}
	dc.DrawRectangle(x+1, y+1, width-2, height-2)
	dc.Fill()

	dc.SetColor(gridLineColor)
	dc.SetLineWidth(0.5)
	dc.DrawRectangle(x+1, y+1, width-2, height-2)
	dc.Stroke()

	// Число месяца
	dc.SetColor(textColor)
	dc.DrawStringAnchored(fmt.Sprintf("%d", day.Date.Day()), x+10, y+12, 0, 0.5)

	// До трёх встреч и "+N more"
	cell := calendar.MonthCellAppointments(appointments, day.Date)
	lineY := y + 30
	for _, a := range cell.Visible {
		fill := apptFillColor(a.End.Before(now))
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x+6, lineY-7, width-12, 15, 3)
		dc.Fill()

		dc.SetColor(apptTextColor)
		dc.DrawStringAnchored(truncate(a.Title, 28), x+10, lineY, 0, 0.5)
		lineY += 19
	}
	if cell.Extra > 0 {
		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("+%d more", cell.Extra), x+10, lineY, 0, 0.5)
	}
}
