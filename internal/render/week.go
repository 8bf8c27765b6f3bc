package render

import (
	"time"

	"github.com/fogleman/gg"

	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/model"
)

// RenderDay отрисовывает режим дня: одна колонка с 48 получасовыми слотами
func RenderDay(occurrences []model.Occurrence, anchor, now time.Time) ([]byte, error) {
	dc := createCanvas()
	drawTitle(dc, calendar.FormatLabel(anchor, calendar.ViewDay))

	gridTop := float64(headerHeight)
	gridHeight := float64(imageHeight - headerHeight)
	slotHeight := gridHeight / calendar.SlotsPerDay
	colX := float64(leftLabelsWidth)
	colWidth := float64(imageWidth - leftLabelsWidth - 20)

	drawHourLabels(dc, gridTop, slotHeight)
	drawDayColumn(dc, appointmentsOf(occurrences), anchor, now, colX, colWidth, gridTop, slotHeight, false)

	if calendar.DayStart(now).Equal(calendar.DayStart(anchor)) {
		drawCurrentTimeLine(dc, now, anchor, colX, colWidth, gridTop, slotHeight)
	}

	return encodeImage(dc)
}

// RenderWeek отрисовывает режим недели: 7 колонок Пн-Вс
func RenderWeek(occurrences []model.Occurrence, anchor, now time.Time) ([]byte, error) {
	dc := createCanvas()
	drawTitle(dc, calendar.FormatLabel(anchor, calendar.ViewWeek))

	gridTop := float64(headerHeight)
	gridHeight := float64(imageHeight - headerHeight)
	slotHeight := gridHeight / calendar.SlotsPerDay
	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDaysInWeek

	drawHourLabels(dc, gridTop, slotHeight)

	appointments := appointmentsOf(occurrences)
	today := calendar.DayStart(now)

	for i, day := range calendar.WeekDays(anchor) {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth

		// Фон колонки: чередование, сегодняшний день подсвечен
		if day.Equal(today) {
			dc.SetColor(todayBgColor)
		} else if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, gridTop, dayWidth, gridHeight)
		dc.Fill()

		// Заголовок дня
		dc.SetColor(textColor)
		dc.DrawStringAnchored(day.Format("Mon 02 Jan"), x+dayWidth/2, gridTop-12, 0.5, 0.5)

		drawDayColumn(dc, appointments, day, now, x, dayWidth, gridTop, slotHeight, true)

		if day.Equal(today) {
			drawCurrentTimeLine(dc, now, day, x, dayWidth, gridTop, slotHeight)
		}
	}

	return encodeImage(dc)
}

// drawHourLabels рисует колонку подписей времени слева (каждый час)
func drawHourLabels(dc *gg.Context, gridTop, slotHeight float64) {
	dc.SetColor(hourLabelColor)
	for _, slot := range calendar.GenerateSlots() {
		if slot.Minute != 0 {
			continue
		}
		y := gridTop + float64(slot.Hour*2)*slotHeight
		dc.DrawStringAnchored(slot.String(), leftLabelsWidth-10, y, 1, 0.5)
	}
}

// drawDayColumn рисует линии слотов и блоки встреч одной колонки дня.
// При compact=true линии рисуются только по часам, чтобы неделя не рябила.
func drawDayColumn(dc *gg.Context, appointments []model.Appointment, day, now time.Time, x, width, gridTop, slotHeight float64, compact bool) {
	dc.SetLineWidth(0.3)
	dc.SetColor(gridLineColor)
	for i := 0; i <= calendar.SlotsPerDay; i++ {
		if compact && i%2 != 0 {
			continue
		}
		y := gridTop + float64(i)*slotHeight
		dc.DrawLine(x, y, x+width, y)
		dc.Stroke()
	}

	engine := calendar.NewLayoutEngine(func() time.Time { return now })
	for _, p := range engine.LayoutForDay(appointments, day, slotHeight) {
		drawApptBlock(dc, p, x+dayPaddingX, width-2*dayPaddingX, gridTop)
	}
}
