package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 80
	leftLabelsWidth = 80
	dayPaddingX     = 6
	minApptHeight   = 8.0
	apptBorderRad   = 6.0
	shadowOffset    = 3.0
	totalDaysInWeek = 7
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	gridLineColor  = color.NRGBA{150, 150, 150, 120}
	todayBgColor   = color.NRGBA{255, 99, 71, 60}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{228, 230, 233, 255}
	mutedCellColor = color.NRGBA{210, 212, 215, 255}

	upcomingApptColor = color.RGBA{106, 156, 222, 235}
	pastApptColor     = color.RGBA{158, 158, 158, 200}
	apptTextColor     = color.RGBA{20, 24, 28, 230}
	apptShadowColor   = color.RGBA{0, 0, 0, 20}

	currentTimeColor = color.NRGBA{255, 80, 80, 200}
)

// Render отрисовывает календарь в PNG для заданного режима.
// Чистая функция от (вхождения, опорная дата, сейчас): одно значение
// "сейчас" используется для всей картинки.
func Render(mode calendar.ViewMode, occurrences []model.Occurrence, anchor, now time.Time) ([]byte, error) {
	switch mode {
	case calendar.ViewWeek:
		return RenderWeek(occurrences, anchor, now)
	case calendar.ViewMonth:
		return RenderMonth(occurrences, anchor, now)
	case calendar.ViewDay:
		return RenderDay(occurrences, anchor, now)
	default:
		return nil, fmt.Errorf("unknown view mode %q", mode)
	}
}

// createCanvas создаёт контекст рисования с фоном и шрифтом.
// Шрифты в репозитории не возим — везде встроенный basicfont.
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawTitle рисует заголовок окна по центру шапки
func drawTitle(dc *gg.Context, title string) {
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

// appointmentsOf разворачивает вхождения в обычные встречи для слоя раскладки
func appointmentsOf(occurrences []model.Occurrence) []model.Appointment {
	appointments := make([]model.Appointment, 0, len(occurrences))
	for _, o := range occurrences {
		appointments = append(appointments, o.AsAppointment())
	}
	return appointments
}

// apptFillColor возвращает цвет блока встречи по её статусу
func apptFillColor(past bool) color.RGBA {
	if past {
		return pastApptColor
	}
	return upcomingApptColor
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawApptBlock рисует один блок встречи с тенью и рамкой
func drawApptBlock(dc *gg.Context, p calendar.PositionedAppointment, x, width, gridTop float64) {
	top := gridTop + p.TopPx
	height := p.HeightPx
	if height < minApptHeight {
		height = minApptHeight
	}

	fill := apptFillColor(p.Past)

	// Тень
	dc.SetColor(apptShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, top+1+shadowOffset, width, height-2, apptBorderRad)
	dc.Fill()

	// Блок
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, top+1, width, height-2, apptBorderRad)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, top+1, width, height-2, apptBorderRad)
	dc.Stroke()

	// Название и время, если блок достаточно высокий
	dc.SetColor(apptTextColor)
	dc.DrawStringAnchored(truncate(p.Appointment.Title, 24), x+6, top+10, 0, 0.5)
	if height > 26 {
		timeText := p.Appointment.Start.Format("15:04") + "-" + p.Appointment.End.Format("15:04")
		dc.DrawStringAnchored(timeText, x+6, top+24, 0, 0.5)
	}
}

// drawCurrentTimeLine рисует красную линию текущего времени поверх колонок
func drawCurrentTimeLine(dc *gg.Context, now time.Time, dayStart time.Time, x, width, gridTop, slotHeight float64) {
	minutes := now.Sub(calendar.DayStart(dayStart)).Minutes()
	if minutes < 0 || minutes > 24*60 {
		return
	}

	y := gridTop + minutes/30*slotHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2)
	dc.DrawLine(x, y, x+width, y)
	dc.Stroke()
}

// truncate обрезает строку с многоточием
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
