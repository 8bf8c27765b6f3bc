package model

import "time"

// Occurrence представляет одно конкретное вхождение встречи внутри
// отображаемого окна (после разворачивания правила повторения).
type Occurrence struct {
	Appointment Appointment
	Start       time.Time
	End         time.Time
}

// AsAppointment возвращает копию встречи со временем этого вхождения.
// Удобно для слоя раскладки, который работает с обычными встречами.
func (o Occurrence) AsAppointment() Appointment {
	a := o.Appointment
	a.Start = o.Start
	a.End = o.End
	return a
}
