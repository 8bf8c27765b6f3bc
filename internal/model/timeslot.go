package model

import "fmt"

// TimeSlot представляет получасовой слот в сетке дня.
// Никогда не сохраняется, живёт только во время отрисовки.
type TimeSlot struct {
	Hour   int // 0-23
	Minute int // 0 или 30
}

// String возвращает метку слота в 24-часовом формате
func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}
