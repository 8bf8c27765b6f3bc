package model

// User представляет пользователя из справочника на сервере.
// Используется только для чтения (список гостей при создании встречи).
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
