package create_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание брони
// Комната не передаётся: бронь всегда делается на комнату, в которой жилец заселён
type Request struct {
	IndividualID    int64     // ID жильца (из заголовка аутентификации)
	ReservationTime time.Time // Начало брони (timezone-aware)
	DurationMinutes int       // Длительность в минутах; 0 - длительность по умолчанию
}

// Response модель ответа с созданной бронью
type Response struct {
	ID              uuid.UUID // ID созданной брони
	RoomNumber      int       // Номер комнаты
	FloorNumber     int       // Номер этажа (снимок на момент создания)
	ReservationTime time.Time // Начало брони
	DurationMinutes int       // Длительность в минутах
	IndividualName  string    // Имя жильца для отображения
	CreatedAt       time.Time // Время создания
}
