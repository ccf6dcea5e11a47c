package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StationID uuid.UUID // ID станции
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	StationID uuid.UUID // ID станции
	Slots     []Slot    // Список слотов с признаком доступности
}

// Slot модель часового слота
type Slot struct {
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	DisplayTime string           // Время в 12-часовом формате ("10:00 AM")
	IsAvailable bool             // Свободен ли слот
}
