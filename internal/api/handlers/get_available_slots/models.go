package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GZ-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/GZ-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	StationID string          `json:"stationId"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель часового слота
type AvailableSlot struct {
	StartTime   string `json:"startTime"`
	DisplayTime string `json:"displayTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:   slot.StartTime.String(),
			DisplayTime: slot.DisplayTime,
			IsAvailable: slot.IsAvailable,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StationID: resp.StationID.String(),
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(stationID uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StationID: stationID,
		Date:      date,
	}, nil
}
