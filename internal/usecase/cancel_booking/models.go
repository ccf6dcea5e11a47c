package cancel_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID          uuid.UUID // ID бронирования
	UserID             uuid.UUID // Кто отменяет
	IsAdmin            bool      // Отменяет ли администратор
	CancellationReason string    // Причина отмены
}

// Response модель ответа с примененными суммами возврата.
// Значения авторитетны: клиент показывает их, а не собственный расчет.
type Response struct {
	BookingID       uuid.UUID
	Status          string
	AmountPaid      float64
	RefundAmount    float64
	CancellationFee float64
	CancelledAt     time.Time
}

// QuoteRequest модель запроса предварительного расчета возврата
type QuoteRequest struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	IsAdmin   bool
}

// QuoteResponse предварительный расчет возврата. Носит справочный
// характер - при отмене сумма пересчитывается сервером заново.
type QuoteResponse struct {
	BookingID       uuid.UUID
	AmountPaid      float64
	RefundAmount    float64
	CancellationFee float64
}
