package create_booking

import (
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	createBooking "github.com/m04kA/SNK-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TableID       int64   `json:"tableId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`      // "2026-09-01"
	StartTime     string  `json:"startTime"` // "19:30"
	DurationHours int     `json:"durationHours"`
	SlipURL       *string `json:"slipUrl,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	TableID       int64   `json:"tableId"`
	TableName     *string `json:"tableName,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	TotalPrice    float64 `json:"totalPrice"`
	SlipURL       *string `json:"slipUrl,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TableID:       r.TableID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		SlipURL:       r.SlipURL,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		TableID:       resp.TableID,
		TableName:     resp.TableName,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        resp.Status,
		TotalPrice:    resp.TotalPrice,
		SlipURL:       resp.SlipURL,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
