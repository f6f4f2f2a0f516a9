package response

import (
	"time"

	"phoenix-booking-service/internal/module/maintenance/models/entity"
)

type MaintenanceWindow struct {
	ID          string     `json:"id"`
	HotelID     string     `json:"hotelId"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func FromEntity(w entity.MaintenanceWindow) MaintenanceWindow {
	out := MaintenanceWindow{
		ID:          w.ID.String(),
		HotelID:     w.HotelID,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Priority:    w.Priority,
		Status:      w.Status,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
	}
	if w.UpdatedAt.Valid {
		t := w.UpdatedAt.Time
		out.UpdatedAt = &t
	}
	return out
}
