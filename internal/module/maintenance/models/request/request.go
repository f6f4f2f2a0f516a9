package request

type CreateMaintenance struct {
	HotelID     string `json:"hotelId" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateMaintenance struct {
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" validate:"omitempty,oneof=scheduled in_progress completed"`
}

type ListMaintenance struct {
	HotelID string `query:"hotelId"`
	Status  string `query:"status" validate:"omitempty,oneof=scheduled in_progress completed"`
}

// MaintenanceTransition is the payload of the scheduled status tasks.
type MaintenanceTransition struct {
	MaintenanceID string `json:"maintenanceId" validate:"required,uuid"`
	From          string `json:"from" validate:"required"`
	To            string `json:"to" validate:"required"`
}
