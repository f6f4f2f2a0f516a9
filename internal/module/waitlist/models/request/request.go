package request

import "time"

type JoinWaitlist struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"required"`
}

// Candidate is a parsed join request.
type Candidate struct {
	HotelID   string
	Email     string
	FirstName string
	LastName  string
	CheckIn   time.Time
	CheckOut  time.Time
}

type ListWaitlist struct {
	Status string `query:"status" validate:"omitempty,oneof=waiting notified converted"`
}
