package response

import (
	"time"

	"phoenix-booking-service/internal/module/booking/models/entity"
	waitlistResponse "phoenix-booking-service/internal/module/waitlist/models/response"
)

type UserServiceValidate struct {
	IsValid bool     `json:"is_valid"`
	UserID  string   `json:"user_id"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
}

type RoomLine struct {
	RoomTypeID    string  `json:"roomTypeId"`
	NumberOfRooms int     `json:"numberOfRooms"`
	PricePerNight float64 `json:"pricePerNight"`
}

type Booking struct {
	ID            string     `json:"id"`
	HotelID       string     `json:"hotelId"`
	UserID        string     `json:"userId,omitempty"`
	Email         string     `json:"email,omitempty"`
	FirstName     string     `json:"firstName,omitempty"`
	LastName      string     `json:"lastName,omitempty"`
	AdultCount    int        `json:"adultCount"`
	ChildCount    int        `json:"childCount"`
	CheckIn       time.Time  `json:"checkIn"`
	CheckOut      time.Time  `json:"checkOut"`
	Rooms         []RoomLine `json:"rooms"`
	TotalCost     float64    `json:"totalCost"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Conflict is the negative outcome of an availability check; it is not an error.
type Conflict struct {
	Message       string                          `json:"message"`
	Reason        string                          `json:"reason"`
	RoomTypeID    string                          `json:"roomTypeId"`
	WaitlistEntry *waitlistResponse.WaitlistEntry `json:"waitlistEntry,omitempty"`
}

// BookingOutcome carries exactly one of Booking or Conflict.
type BookingOutcome struct {
	Booking  *Booking
	Conflict *Conflict
}

type Hotel struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type HotelBookings struct {
	Hotel
	Bookings []Booking `json:"bookings"`
}

type PaymentIntent struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	TotalCost       float64 `json:"totalCost"`
}

func FromEntity(b entity.Booking) Booking {
	rooms := make([]RoomLine, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rooms = append(rooms, RoomLine{
			RoomTypeID:    r.RoomTypeID,
			NumberOfRooms: r.NumberOfRooms,
			PricePerNight: r.PricePerNight,
		})
	}

	return Booking{
		ID:            b.ID.String(),
		HotelID:       b.HotelID,
		UserID:        b.UserID,
		Email:         b.Email,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		AdultCount:    b.AdultCount,
		ChildCount:    b.ChildCount,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Rooms:         rooms,
		TotalCost:     b.TotalCost,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

func FromEntities(bookings []entity.Booking) []Booking {
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromEntity(b))
	}
	return out
}
