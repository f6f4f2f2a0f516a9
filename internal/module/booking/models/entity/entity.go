package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

type Booking struct {
	ID            uuid.UUID     `db:"id"`
	HotelID       string        `db:"hotel_id"`
	UserID        string        `db:"user_id"`
	Email         string        `db:"email"`
	FirstName     string        `db:"first_name"`
	LastName      string        `db:"last_name"`
	AdultCount    int           `db:"adult_count"`
	ChildCount    int           `db:"child_count"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	TotalCost     float64       `db:"total_cost"`
	Status        string        `db:"status"`
	PaymentStatus string        `db:"payment_status"`
	PaymentIntent string        `db:"payment_intent"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     sql.NullTime  `db:"updated_at"`
	Rooms         []BookingRoom `db:"-"`
}

// BookingRoom is one ordered room line of a booking.
type BookingRoom struct {
	BookingID     uuid.UUID `db:"booking_id"`
	LineNo        int       `db:"line_no"`
	RoomTypeID    string    `db:"room_type_id"`
	NumberOfRooms int       `db:"number_of_rooms"`
	PricePerNight float64   `db:"price_per_night"`
}

// Holds reports whether the booking still counts against inventory.
func (b Booking) Holds() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}
