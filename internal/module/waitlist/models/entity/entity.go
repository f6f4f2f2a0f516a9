package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusWaiting   = "waiting"
	StatusNotified  = "notified"
	StatusConverted = "converted"
)

type WaitlistEntry struct {
	ID                 uuid.UUID     `db:"id"`
	HotelID            string        `db:"hotel_id"`
	Email              string        `db:"email"`
	FirstName          string        `db:"first_name"`
	LastName           string        `db:"last_name"`
	CheckIn            time.Time     `db:"check_in"`
	CheckOut           time.Time     `db:"check_out"`
	Status             string        `db:"status"`
	CreatedAt          time.Time     `db:"created_at"`
	NotifiedAt         sql.NullTime  `db:"notified_at"`
	ConvertedBookingID uuid.NullUUID `db:"converted_booking_id"`
}
