package response

import (
	"time"

	"phoenix-booking-service/internal/module/waitlist/models/entity"
)

type WaitlistEntry struct {
	ID                 string     `json:"id"`
	HotelID            string     `json:"hotelId"`
	Email              string     `json:"email"`
	FirstName          string     `json:"firstName,omitempty"`
	LastName           string     `json:"lastName,omitempty"`
	CheckIn            time.Time  `json:"checkIn"`
	CheckOut           time.Time  `json:"checkOut"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	NotifiedAt         *time.Time `json:"notifiedAt,omitempty"`
	ConvertedBookingID string     `json:"convertedBookingId,omitempty"`
}

func FromEntity(e entity.WaitlistEntry) WaitlistEntry {
	out := WaitlistEntry{
		ID:        e.ID.String(),
		HotelID:   e.HotelID,
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		CheckIn:   e.CheckIn,
		CheckOut:  e.CheckOut,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
	if e.NotifiedAt.Valid {
		t := e.NotifiedAt.Time
		out.NotifiedAt = &t
	}
	if e.ConvertedBookingID.Valid {
		out.ConvertedBookingID = e.ConvertedBookingID.UUID.String()
	}
	return out
}

func FromEntities(entries []entity.WaitlistEntry) []WaitlistEntry {
	out := make([]WaitlistEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEntity(e))
	}
	return out
}
