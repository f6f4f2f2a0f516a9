package request

type RoomLine struct {
	RoomTypeID    string  `json:"roomTypeId" validate:"required"`
	NumberOfRooms int     `json:"numberOfRooms" validate:"required,min=1"`
	PricePerNight float64 `json:"pricePerNight" validate:"gte=0"`
}

type CreateBooking struct {
	CheckIn         string      `json:"checkIn" validate:"required"`
	CheckOut        string      `json:"checkOut" validate:"required"`
	Rooms           []RoomLine  `json:"rooms" validate:"required,min=1,dive"`
	TotalCost       *float64    `json:"totalCost" validate:"omitempty,gte=0"`
	Email           string      `json:"email" validate:"omitempty,email"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	AdultCount      int         `json:"adultCount" validate:"gte=0"`
	ChildCount      int         `json:"childCount" validate:"gte=0"`
	AutoWaitlist    interface{} `json:"autoWaitlist"`
	WaitlistID      string      `json:"waitlistId" validate:"omitempty,uuid"`
	PaymentIntentID string      `json:"paymentIntentId"`
}

type UpdateBooking struct {
	CheckIn  *string    `json:"checkIn"`
	CheckOut *string    `json:"checkOut"`
	Rooms    []RoomLine `json:"rooms" validate:"omitempty,dive"`
	Status   *string    `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

type CancelBooking struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
	Reason    string `json:"reason"`
}

type BookingFilter struct {
	Status    string `query:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	HotelID   string `query:"hotelId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Limit     int    `query:"limit" validate:"gte=0,lte=1000"`
}

type PaymentIntent struct {
	NumberOfNights int    `json:"numberOfNights" validate:"gte=0"`
	RoomCount      int    `json:"roomCount" validate:"gte=0"`
	RoomTypeID     string `json:"roomTypeId" validate:"required"`
}

type LoyaltyAward struct {
	UserID    string  `json:"userId" validate:"required"`
	Points    int64   `json:"points" validate:"required,min=1"`
	Reason    string  `json:"reason" validate:"required"`
	BookingID string  `json:"bookingId" validate:"required"`
	TotalCost float64 `json:"totalCost"`
}
