package usecases

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"phoenix-booking-service/internal/module/booking/availability"
	"phoenix-booking-service/internal/module/booking/models/entity"
	"phoenix-booking-service/internal/module/booking/models/request"
	"phoenix-booking-service/internal/module/booking/models/response"
	"phoenix-booking-service/internal/module/booking/repositories"
	waitlistRequest "phoenix-booking-service/internal/module/waitlist/models/request"
	waitlistResponse "phoenix-booking-service/internal/module/waitlist/models/response"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/lock"
	"phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/notification"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// WaitlistLedger is what bookings need from the waitlist.
type WaitlistLedger interface {
	Join(ctx context.Context, candidate waitlistRequest.Candidate) (waitlistResponse.WaitlistEntry, error)
	Wake(ctx context.Context, hotelID string, checkIn, checkOut time.Time, limit int) ([]waitlistResponse.WaitlistEntry, error)
	Convert(ctx context.Context, waitlistID string, bookingID uuid.UUID) error
}

type Options struct {
	LoyaltyMultiplier float64
	WakeLimit         int
	Currency          string
	PaymentsEnabled   bool
}

type usecase struct {
	repo      repositories.Repositories
	evaluator *availability.Evaluator
	waitlist  WaitlistLedger
	notifier  notification.Sink
	locker    lock.Locker
	log       log.Logger
	opts      Options
	now       func() time.Time
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, hotelID string, payload *request.CreateBooking, userID, emailUser string) (response.BookingOutcome, error)
	UpdateBooking(ctx context.Context, bookingID string, payload *request.UpdateBooking) (response.BookingOutcome, error)
	CancelBooking(ctx context.Context, bookingID string) (response.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID string) (response.Booking, error)
	ShowBookings(ctx context.Context, userID string) ([]response.HotelBookings, error)
	HotelBookings(ctx context.Context, hotelID string) ([]response.Booking, error)
	AllBookings(ctx context.Context, filter *request.BookingFilter) ([]response.Booking, error)
	CreatePaymentIntent(ctx context.Context, hotelID string, payload *request.PaymentIntent, userID string) (response.PaymentIntent, error)
	// scheduler
	AwardLoyaltyPoints(ctx context.Context, payload *request.LoyaltyAward) error
}

func New(repo repositories.Repositories, maintenance availability.MaintenanceGate, waitlist WaitlistLedger, notifier notification.Sink, locker lock.Locker, log log.Logger, opts Options) Usecase {
	if locker == nil {
		locker = lock.NewNoopLocker()
	}

	return &usecase{
		repo:      repo,
		evaluator: availability.New(repo, repo, maintenance),
		waitlist:  waitlist,
		notifier:  notifier,
		locker:    locker,
		log:       log,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func parseStay(checkIn, checkOut string) (stay, error) {
	ci, ok := helpers.ParseDate(checkIn)
	if !ok {
		return stay{}, errors.BadRequest("invalid check-in date")
	}
	co, ok := helpers.ParseDate(checkOut)
	if !ok {
		return stay{}, errors.BadRequest("invalid check-out date")
	}
	if !ci.Before(co) {
		return stay{}, errors.BadRequest("check-in must be before check-out")
	}
	return stay{checkIn: ci, checkOut: co}, nil
}

func validateRooms(rooms []request.RoomLine) error {
	if len(rooms) == 0 {
		return errors.BadRequest("at least one room is required")
	}
	for i, r := range rooms {
		if strings.TrimSpace(r.RoomTypeID) == "" {
			return errors.BadRequest(fmt.Sprintf("rooms[%d]: room type is required", i))
		}
		if r.NumberOfRooms < 1 {
			return errors.BadRequest(fmt.Sprintf("rooms[%d]: number of rooms must be at least 1", i))
		}
		if r.PricePerNight < 0 {
			return errors.BadRequest(fmt.Sprintf("rooms[%d]: price per night must not be negative", i))
		}
	}
	return nil
}

func toRoomEntities(rooms []request.RoomLine) []entity.BookingRoom {
	out := make([]entity.BookingRoom, 0, len(rooms))
	for i, r := range rooms {
		out = append(out, entity.BookingRoom{
			LineNo:        i,
			RoomTypeID:    r.RoomTypeID,
			NumberOfRooms: r.NumberOfRooms,
			PricePerNight: r.PricePerNight,
		})
	}
	return out
}

func roomsCost(rooms []entity.BookingRoom, s stay) float64 {
	nights := float64(helpers.Nights(s.checkIn, s.checkOut))
	total := 0.0
	for _, r := range rooms {
		total += r.PricePerNight * float64(r.NumberOfRooms) * nights
	}
	return math.Round(total*100) / 100
}

func capacityKeys(hotelID string, rooms []entity.BookingRoom) []string {
	keys := make([]string, 0, len(rooms))
	for _, r := range rooms {
		keys = append(keys, lock.CapacityKey(hotelID, r.RoomTypeID))
	}
	return lock.Keys(keys...)
}

func conflictMessage(reason string) string {
	if reason == availability.ReasonMaintenance {
		return "Hotel is under maintenance for the selected dates"
	}
	return "Not enough rooms available for the selected dates"
}

// firstConflict evaluates room lines in order and stops at the first one that
// cannot be satisfied.
func (u *usecase) firstConflict(ctx context.Context, hotelID string, rooms []entity.BookingRoom, s stay, exclude uuid.NullUUID) (*response.Conflict, error) {
	for _, r := range rooms {
		result, err := u.evaluator.Evaluate(ctx, availability.Query{
			HotelID:          hotelID,
			RoomTypeID:       r.RoomTypeID,
			RequestedRooms:   r.NumberOfRooms,
			CheckIn:          s.checkIn,
			CheckOut:         s.checkOut,
			ExcludeBookingID: exclude,
		})
		if err != nil {
			return nil, err
		}
		if result.Conflicted() {
			return &response.Conflict{
				Message:    conflictMessage(result.Reason()),
				Reason:     result.Reason(),
				RoomTypeID: r.RoomTypeID,
			}, nil
		}
	}
	return nil, nil
}

func (u *usecase) CreateBooking(ctx context.Context, hotelID string, payload *request.CreateBooking, userID, emailUser string) (response.BookingOutcome, error) {
	if strings.TrimSpace(hotelID) == "" {
		return response.BookingOutcome{}, errors.BadRequest("hotel id is required")
	}
	s, err := parseStay(payload.CheckIn, payload.CheckOut)
	if err != nil {
		return response.BookingOutcome{}, err
	}
	if err := validateRooms(payload.Rooms); err != nil {
		return response.BookingOutcome{}, err
	}
	if payload.TotalCost != nil && *payload.TotalCost < 0 {
		return response.BookingOutcome{}, errors.BadRequest("total cost must not be negative")
	}

	email := payload.Email
	if email == "" {
		email = emailUser
	}

	booking := entity.Booking{
		ID:            uuid.New(),
		HotelID:       hotelID,
		UserID:        userID,
		Email:         email,
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		AdultCount:    payload.AdultCount,
		ChildCount:    payload.ChildCount,
		CheckIn:       s.checkIn,
		CheckOut:      s.checkOut,
		Status:        entity.StatusConfirmed,
		PaymentStatus: entity.PaymentPaid,
		PaymentIntent: payload.PaymentIntentID,
		CreatedAt:     u.now(),
		Rooms:         toRoomEntities(payload.Rooms),
	}
	if payload.TotalCost != nil {
		booking.TotalCost = *payload.TotalCost
	} else {
		booking.TotalCost = roomsCost(booking.Rooms, s)
	}

	conflict, err := u.reserve(ctx, &booking, s)
	if err != nil {
		return response.BookingOutcome{}, err
	}
	if conflict != nil {
		if helpers.Truthy(payload.AutoWaitlist) && email != "" {
			entry, err := u.waitlist.Join(ctx, waitlistRequest.Candidate{
				HotelID:   hotelID,
				Email:     email,
				FirstName: payload.FirstName,
				LastName:  payload.LastName,
				CheckIn:   s.checkIn,
				CheckOut:  s.checkOut,
			})
			if err != nil {
				u.log.Error(ctx, "error auto join waitlist", err)
			} else {
				conflict.WaitlistEntry = &entry
			}
		}
		return response.BookingOutcome{Conflict: conflict}, nil
	}

	if payload.WaitlistID != "" {
		if err := u.waitlist.Convert(ctx, payload.WaitlistID, booking.ID); err != nil {
			u.log.Warn(ctx, fmt.Sprintf("error convert waitlist entry %s", payload.WaitlistID), err)
		}
	}

	u.awardLoyalty(ctx, booking)
	u.notify(ctx, booking, notification.TypeBookingConfirmation, "Booking confirmed",
		fmt.Sprintf("Your booking from %s to %s is confirmed.", booking.CheckIn.Format(helpers.DateLayout), booking.CheckOut.Format(helpers.DateLayout)))

	resp := response.FromEntity(booking)
	return response.BookingOutcome{Booking: &resp}, nil
}

// reserve checks every room line and writes the booking while holding the
// capacity locks for its room types.
func (u *usecase) reserve(ctx context.Context, booking *entity.Booking, s stay) (*response.Conflict, error) {
	release, err := u.locker.Acquire(ctx, capacityKeys(booking.HotelID, booking.Rooms)...)
	if err != nil {
		return nil, err
	}
	defer release(ctx)

	conflict, err := u.firstConflict(ctx, booking.HotelID, booking.Rooms, s, uuid.NullUUID{})
	if err != nil || conflict != nil {
		return conflict, err
	}

	if err := u.repo.InsertBooking(ctx, booking); err != nil {
		return nil, err
	}

	return nil, nil
}

func (u *usecase) UpdateBooking(ctx context.Context, bookingID string, payload *request.UpdateBooking) (response.BookingOutcome, error) {
	var newCheckIn, newCheckOut *time.Time
	if payload.CheckIn != nil {
		ci, ok := helpers.ParseDate(*payload.CheckIn)
		if !ok {
			return response.BookingOutcome{}, errors.BadRequest("invalid check-in date")
		}
		newCheckIn = &ci
	}
	if payload.CheckOut != nil {
		co, ok := helpers.ParseDate(*payload.CheckOut)
		if !ok {
			return response.BookingOutcome{}, errors.BadRequest("invalid check-out date")
		}
		newCheckOut = &co
	}
	if newCheckIn != nil && newCheckOut != nil && !newCheckIn.Before(*newCheckOut) {
		return response.BookingOutcome{}, errors.BadRequest("check-in must be before check-out")
	}
	if payload.Rooms != nil {
		if err := validateRooms(payload.Rooms); err != nil {
			return response.BookingOutcome{}, err
		}
	}
	if payload.Status != nil && !entity.ValidStatus(*payload.Status) {
		return response.BookingOutcome{}, errors.BadRequest("invalid status")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingOutcome{}, err
	}

	prev := booking
	s := stay{checkIn: booking.CheckIn, checkOut: booking.CheckOut}
	if newCheckIn != nil {
		s.checkIn = *newCheckIn
	}
	if newCheckOut != nil {
		s.checkOut = *newCheckOut
	}
	if !s.checkIn.Before(s.checkOut) {
		return response.BookingOutcome{}, errors.BadRequest("check-in must be before check-out")
	}

	datesChanged := !s.checkIn.Equal(prev.CheckIn) || !s.checkOut.Equal(prev.CheckOut)
	roomsChanged := payload.Rooms != nil

	booking.CheckIn, booking.CheckOut = s.checkIn, s.checkOut
	if roomsChanged {
		booking.Rooms = toRoomEntities(payload.Rooms)
	}
	if payload.Status != nil {
		booking.Status = *payload.Status
	}
	cancelling := prev.Status != entity.StatusCancelled && booking.Status == entity.StatusCancelled
	if cancelling && booking.PaymentStatus == entity.PaymentPaid {
		booking.PaymentStatus = entity.PaymentRefunded
	}
	if datesChanged || roomsChanged {
		if cost := roomsCost(booking.Rooms, s); cost > 0 {
			booking.TotalCost = cost
		}
	}
	booking.UpdatedAt.Time, booking.UpdatedAt.Valid = u.now(), true

	// a revived booking takes rooms back, so it is checked like a new one
	reviving := !prev.Holds() && booking.Holds()
	recheck := (datesChanged || roomsChanged || reviving) && booking.Holds()
	conflict, err := u.commitUpdate(ctx, &booking, s, recheck, roomsChanged)
	if err != nil {
		return response.BookingOutcome{}, err
	}
	if conflict != nil {
		return response.BookingOutcome{Conflict: conflict}, nil
	}

	u.notify(ctx, booking, notification.TypeBookingUpdated, "Booking updated",
		fmt.Sprintf("Your booking is now %s from %s to %s.", booking.Status, booking.CheckIn.Format(helpers.DateLayout), booking.CheckOut.Format(helpers.DateLayout)))

	if cancelling {
		u.wake(ctx, prev.HotelID, prev.CheckIn, prev.CheckOut)
	}

	resp := response.FromEntity(booking)
	return response.BookingOutcome{Booking: &resp}, nil
}

// commitUpdate persists an update. When recheck is set every room line is
// evaluated again, without the booking's own rooms, under the capacity locks;
// any conflict leaves storage untouched.
func (u *usecase) commitUpdate(ctx context.Context, booking *entity.Booking, s stay, recheck, replaceRooms bool) (*response.Conflict, error) {
	if recheck {
		release, err := u.locker.Acquire(ctx, capacityKeys(booking.HotelID, booking.Rooms)...)
		if err != nil {
			return nil, err
		}
		defer release(ctx)

		exclude := uuid.NullUUID{UUID: booking.ID, Valid: true}
		conflict, err := u.firstConflict(ctx, booking.HotelID, booking.Rooms, s, exclude)
		if err != nil || conflict != nil {
			return conflict, err
		}
	}

	return nil, u.repo.UpdateBooking(ctx, booking, replaceRooms)
}

func (u *usecase) CancelBooking(ctx context.Context, bookingID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	booking.Status = entity.StatusCancelled
	if booking.PaymentStatus == entity.PaymentPaid {
		booking.PaymentStatus = entity.PaymentRefunded
	}
	booking.UpdatedAt.Time, booking.UpdatedAt.Valid = u.now(), true

	if err := u.repo.UpdateBooking(ctx, &booking, false); err != nil {
		return response.Booking{}, err
	}

	u.notify(ctx, booking, notification.TypeBookingCancelled, "Booking cancelled",
		fmt.Sprintf("Your booking from %s to %s has been cancelled.", booking.CheckIn.Format(helpers.DateLayout), booking.CheckOut.Format(helpers.DateLayout)))
	u.wake(ctx, booking.HotelID, booking.CheckIn, booking.CheckOut)

	return response.FromEntity(booking), nil
}

// GetBooking only resolves bookings owned by userID.
func (u *usecase) GetBooking(ctx context.Context, bookingID, userID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}
	if booking.UserID != userID {
		return response.Booking{}, errors.NotFound("booking not found")
	}

	return response.FromEntity(booking), nil
}

// ShowBookings groups the user's bookings by hotel, in order of first
// appearance. Hotels the catalog cannot resolve are left out.
func (u *usecase) ShowBookings(ctx context.Context, userID string) ([]response.HotelBookings, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := []response.HotelBookings{}
	index := map[string]int{}
	for _, b := range bookings {
		i, ok := index[b.HotelID]
		if !ok {
			i = len(groups)
			index[b.HotelID] = i
			groups = append(groups, response.HotelBookings{
				Hotel:    response.Hotel{ID: b.HotelID},
				Bookings: []response.Booking{},
			})
		}
		groups[i].Bookings = append(groups[i].Bookings, response.FromEntity(b))
	}

	resolved := make([]bool, len(groups))
	var g errgroup.Group
	g.SetLimit(8)
	for i := range groups {
		i := i
		g.Go(func() error {
			hotel, err := u.repo.FindHotel(ctx, groups[i].ID)
			if err != nil {
				u.log.Warn(ctx, fmt.Sprintf("error find hotel %s", groups[i].ID), err)
				return nil
			}
			groups[i].Hotel = hotel
			resolved[i] = true
			return nil
		})
	}
	_ = g.Wait()

	out := make([]response.HotelBookings, 0, len(groups))
	for i, group := range groups {
		if resolved[i] {
			out = append(out, group)
		}
	}

	return out, nil
}

func (u *usecase) HotelBookings(ctx context.Context, hotelID string) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	return response.FromEntities(bookings), nil
}

func (u *usecase) AllBookings(ctx context.Context, filter *request.BookingFilter) ([]response.Booking, error) {
	normalized := *filter
	if filter.StartDate != "" {
		d, ok := helpers.ParseDate(filter.StartDate)
		if !ok {
			return nil, errors.BadRequest("invalid start date")
		}
		normalized.StartDate = d.Format(time.RFC3339)
	}
	if filter.EndDate != "" {
		d, ok := helpers.ParseDate(filter.EndDate)
		if !ok {
			return nil, errors.BadRequest("invalid end date")
		}
		normalized.EndDate = d.Format(time.RFC3339)
	}

	bookings, err := u.repo.FindBookings(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return response.FromEntities(bookings), nil
}

// CreatePaymentIntent prices a stay from the catalog. Without payment
// credentials a mock intent is returned so the booking flow keeps working.
func (u *usecase) CreatePaymentIntent(ctx context.Context, hotelID string, payload *request.PaymentIntent, userID string) (response.PaymentIntent, error) {
	price, err := u.repo.FindRoomTypePrice(ctx, hotelID, payload.RoomTypeID)
	if err != nil {
		return response.PaymentIntent{}, err
	}

	nights := payload.NumberOfNights
	if nights < 1 {
		nights = 1
	}
	rooms := payload.RoomCount
	if rooms < 1 {
		rooms = 1
	}
	total := math.Round(price*float64(nights)*float64(rooms)*100) / 100

	if !u.opts.PaymentsEnabled {
		id := uuid.NewString()
		return response.PaymentIntent{
			PaymentIntentID: "pi_mock_" + id,
			ClientSecret:    "pi_mock_" + id + "_secret",
			TotalCost:       total,
		}, nil
	}

	intent, err := u.repo.CreatePaymentIntent(ctx, int64(math.Round(total*100)), u.opts.Currency, map[string]string{
		"hotelId":    hotelID,
		"userId":     userID,
		"roomTypeId": payload.RoomTypeID,
	})
	if err != nil {
		return response.PaymentIntent{}, err
	}
	intent.TotalCost = total

	return intent, nil
}

func (u *usecase) AwardLoyaltyPoints(ctx context.Context, payload *request.LoyaltyAward) error {
	return u.repo.AwardLoyaltyPoints(ctx, *payload)
}

func (u *usecase) awardLoyalty(ctx context.Context, booking entity.Booking) {
	if booking.UserID == "" {
		return
	}
	points := helpers.LoyaltyPoints(booking.TotalCost, u.opts.LoyaltyMultiplier)
	if points == 0 {
		return
	}

	err := u.repo.EnqueueLoyaltyAward(ctx, request.LoyaltyAward{
		UserID:    booking.UserID,
		Points:    points,
		Reason:    "completed_booking",
		BookingID: booking.ID.String(),
		TotalCost: booking.TotalCost,
	})
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error award loyalty points for booking %s", booking.ID), err)
	}
}

func (u *usecase) notify(ctx context.Context, booking entity.Booking, kind, subject, message string) {
	err := u.notifier.Send(ctx, notification.Notification{
		Type:    kind,
		To:      booking.Email,
		Subject: subject,
		Message: message,
		Metadata: map[string]interface{}{
			"bookingId": booking.ID.String(),
			"hotelId":   booking.HotelID,
			"status":    booking.Status,
		},
	})
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error send %s notification", kind), err)
	}
}

func (u *usecase) wake(ctx context.Context, hotelID string, checkIn, checkOut time.Time) {
	woken, err := u.waitlist.Wake(ctx, hotelID, checkIn, checkOut, u.opts.WakeLimit)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error wake waitlist for hotel %s", hotelID), err)
		return
	}
	if len(woken) > 0 {
		u.log.Info(ctx, fmt.Sprintf("notified %d waitlist entries for hotel %s", len(woken), hotelID))
	}
}
