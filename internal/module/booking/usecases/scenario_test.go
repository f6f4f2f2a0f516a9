package usecases_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"phoenix-booking-service/internal/module/booking/availability"
	"phoenix-booking-service/internal/module/booking/mocks"
	"phoenix-booking-service/internal/module/booking/models/entity"
	"phoenix-booking-service/internal/module/booking/models/request"
	"phoenix-booking-service/internal/module/booking/usecases"
	waitlistResponse "phoenix-booking-service/internal/module/waitlist/models/response"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/lock"
	"phoenix-booking-service/internal/pkg/log"
	notificationMocks "phoenix-booking-service/internal/pkg/notification/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// memoryStore keeps bookings in memory and answers capacity questions from
// them. Calls it does not override fall through to the embedded mock.
type memoryStore struct {
	*mocks.Repositories
	mu       sync.Mutex
	rooms    map[string]int
	bookings map[uuid.UUID]entity.Booking
}

func newMemoryStore(rooms map[string]int) *memoryStore {
	return &memoryStore{
		Repositories: new(mocks.Repositories),
		rooms:        rooms,
		bookings:     map[uuid.UUID]entity.Booking{},
	}
}

func (s *memoryStore) CountRoomType(ctx context.Context, hotelID, roomTypeID string) (int, error) {
	return s.rooms[roomTypeID], nil
}

func (s *memoryStore) CommittedRooms(ctx context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, exclude uuid.NullUUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for id, b := range s.bookings {
		if exclude.Valid && exclude.UUID == id {
			continue
		}
		if b.HotelID != hotelID || !b.Holds() || !helpers.Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			continue
		}
		for _, r := range b.Rooms {
			if r.RoomTypeID == roomTypeID {
				total += r.NumberOfRooms
			}
		}
	}
	return total, nil
}

func (s *memoryStore) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	// widen the window between check and write so unserialised callers would race
	time.Sleep(5 * time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memoryStore) UpdateBooking(ctx context.Context, booking *entity.Booking, replaceRooms bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[booking.ID]; !ok {
		return errors.NotFound("booking not found")
	}
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memoryStore) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	b, ok := s.bookings[id]
	if !ok {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return b, nil
}

func (s *memoryStore) EnqueueLoyaltyAward(ctx context.Context, award request.LoyaltyAward) error {
	return nil
}

// windowGate blocks stays overlapping any of its windows.
type windowGate struct {
	mu      sync.Mutex
	windows [][2]time.Time
}

func (g *windowGate) add(start, end time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.windows = append(g.windows, [2]time.Time{start, end})
}

func (g *windowGate) HasConflict(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, w := range g.windows {
		if helpers.Overlaps(w[0], w[1], checkIn, checkOut) {
			return true, nil
		}
	}
	return false, nil
}

// mutexLocker is a single-process stand-in for the redis locker.
type mutexLocker struct {
	mu sync.Mutex
}

func (l *mutexLocker) Acquire(ctx context.Context, keys ...string) (lock.Release, error) {
	l.mu.Lock()
	return func(context.Context) { l.mu.Unlock() }, nil
}

func TestBookingLifecycle(t *testing.T) {
	store := newMemoryStore(map[string]int{"deluxe": 2})
	gate := &windowGate{}
	ledger := new(mocks.WaitlistLedger)
	sink := new(notificationMocks.Sink)
	sink.On("Send", mock.Anything, mock.Anything).Return(nil)

	uc := usecases.New(store, gate, ledger, sink, &mutexLocker{}, log.Wrap(log.Setup()), options)
	ctx := context.Background()

	first, err := uc.CreateBooking(ctx, "hotel-1", createPayload(deluxe(2)), "user-1", "ada@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, first.Booking)

	second, err := uc.CreateBooking(ctx, "hotel-1", createPayload(deluxe(1)), "user-2", "bob@example.com")
	assert.NoError(t, err)
	assert.Equal(t, availability.ReasonBookedOut, second.Conflict.Reason)

	// a stay touching the booked range on check-out day does not overlap it
	later := &request.CreateBooking{CheckIn: "2025-03-04", CheckOut: "2025-03-06", Rooms: []request.RoomLine{deluxe(2)}}
	adjacent, err := uc.CreateBooking(ctx, "hotel-1", later, "user-2", "bob@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, adjacent.Booking)

	gate.add(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	blocked, err := uc.CreateBooking(ctx, "hotel-1", createPayload(deluxe(1)), "user-2", "bob@example.com")
	assert.NoError(t, err)
	assert.Equal(t, availability.ReasonMaintenance, blocked.Conflict.Reason)

	ledger.On("Wake", mock.Anything, "hotel-1", checkIn, checkOut, 10).Return([]waitlistResponse.WaitlistEntry{}, nil).Once()
	cancelled, err := uc.CancelBooking(ctx, first.Booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	assert.Equal(t, entity.PaymentRefunded, cancelled.PaymentStatus)
	ledger.AssertExpectations(t)

	committed, err := store.CommittedRooms(ctx, "hotel-1", "deluxe", checkIn, checkOut, uuid.NullUUID{})
	assert.NoError(t, err)
	assert.Equal(t, 0, committed)
}

func TestConcurrentBookingsForLastRooms(t *testing.T) {
	store := newMemoryStore(map[string]int{"deluxe": 2})
	sink := new(notificationMocks.Sink)
	sink.On("Send", mock.Anything, mock.Anything).Return(nil)

	uc := usecases.New(store, &windowGate{}, new(mocks.WaitlistLedger), sink, &mutexLocker{}, log.Wrap(log.Setup()), options)

	const callers = 5
	outcomes := make(chan bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := uc.CreateBooking(context.Background(), "hotel-1", createPayload(deluxe(2)), "user-1", "ada@example.com")
			assert.NoError(t, err)
			outcomes <- outcome.Booking != nil
		}()
	}
	wg.Wait()
	close(outcomes)

	succeeded := 0
	for ok := range outcomes {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, store.bookings, 1)
}

func TestRevivingCancelledBooking(t *testing.T) {
	newUsecase := func() (usecases.Usecase, *memoryStore) {
		store := newMemoryStore(map[string]int{"deluxe": 2})
		ledger := new(mocks.WaitlistLedger)
		ledger.On("Wake", mock.Anything, "hotel-1", checkIn, checkOut, 10).Return([]waitlistResponse.WaitlistEntry{}, nil)
		sink := new(notificationMocks.Sink)
		sink.On("Send", mock.Anything, mock.Anything).Return(nil)
		return usecases.New(store, &windowGate{}, ledger, sink, &mutexLocker{}, log.Wrap(log.Setup()), options), store
	}
	confirmed := entity.StatusConfirmed

	t.Run("rooms taken since cancel", func(t *testing.T) {
		uc, store := newUsecase()
		ctx := context.Background()

		a, err := uc.CreateBooking(ctx, "hotel-1", createPayload(deluxe(2)), "user-1", "ada@example.com")
		assert.NoError(t, err)
		_, err = uc.CancelBooking(ctx, a.Booking.ID)
		assert.NoError(t, err)
		b, err := uc.CreateBooking(ctx, "hotel-1", createPayload(deluxe(2)), "user-2", "bob@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, b.Booking)

		revived, err := uc.UpdateBooking(ctx, a.Booking.ID, &request.UpdateBooking{Status: &confirmed})

		assert.NoError(t, err)
		assert.Nil(t, revived.Booking)
		assert.Equal(t, availability.ReasonBookedOut, revived.Conflict.Reason)

		stored, err := store.FindBookingByID(ctx, a.Booking.ID)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, stored.Status)

		committed, err := store.CommittedRooms(ctx, "hotel-1", "deluxe", checkIn, checkOut, uuid.NullUUID{})
		assert.NoError(t, err)
		assert.Equal(t, 2, committed)
	})

	t.Run("rooms still free", func(t *testing.T) {
		uc, store := newUsecase()
		ctx := context.Background()

		a, err := uc.CreateBooking(ctx, "hotel-1", createPayload(deluxe(2)), "user-1", "ada@example.com")
		assert.NoError(t, err)
		_, err = uc.CancelBooking(ctx, a.Booking.ID)
		assert.NoError(t, err)

		revived, err := uc.UpdateBooking(ctx, a.Booking.ID, &request.UpdateBooking{Status: &confirmed})

		assert.NoError(t, err)
		assert.Nil(t, revived.Conflict)
		assert.Equal(t, entity.StatusConfirmed, revived.Booking.Status)

		committed, err := store.CommittedRooms(ctx, "hotel-1", "deluxe", checkIn, checkOut, uuid.NullUUID{})
		assert.NoError(t, err)
		assert.Equal(t, 2, committed)
	})
}
