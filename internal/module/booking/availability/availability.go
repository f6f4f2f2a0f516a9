package availability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.elastic.co/apm"
	"golang.org/x/sync/errgroup"
)

const (
	ReasonMaintenance = "maintenance"
	ReasonBookedOut   = "booked_out"
)

// RoomInventory reports how many rooms of a type the catalog lists for a hotel.
type RoomInventory interface {
	CountRoomType(ctx context.Context, hotelID, roomTypeID string) (int, error)
}

// OverlapCounter sums rooms already held by pending or confirmed bookings whose
// stay overlaps [checkIn, checkOut). excludeBookingID is left out of the sum.
type OverlapCounter interface {
	CommittedRooms(ctx context.Context, hotelID, roomTypeID string, checkIn, checkOut time.Time, excludeBookingID uuid.NullUUID) (int, error)
}

// MaintenanceGate reports whether any maintenance window of the hotel overlaps
// [checkIn, checkOut).
type MaintenanceGate interface {
	HasConflict(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error)
}

type Query struct {
	HotelID          string
	RoomTypeID       string
	RequestedRooms   int
	CheckIn          time.Time
	CheckOut         time.Time
	ExcludeBookingID uuid.NullUUID
}

type Result struct {
	TotalRooms          int
	CommittedRooms      int
	AvailableRooms      int
	BookingConflict     bool
	MaintenanceConflict bool
}

func (r Result) Conflicted() bool {
	return r.BookingConflict || r.MaintenanceConflict
}

// Reason names the conflict. Maintenance wins when both hold.
func (r Result) Reason() string {
	switch {
	case r.MaintenanceConflict:
		return ReasonMaintenance
	case r.BookingConflict:
		return ReasonBookedOut
	}
	return ""
}

type Evaluator struct {
	inventory   RoomInventory
	overlaps    OverlapCounter
	maintenance MaintenanceGate
}

func New(inventory RoomInventory, overlaps OverlapCounter, maintenance MaintenanceGate) *Evaluator {
	return &Evaluator{
		inventory:   inventory,
		overlaps:    overlaps,
		maintenance: maintenance,
	}
}

// Evaluate computes availability for one room line. Inputs are expected to be
// validated by the caller. The catalog count comes first; the overlap sum and
// the maintenance check then run concurrently and the first failure cancels
// the other.
func (e *Evaluator) Evaluate(ctx context.Context, q Query) (Result, error) {
	span, ctx := apm.StartSpan(ctx, "availability.Evaluate", "app")
	defer span.End()

	total, err := e.inventory.CountRoomType(ctx, q.HotelID, q.RoomTypeID)
	if err != nil {
		return Result{}, err
	}

	var (
		committed   int
		maintenance bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := e.overlaps.CommittedRooms(gctx, q.HotelID, q.RoomTypeID, q.CheckIn, q.CheckOut, q.ExcludeBookingID)
		if err != nil {
			return err
		}
		committed = n
		return nil
	})
	g.Go(func() error {
		ok, err := e.maintenance.HasConflict(gctx, q.HotelID, q.CheckIn, q.CheckOut)
		if err != nil {
			return err
		}
		maintenance = ok
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	available := total - committed
	if available < 0 {
		available = 0
	}

	return Result{
		TotalRooms:          total,
		CommittedRooms:      committed,
		AvailableRooms:      available,
		BookingConflict:     available < q.RequestedRooms,
		MaintenanceConflict: maintenance,
	}, nil
}
