package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"phoenix-booking-service/internal/module/waitlist/models/entity"
	"phoenix-booking-service/internal/module/waitlist/models/request"
	"phoenix-booking-service/internal/module/waitlist/models/response"
	"phoenix-booking-service/internal/module/waitlist/repositories"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/notification"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const DefaultWakeLimit = 10

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	notifier notification.Sink
	now      func() time.Time
}

type Usecase interface {
	Join(ctx context.Context, candidate request.Candidate) (response.WaitlistEntry, error)
	Register(ctx context.Context, hotelID string, payload *request.JoinWaitlist) (response.WaitlistEntry, error)
	Wake(ctx context.Context, hotelID string, checkIn, checkOut time.Time, limit int) ([]response.WaitlistEntry, error)
	Convert(ctx context.Context, waitlistID string, bookingID uuid.UUID) error
	ListEntries(ctx context.Context, hotelID string, payload *request.ListWaitlist) ([]response.WaitlistEntry, error)
}

func New(repo repositories.Repositories, log log.Logger, notifier notification.Sink) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Join records interest in a stay. Joining again with the same hotel, email
// and dates returns the stored entry unchanged.
func (u *usecase) Join(ctx context.Context, candidate request.Candidate) (response.WaitlistEntry, error) {
	candidate.Email = strings.TrimSpace(strings.ToLower(candidate.Email))
	if candidate.HotelID == "" || candidate.Email == "" {
		return response.WaitlistEntry{}, errors.BadRequest("hotel id and email are required")
	}
	if !candidate.CheckIn.Before(candidate.CheckOut) {
		return response.WaitlistEntry{}, errors.BadRequest("check-in must be before check-out")
	}

	stored, err := u.repo.UpsertEntry(ctx, entity.WaitlistEntry{
		ID:        uuid.New(),
		HotelID:   candidate.HotelID,
		Email:     candidate.Email,
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		CheckIn:   candidate.CheckIn,
		CheckOut:  candidate.CheckOut,
		Status:    entity.StatusWaiting,
		CreatedAt: u.now(),
	})
	if err != nil {
		return response.WaitlistEntry{}, err
	}

	return response.FromEntity(stored), nil
}

// Register is the guest-facing join: it parses the request and confirms the
// entry by notification.
func (u *usecase) Register(ctx context.Context, hotelID string, payload *request.JoinWaitlist) (response.WaitlistEntry, error) {
	checkIn, ok := helpers.ParseDate(payload.CheckIn)
	if !ok {
		return response.WaitlistEntry{}, errors.BadRequest("invalid check-in date")
	}
	checkOut, ok := helpers.ParseDate(payload.CheckOut)
	if !ok {
		return response.WaitlistEntry{}, errors.BadRequest("invalid check-out date")
	}

	entry, err := u.Join(ctx, request.Candidate{
		HotelID:   hotelID,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	})
	if err != nil {
		return response.WaitlistEntry{}, err
	}

	err = u.notifier.Send(ctx, notification.Notification{
		Type:    notification.TypeWaitlistJoined,
		To:      entry.Email,
		Subject: "You're on the waitlist",
		Message: fmt.Sprintf("We'll let you know if rooms free up between %s and %s.",
			entry.CheckIn.Format(helpers.DateLayout), entry.CheckOut.Format(helpers.DateLayout)),
		Metadata: map[string]interface{}{
			"waitlistId": entry.ID,
			"hotelId":    entry.HotelID,
		},
	})
	if err != nil {
		u.log.Warn(ctx, "error send waitlist joined notification", err)
	}

	return entry, nil
}

// Wake notifies up to limit waiting entries overlapping the freed range,
// oldest first. Each entry is handled on its own: a failed delivery leaves
// that entry waiting and does not stop the others.
func (u *usecase) Wake(ctx context.Context, hotelID string, checkIn, checkOut time.Time, limit int) ([]response.WaitlistEntry, error) {
	if limit <= 0 {
		limit = DefaultWakeLimit
	}

	entries, err := u.repo.FindWaitingOverlapping(ctx, hotelID, checkIn, checkOut, limit)
	if err != nil {
		return nil, err
	}

	// each goroutine only touches its own index
	notified := make([]bool, len(entries))
	var g errgroup.Group
	for i := range entries {
		i, entry := i, entries[i]
		g.Go(func() error {
			err := u.notifier.Send(ctx, notification.Notification{
				Type:    notification.TypeWaitlistAvailable,
				To:      entry.Email,
				Subject: "Rooms are available for your dates",
				Message: fmt.Sprintf("Rooms have opened up between %s and %s. Book now before they're gone.",
					entry.CheckIn.Format(helpers.DateLayout), entry.CheckOut.Format(helpers.DateLayout)),
				Metadata: map[string]interface{}{
					"waitlistId": entry.ID.String(),
					"hotelId":    entry.HotelID,
					"checkIn":    entry.CheckIn,
					"checkOut":   entry.CheckOut,
				},
			})
			if err != nil {
				u.log.Error(ctx, fmt.Sprintf("error notify waitlist entry %s", entry.ID), err)
				return nil
			}

			at := u.now()
			moved, err := u.repo.MarkNotified(ctx, entry.ID, at)
			if err != nil {
				u.log.Error(ctx, fmt.Sprintf("error mark waitlist entry %s notified", entry.ID), err)
				return nil
			}
			if !moved {
				return nil
			}

			notified[i] = true
			entries[i].Status = entity.StatusNotified
			entries[i].NotifiedAt.Time, entries[i].NotifiedAt.Valid = at, true
			return nil
		})
	}
	_ = g.Wait()

	out := make([]response.WaitlistEntry, 0, len(entries))
	for i, e := range entries {
		if notified[i] {
			out = append(out, response.FromEntity(e))
		}
	}

	return out, nil
}

func (u *usecase) Convert(ctx context.Context, waitlistID string, bookingID uuid.UUID) error {
	id, err := uuid.Parse(waitlistID)
	if err != nil {
		return errors.BadRequest("invalid waitlist id")
	}

	return u.repo.MarkConverted(ctx, id, bookingID)
}

func (u *usecase) ListEntries(ctx context.Context, hotelID string, payload *request.ListWaitlist) ([]response.WaitlistEntry, error) {
	entries, err := u.repo.FindEntriesByHotelID(ctx, hotelID, payload.Status)
	if err != nil {
		return nil, err
	}

	return response.FromEntities(entries), nil
}
