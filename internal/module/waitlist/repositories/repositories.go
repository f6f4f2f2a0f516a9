package repositories

import (
	"context"
	"time"

	"phoenix-booking-service/internal/module/waitlist/models/entity"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const entryColumns = `id, hotel_id, email, first_name, last_name, check_in, check_out, status, created_at, notified_at, converted_booking_id`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	UpsertEntry(ctx context.Context, entry entity.WaitlistEntry) (entity.WaitlistEntry, error)
	FindWaitingOverlapping(ctx context.Context, hotelID string, checkIn, checkOut time.Time, limit int) ([]entity.WaitlistEntry, error)
	MarkNotified(ctx context.Context, id uuid.UUID, notifiedAt time.Time) (bool, error)
	MarkConverted(ctx context.Context, id uuid.UUID, bookingID uuid.UUID) error
	FindEntriesByHotelID(ctx context.Context, hotelID, status string) ([]entity.WaitlistEntry, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// UpsertEntry implements Repositories. A repeated join hits the identity
// constraint and the stored row comes back untouched, whatever its status.
func (r *repositories) UpsertEntry(ctx context.Context, entry entity.WaitlistEntry) (entity.WaitlistEntry, error) {
	query := `INSERT INTO waitlist_entries (id, hotel_id, email, first_name, last_name, check_in, check_out, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT ON CONSTRAINT waitlist_identity DO UPDATE SET hotel_id = EXCLUDED.hotel_id
		RETURNING ` + entryColumns

	var stored entity.WaitlistEntry
	err := r.db.GetContext(ctx, &stored, query,
		entry.ID, entry.HotelID, entry.Email, entry.FirstName, entry.LastName,
		entry.CheckIn, entry.CheckOut, entity.StatusWaiting, entry.CreatedAt)
	if err != nil {
		r.log.Error(ctx, "error upsert waitlist entry", err)
		return entity.WaitlistEntry{}, errors.InternalServerError("error upsert waitlist entry")
	}

	return stored, nil
}

// FindWaitingOverlapping implements Repositories. Oldest entries first.
func (r *repositories) FindWaitingOverlapping(ctx context.Context, hotelID string, checkIn, checkOut time.Time, limit int) ([]entity.WaitlistEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM waitlist_entries
		WHERE hotel_id = $1
			AND status = 'waiting'
			AND check_in < $2
			AND check_out > $3
		ORDER BY created_at ASC, id ASC
		LIMIT $4`

	entries := []entity.WaitlistEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, hotelID, checkOut, checkIn, limit); err != nil {
		r.log.Error(ctx, "error find waiting entries", err)
		return nil, errors.InternalServerError("error find waiting entries")
	}

	return entries, nil
}

// MarkNotified implements Repositories. Only a waiting entry moves; false means
// it changed state in the meantime.
func (r *repositories) MarkNotified(ctx context.Context, id uuid.UUID, notifiedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE waitlist_entries SET status = 'notified', notified_at = $2 WHERE id = $1 AND status = 'waiting'`,
		id, notifiedAt)
	if err != nil {
		r.log.Error(ctx, "error mark entry notified", err)
		return false, errors.InternalServerError("error mark entry notified")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error mark entry notified")
	}

	return n > 0, nil
}

// MarkConverted implements Repositories.
func (r *repositories) MarkConverted(ctx context.Context, id uuid.UUID, bookingID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE waitlist_entries SET status = 'converted', converted_booking_id = $2 WHERE id = $1`,
		id, bookingID)
	if err != nil {
		r.log.Error(ctx, "error mark entry converted", err)
		return errors.InternalServerError("error mark entry converted")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error mark entry converted")
	}
	if n == 0 {
		return errors.NotFound("waitlist entry not found")
	}

	return nil
}

// FindEntriesByHotelID implements Repositories. Newest first.
func (r *repositories) FindEntriesByHotelID(ctx context.Context, hotelID, status string) ([]entity.WaitlistEntry, error) {
	entries := []entity.WaitlistEntry{}

	var err error
	if status == "" {
		err = r.db.SelectContext(ctx, &entries,
			`SELECT `+entryColumns+` FROM waitlist_entries WHERE hotel_id = $1 ORDER BY created_at DESC`, hotelID)
	} else {
		err = r.db.SelectContext(ctx, &entries,
			`SELECT `+entryColumns+` FROM waitlist_entries WHERE hotel_id = $1 AND status = $2 ORDER BY created_at DESC`, hotelID, status)
	}
	if err != nil {
		r.log.Error(ctx, "error find waitlist entries", err)
		return nil, errors.InternalServerError("error find waitlist entries")
	}

	return entries, nil
}
