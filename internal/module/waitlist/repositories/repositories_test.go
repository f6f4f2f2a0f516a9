package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"phoenix-booking-service/internal/module/waitlist/models/entity"
	"phoenix-booking-service/internal/module/waitlist/repositories"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

var (
	sqlMock  sqlmock.Sqlmock
	dbx      *sqlx.DB
	repo     repositories.Repositories
	checkIn  = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	cols     = []string{"id", "hotel_id", "email", "first_name", "last_name", "check_in", "check_out", "status", "created_at", "notified_at", "converted_booking_id"}
)

func setup() {
	db, m, _ := sqlmock.New()
	dbx = sqlx.NewDb(db, "postgres")
	sqlMock = m
	repo = repositories.New(dbx, log.Wrap(log.Setup()))
}

func teardown() {
	dbx.Close()
	repo = nil
}

func TestUpsertEntry(t *testing.T) {
	t.Run("returns the stored row", func(t *testing.T) {
		setup()
		defer teardown()

		storedID := uuid.New()
		entry := entity.WaitlistEntry{
			ID:        uuid.New(),
			HotelID:   "hotel-1",
			Email:     "ada@example.com",
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			CreatedAt: checkIn,
		}

		sqlMock.ExpectQuery(`ON CONFLICT ON CONSTRAINT waitlist_identity`).
			WithArgs(entry.ID, "hotel-1", "ada@example.com", "", "", checkIn, checkOut, entity.StatusWaiting, checkIn).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(storedID.String(), "hotel-1", "ada@example.com", "", "", checkIn, checkOut, entity.StatusNotified, checkIn, checkIn, nil))

		stored, err := repo.UpsertEntry(context.Background(), entry)

		assert.NoError(t, err)
		assert.Equal(t, storedID, stored.ID)
		assert.Equal(t, entity.StatusNotified, stored.Status)
		assert.True(t, stored.NotifiedAt.Valid)
		assert.False(t, stored.ConvertedBookingID.Valid)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		setup()
		defer teardown()

		sqlMock.ExpectQuery(`INSERT INTO waitlist_entries`).WillReturnError(sql.ErrConnDone)

		_, err := repo.UpsertEntry(context.Background(), entity.WaitlistEntry{ID: uuid.New()})

		assert.True(t, errors.HasReason(err, errors.ReasonInternal))
	})
}

func TestFindWaitingOverlapping(t *testing.T) {
	t.Run("oldest first with limit", func(t *testing.T) {
		setup()
		defer teardown()

		sqlMock.ExpectQuery(`status = 'waiting'.*ORDER BY created_at ASC, id ASC\s+LIMIT \$4`).
			WithArgs("hotel-1", checkOut, checkIn, 10).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(uuid.NewString(), "hotel-1", "a@example.com", "", "", checkIn, checkOut, entity.StatusWaiting, checkIn, nil, nil).
				AddRow(uuid.NewString(), "hotel-1", "b@example.com", "", "", checkIn, checkOut, entity.StatusWaiting, checkOut, nil, nil))

		entries, err := repo.FindWaitingOverlapping(context.Background(), "hotel-1", checkIn, checkOut, 10)

		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "a@example.com", entries[0].Email)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestMarkNotified(t *testing.T) {
	t.Run("moved", func(t *testing.T) {
		setup()
		defer teardown()

		id := uuid.New()
		at := time.Now().UTC()
		sqlMock.ExpectExec(`UPDATE waitlist_entries SET status = 'notified'`).
			WithArgs(id, at).
			WillReturnResult(sqlmock.NewResult(0, 1))

		moved, err := repo.MarkNotified(context.Background(), id, at)

		assert.NoError(t, err)
		assert.True(t, moved)
	})

	t.Run("no longer waiting", func(t *testing.T) {
		setup()
		defer teardown()

		sqlMock.ExpectExec(`AND status = 'waiting'`).WillReturnResult(sqlmock.NewResult(0, 0))

		moved, err := repo.MarkNotified(context.Background(), uuid.New(), time.Now())

		assert.NoError(t, err)
		assert.False(t, moved)
	})
}

func TestMarkConverted(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		id, bookingID := uuid.New(), uuid.New()
		sqlMock.ExpectExec(`SET status = 'converted'`).
			WithArgs(id, bookingID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkConverted(context.Background(), id, bookingID)

		assert.NoError(t, err)
	})

	t.Run("unknown entry", func(t *testing.T) {
		setup()
		defer teardown()

		sqlMock.ExpectExec(`SET status = 'converted'`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkConverted(context.Background(), uuid.New(), uuid.New())

		assert.True(t, errors.HasReason(err, errors.ReasonNotFound))
	})
}

func TestFindEntriesByHotelID(t *testing.T) {
	t.Run("all statuses", func(t *testing.T) {
		setup()
		defer teardown()

		sqlMock.ExpectQuery(`WHERE hotel_id = \$1 ORDER BY created_at DESC`).
			WithArgs("hotel-1").
			WillReturnRows(sqlmock.NewRows(cols))

		entries, err := repo.FindEntriesByHotelID(context.Background(), "hotel-1", "")

		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("filtered by status", func(t *testing.T) {
		setup()
		defer teardown()

		sqlMock.ExpectQuery(`WHERE hotel_id = \$1 AND status = \$2`).
			WithArgs("hotel-1", entity.StatusConverted).
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.FindEntriesByHotelID(context.Background(), "hotel-1", entity.StatusConverted)

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
