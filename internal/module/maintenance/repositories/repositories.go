package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"phoenix-booking-service/internal/module/maintenance/models/entity"
	"phoenix-booking-service/internal/module/maintenance/models/request"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

const windowColumns = `id, hotel_id, description, start_date, end_date, priority, status, created_by, created_at, updated_at`

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	asynqClient scheduler.Enqueuer
}

type Repositories interface {
	// asynq
	EnqueueTransition(ctx context.Context, taskType string, payload request.MaintenanceTransition, at time.Time) error
	// db
	InsertWindow(ctx context.Context, window entity.MaintenanceWindow) error
	UpdateWindow(ctx context.Context, window entity.MaintenanceWindow) error
	DeleteWindow(ctx context.Context, maintenanceID string) error
	FindWindowByID(ctx context.Context, maintenanceID string) (entity.MaintenanceWindow, error)
	FindWindows(ctx context.Context, hotelID, status string) ([]entity.MaintenanceWindow, error)
	HasOverlap(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) (bool, error)
}

func New(db *sqlx.DB, log log.Logger, asynqClient scheduler.Enqueuer) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		asynqClient: asynqClient,
	}
}

// EnqueueTransition implements Repositories.
func (r *repositories) EnqueueTransition(ctx context.Context, taskType string, payload request.MaintenanceTransition, at time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal maintenance task")
	}

	task := asynq.NewTask(taskType, data, asynq.MaxRetry(3))
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(helpers.DurationCalculation(at)))
	if err != nil {
		r.log.Error(ctx, "error enqueue maintenance task", err)
		return errors.InternalServerError("error enqueue maintenance task")
	}

	r.log.Debug(ctx, fmt.Sprintf("maintenance task %s queued as %s", taskType, info.ID))
	return nil
}

// InsertWindow implements Repositories.
func (r *repositories) InsertWindow(ctx context.Context, window entity.MaintenanceWindow) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO maintenance_windows (id, hotel_id, description, start_date, end_date, priority, status, created_by, created_at)
		VALUES (:id, :hotel_id, :description, :start_date, :end_date, :priority, :status, :created_by, :created_at)
	`, window)
	if err != nil {
		r.log.Error(ctx, "error insert maintenance window", err)
		return errors.InternalServerError("error insert maintenance window")
	}

	return nil
}

// UpdateWindow implements Repositories.
func (r *repositories) UpdateWindow(ctx context.Context, window entity.MaintenanceWindow) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE maintenance_windows
		SET description = :description, start_date = :start_date, end_date = :end_date,
			priority = :priority, status = :status, updated_at = :updated_at
		WHERE id = :id
	`, window)
	if err != nil {
		r.log.Error(ctx, "error update maintenance window", err)
		return errors.InternalServerError("error update maintenance window")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("maintenance record not found")
	}

	return nil
}

// DeleteWindow implements Repositories.
func (r *repositories) DeleteWindow(ctx context.Context, maintenanceID string) error {
	id, err := uuid.Parse(maintenanceID)
	if err != nil {
		return errors.NotFound("maintenance record not found")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_windows WHERE id = $1`, id)
	if err != nil {
		r.log.Error(ctx, "error delete maintenance window", err)
		return errors.InternalServerError("error delete maintenance window")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("maintenance record not found")
	}

	return nil
}

// FindWindowByID implements Repositories.
func (r *repositories) FindWindowByID(ctx context.Context, maintenanceID string) (entity.MaintenanceWindow, error) {
	id, err := uuid.Parse(maintenanceID)
	if err != nil {
		return entity.MaintenanceWindow{}, errors.NotFound("maintenance record not found")
	}

	var window entity.MaintenanceWindow
	err = r.db.GetContext(ctx, &window, `SELECT `+windowColumns+` FROM maintenance_windows WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.MaintenanceWindow{}, errors.NotFound("maintenance record not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find maintenance window", err)
		return entity.MaintenanceWindow{}, errors.InternalServerError("error find maintenance window")
	}

	return window, nil
}

// FindWindows implements Repositories. Latest start first.
func (r *repositories) FindWindows(ctx context.Context, hotelID, status string) ([]entity.MaintenanceWindow, error) {
	var (
		conds []string
		args  []interface{}
	)
	if hotelID != "" {
		args = append(args, hotelID)
		conds = append(conds, fmt.Sprintf("hotel_id = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + windowColumns + ` FROM maintenance_windows`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY start_date DESC`

	windows := []entity.MaintenanceWindow{}
	if err := r.db.SelectContext(ctx, &windows, query, args...); err != nil {
		r.log.Error(ctx, "error find maintenance windows", err)
		return nil, errors.InternalServerError("error find maintenance windows")
	}

	return windows, nil
}

// HasOverlap implements Repositories. Every window counts, whatever its status.
func (r *repositories) HasOverlap(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM maintenance_windows
		WHERE hotel_id = $1 AND start_date < $2 AND end_date > $3
	)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, hotelID, checkOut, checkIn); err != nil {
		r.log.Error(ctx, "error check maintenance overlap", err)
		return false, errors.InternalServerError("error check maintenance overlap")
	}

	return exists, nil
}

// TransitionStatus implements Repositories. The row moves only while it is
// still in from.
func (r *repositories) TransitionStatus(ctx context.Context, id uuid.UUID, from, to string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE maintenance_windows SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, from, to, at)
	if err != nil {
		r.log.Error(ctx, "error transition maintenance window", err)
		return false, errors.InternalServerError("error transition maintenance window")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.InternalServerError("error transition maintenance window")
	}

	return n > 0, nil
}
