package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	PriorityMedium = "medium"
)

type MaintenanceWindow struct {
	ID          uuid.UUID    `db:"id"`
	HotelID     string       `db:"hotel_id"`
	Description string       `db:"description"`
	StartDate   time.Time    `db:"start_date"`
	EndDate     time.Time    `db:"end_date"`
	Priority    string       `db:"priority"`
	Status      string       `db:"status"`
	CreatedBy   string       `db:"created_by"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
}
