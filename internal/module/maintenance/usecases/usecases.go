package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"phoenix-booking-service/internal/module/maintenance/models/entity"
	"phoenix-booking-service/internal/module/maintenance/models/request"
	"phoenix-booking-service/internal/module/maintenance/models/response"
	"phoenix-booking-service/internal/module/maintenance/repositories"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/scheduler"

	"github.com/google/uuid"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
	now  func() time.Time
}

type Usecase interface {
	CreateWindow(ctx context.Context, payload *request.CreateMaintenance, userID string) (response.MaintenanceWindow, error)
	ListWindows(ctx context.Context, payload *request.ListMaintenance) ([]response.MaintenanceWindow, error)
	UpdateWindow(ctx context.Context, maintenanceID string, payload *request.UpdateMaintenance) (response.MaintenanceWindow, error)
	DeleteWindow(ctx context.Context, maintenanceID string) error
	HasConflict(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error)
	TransitionStatus(ctx context.Context, payload *request.MaintenanceTransition) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *usecase) CreateWindow(ctx context.Context, payload *request.CreateMaintenance, userID string) (response.MaintenanceWindow, error) {
	start, ok := helpers.ParseDate(payload.StartDate)
	if !ok {
		return response.MaintenanceWindow{}, errors.BadRequest("invalid dates")
	}
	end, ok := helpers.ParseDate(payload.EndDate)
	if !ok || !start.Before(end) {
		return response.MaintenanceWindow{}, errors.BadRequest("invalid dates")
	}

	priority := payload.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	window := entity.MaintenanceWindow{
		ID:          uuid.New(),
		HotelID:     payload.HotelID,
		Description: payload.Description,
		StartDate:   start,
		EndDate:     end,
		Priority:    priority,
		Status:      entity.StatusScheduled,
		CreatedBy:   userID,
		CreatedAt:   u.now(),
	}

	if err := u.repo.InsertWindow(ctx, window); err != nil {
		return response.MaintenanceWindow{}, err
	}

	u.scheduleTransitions(ctx, window)

	return response.FromEntity(window), nil
}

func (u *usecase) ListWindows(ctx context.Context, payload *request.ListMaintenance) ([]response.MaintenanceWindow, error) {
	windows, err := u.repo.FindWindows(ctx, payload.HotelID, payload.Status)
	if err != nil {
		return nil, err
	}

	out := make([]response.MaintenanceWindow, 0, len(windows))
	for _, w := range windows {
		out = append(out, response.FromEntity(w))
	}

	return out, nil
}

func (u *usecase) UpdateWindow(ctx context.Context, maintenanceID string, payload *request.UpdateMaintenance) (response.MaintenanceWindow, error) {
	window, err := u.repo.FindWindowByID(ctx, maintenanceID)
	if err != nil {
		return response.MaintenanceWindow{}, err
	}

	datesChanged := false
	if payload.StartDate != nil {
		start, ok := helpers.ParseDate(*payload.StartDate)
		if !ok {
			return response.MaintenanceWindow{}, errors.BadRequest("invalid dates")
		}
		datesChanged = datesChanged || !start.Equal(window.StartDate)
		window.StartDate = start
	}
	if payload.EndDate != nil {
		end, ok := helpers.ParseDate(*payload.EndDate)
		if !ok {
			return response.MaintenanceWindow{}, errors.BadRequest("invalid dates")
		}
		datesChanged = datesChanged || !end.Equal(window.EndDate)
		window.EndDate = end
	}
	if !window.StartDate.Before(window.EndDate) {
		return response.MaintenanceWindow{}, errors.BadRequest("invalid dates")
	}

	if payload.Description != nil && *payload.Description != "" {
		window.Description = *payload.Description
	}
	if payload.Priority != nil && *payload.Priority != "" {
		window.Priority = *payload.Priority
	}
	if payload.Status != nil && *payload.Status != "" {
		window.Status = *payload.Status
	}
	window.UpdatedAt = sql.NullTime{Time: u.now(), Valid: true}

	if err := u.repo.UpdateWindow(ctx, window); err != nil {
		return response.MaintenanceWindow{}, err
	}

	if datesChanged {
		u.scheduleTransitions(ctx, window)
	}

	return response.FromEntity(window), nil
}

func (u *usecase) DeleteWindow(ctx context.Context, maintenanceID string) error {
	return u.repo.DeleteWindow(ctx, maintenanceID)
}

// HasConflict reports whether any window of the hotel overlaps the stay.
func (u *usecase) HasConflict(ctx context.Context, hotelID string, checkIn, checkOut time.Time) (bool, error) {
	return u.repo.HasOverlap(ctx, hotelID, checkIn, checkOut)
}

// TransitionStatus runs a scheduled status change. Tasks for deleted windows,
// or ones made stale by a later date change, are dropped.
func (u *usecase) TransitionStatus(ctx context.Context, payload *request.MaintenanceTransition) error {
	window, err := u.repo.FindWindowByID(ctx, payload.MaintenanceID)
	if errors.HasReason(err, errors.ReasonNotFound) {
		u.log.Info(ctx, fmt.Sprintf("maintenance %s is gone, skip %s", payload.MaintenanceID, payload.To))
		return nil
	}
	if err != nil {
		return err
	}

	now := u.now()
	due := window.StartDate
	if payload.To == entity.StatusCompleted {
		due = window.EndDate
	}
	if now.Before(due) {
		u.log.Info(ctx, fmt.Sprintf("maintenance %s not due for %s until %s", window.ID, payload.To, due))
		return nil
	}

	moved, err := u.repo.TransitionStatus(ctx, window.ID, payload.From, payload.To, now)
	if err != nil {
		return err
	}
	if !moved {
		u.log.Info(ctx, fmt.Sprintf("maintenance %s is %s, skip %s", window.ID, window.Status, payload.To))
	}

	return nil
}

func (u *usecase) scheduleTransitions(ctx context.Context, window entity.MaintenanceWindow) {
	id := window.ID.String()

	err := u.repo.EnqueueTransition(ctx, scheduler.TypeMaintenanceStart, request.MaintenanceTransition{
		MaintenanceID: id,
		From:          entity.StatusScheduled,
		To:            entity.StatusInProgress,
	}, window.StartDate)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error schedule start of maintenance %s", id), err)
	}

	err = u.repo.EnqueueTransition(ctx, scheduler.TypeMaintenanceComplete, request.MaintenanceTransition{
		MaintenanceID: id,
		From:          entity.StatusInProgress,
		To:            entity.StatusCompleted,
	}, window.EndDate)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error schedule completion of maintenance %s", id), err)
	}
}
