package usecases_test

import (
	"context"
	"testing"
	"time"

	"phoenix-booking-service/internal/module/maintenance/mocks"
	"phoenix-booking-service/internal/module/maintenance/models/entity"
	"phoenix-booking-service/internal/module/maintenance/models/request"
	"phoenix-booking-service/internal/module/maintenance/usecases"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/scheduler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	start    = time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	end      = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(repoMock, log.Wrap(log.Setup()))
}

func teardown() {
	repoMock = nil
	uc = nil
}

func strPtr(s string) *string { return &s }

func storedWindow() entity.MaintenanceWindow {
	return entity.MaintenanceWindow{
		ID:          uuid.New(),
		HotelID:     "hotel-1",
		Description: "boiler",
		StartDate:   start,
		EndDate:     end,
		Priority:    "high",
		Status:      entity.StatusScheduled,
	}
}

func TestCreateWindow(t *testing.T) {
	t.Run("defaults and schedules both transitions", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("InsertWindow", mock.Anything, mock.MatchedBy(func(w entity.MaintenanceWindow) bool {
			return w.Priority == entity.PriorityMedium && w.Status == entity.StatusScheduled && w.CreatedBy == "user-1"
		})).Return(nil)
		repoMock.On("EnqueueTransition", mock.Anything, scheduler.TypeMaintenanceStart, mock.MatchedBy(func(p request.MaintenanceTransition) bool {
			return p.From == entity.StatusScheduled && p.To == entity.StatusInProgress
		}), start).Return(nil)
		repoMock.On("EnqueueTransition", mock.Anything, scheduler.TypeMaintenanceComplete, mock.MatchedBy(func(p request.MaintenanceTransition) bool {
			return p.From == entity.StatusInProgress && p.To == entity.StatusCompleted
		}), end).Return(nil)

		window, err := uc.CreateWindow(context.Background(), &request.CreateMaintenance{
			HotelID:   "hotel-1",
			StartDate: "2025-03-02",
			EndDate:   "2025-03-03",
		}, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, entity.PriorityMedium, window.Priority)
		assert.Equal(t, entity.StatusScheduled, window.Status)
		repoMock.AssertExpectations(t)
	})

	t.Run("scheduling failure does not fail the create", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("InsertWindow", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("EnqueueTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.InternalServerError("error enqueue maintenance task"))

		_, err := uc.CreateWindow(context.Background(), &request.CreateMaintenance{
			HotelID:   "hotel-1",
			StartDate: "2025-03-02",
			EndDate:   "2025-03-03",
			Priority:  "urgent",
		}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("invalid dates", func(t *testing.T) {
		setup()
		defer teardown()

		testCases := []request.CreateMaintenance{
			{HotelID: "hotel-1", StartDate: "2025-03-03", EndDate: "2025-03-02"},
			{HotelID: "hotel-1", StartDate: "2025-03-02", EndDate: "2025-03-02"},
			{HotelID: "hotel-1", StartDate: "someday", EndDate: "2025-03-02"},
		}

		for _, tc := range testCases {
			_, err := uc.CreateWindow(context.Background(), &tc, "user-1")
			assert.True(t, errors.HasReason(err, errors.ReasonValidation))
		}
		repoMock.AssertNotCalled(t, "InsertWindow", mock.Anything, mock.Anything)
	})
}

func TestUpdateWindow(t *testing.T) {
	t.Run("partial update keeps the schedule", func(t *testing.T) {
		setup()
		defer teardown()

		window := storedWindow()
		repoMock.On("FindWindowByID", mock.Anything, window.ID.String()).Return(window, nil)
		repoMock.On("UpdateWindow", mock.Anything, mock.MatchedBy(func(w entity.MaintenanceWindow) bool {
			return w.Status == entity.StatusInProgress && w.Description == "boiler" && w.UpdatedAt.Valid
		})).Return(nil)

		updated, err := uc.UpdateWindow(context.Background(), window.ID.String(), &request.UpdateMaintenance{Status: strPtr(entity.StatusInProgress)})

		assert.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, updated.Status)
		repoMock.AssertNotCalled(t, "EnqueueTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("moved dates are rescheduled", func(t *testing.T) {
		setup()
		defer teardown()

		window := storedWindow()
		newEnd := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
		repoMock.On("FindWindowByID", mock.Anything, window.ID.String()).Return(window, nil)
		repoMock.On("UpdateWindow", mock.Anything, mock.Anything).Return(nil)
		repoMock.On("EnqueueTransition", mock.Anything, scheduler.TypeMaintenanceStart, mock.Anything, start).Return(nil)
		repoMock.On("EnqueueTransition", mock.Anything, scheduler.TypeMaintenanceComplete, mock.Anything, newEnd).Return(nil)

		_, err := uc.UpdateWindow(context.Background(), window.ID.String(), &request.UpdateMaintenance{EndDate: strPtr("2025-03-05")})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("merged range must stay ordered", func(t *testing.T) {
		setup()
		defer teardown()

		window := storedWindow()
		repoMock.On("FindWindowByID", mock.Anything, window.ID.String()).Return(window, nil)

		_, err := uc.UpdateWindow(context.Background(), window.ID.String(), &request.UpdateMaintenance{StartDate: strPtr("2025-03-04")})

		assert.True(t, errors.HasReason(err, errors.ReasonValidation))
		repoMock.AssertNotCalled(t, "UpdateWindow", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindWindowByID", mock.Anything, "missing").Return(entity.MaintenanceWindow{}, errors.NotFound("maintenance record not found"))

		_, err := uc.UpdateWindow(context.Background(), "missing", &request.UpdateMaintenance{})

		assert.True(t, errors.HasReason(err, errors.ReasonNotFound))
	})
}

func TestDeleteWindow(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("DeleteWindow", mock.Anything, "missing").Return(errors.NotFound("maintenance record not found"))

		err := uc.DeleteWindow(context.Background(), "missing")

		assert.True(t, errors.HasReason(err, errors.ReasonNotFound))
	})
}

func TestHasConflict(t *testing.T) {
	t.Run("delegates to storage", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("HasOverlap", mock.Anything, "hotel-1", start, end).Return(true, nil)

		conflict, err := uc.HasConflict(context.Background(), "hotel-1", start, end)

		assert.NoError(t, err)
		assert.True(t, conflict)
	})
}

func TestTransitionStatus(t *testing.T) {
	t.Run("due transition runs", func(t *testing.T) {
		setup()
		defer teardown()

		window := storedWindow()
		repoMock.On("FindWindowByID", mock.Anything, window.ID.String()).Return(window, nil)
		repoMock.On("TransitionStatus", mock.Anything, window.ID, entity.StatusScheduled, entity.StatusInProgress, mock.Anything).Return(true, nil)

		err := uc.TransitionStatus(context.Background(), &request.MaintenanceTransition{
			MaintenanceID: window.ID.String(),
			From:          entity.StatusScheduled,
			To:            entity.StatusInProgress,
		})

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("stale task before the window is skipped", func(t *testing.T) {
		setup()
		defer teardown()

		window := storedWindow()
		window.StartDate = time.Now().Add(48 * time.Hour)
		window.EndDate = time.Now().Add(72 * time.Hour)
		repoMock.On("FindWindowByID", mock.Anything, window.ID.String()).Return(window, nil)

		err := uc.TransitionStatus(context.Background(), &request.MaintenanceTransition{
			MaintenanceID: window.ID.String(),
			From:          entity.StatusInProgress,
			To:            entity.StatusCompleted,
		})

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleted window is dropped", func(t *testing.T) {
		setup()
		defer teardown()

		id := uuid.NewString()
		repoMock.On("FindWindowByID", mock.Anything, id).Return(entity.MaintenanceWindow{}, errors.NotFound("maintenance record not found"))

		err := uc.TransitionStatus(context.Background(), &request.MaintenanceTransition{MaintenanceID: id, From: entity.StatusScheduled, To: entity.StatusInProgress})

		assert.NoError(t, err)
	})

	t.Run("storage error is retried", func(t *testing.T) {
		setup()
		defer teardown()

		id := uuid.NewString()
		repoMock.On("FindWindowByID", mock.Anything, id).Return(entity.MaintenanceWindow{}, errors.InternalServerError("error find maintenance window"))

		err := uc.TransitionStatus(context.Background(), &request.MaintenanceTransition{MaintenanceID: id, From: entity.StatusScheduled, To: entity.StatusInProgress})

		assert.True(t, errors.HasReason(err, errors.ReasonInternal))
	})
}

func TestListWindows(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("FindWindows", mock.Anything, "hotel-1", entity.StatusScheduled).Return([]entity.MaintenanceWindow{storedWindow()}, nil)

	windows, err := uc.ListWindows(context.Background(), &request.ListMaintenance{HotelID: "hotel-1", Status: entity.StatusScheduled})

	assert.NoError(t, err)
	assert.Len(t, windows, 1)
	assert.Equal(t, "boiler", windows[0].Description)
}
