package handler_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"phoenix-booking-service/internal/module/maintenance/handler"
	"phoenix-booking-service/internal/module/maintenance/mocks"
	"phoenix-booking-service/internal/module/maintenance/models/request"
	"phoenix-booking-service/internal/module/maintenance/models/response"
	"phoenix-booking-service/internal/pkg/errors"
	log_internal "phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.MaintenanceHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.MaintenanceHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}
	app = fiber.New()
	app.Post("/maintenance", func(ctx *fiber.Ctx) error {
		ctx.Locals(middleware.LocalUserID, "admin-1")
		return ctx.Next()
	}, h.CreateMaintenance)
	app.Delete("/maintenance/:maintenanceId", h.DeleteMaintenance)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestCreateMaintenance(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.CreateMaintenance{HotelID: "hotel-1", StartDate: "2025-03-02", EndDate: "2025-03-03", Priority: "high"}
		jsonData, _ := json.Marshal(payload)
		ucm.On("CreateWindow", mock.Anything, &payload, "admin-1").Return(response.MaintenanceWindow{ID: uuid.NewString()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/maintenance", bytes.NewReader(jsonData))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unknown priority", func(t *testing.T) {
		setup()
		defer teardown()

		jsonData, _ := json.Marshal(request.CreateMaintenance{HotelID: "hotel-1", StartDate: "2025-03-02", EndDate: "2025-03-03", Priority: "whenever"})
		req := httptest.NewRequest(http.MethodPost, "/maintenance", bytes.NewReader(jsonData))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteMaintenance(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("DeleteWindow", mock.Anything, "missing").Return(errors.NotFound("maintenance record not found"))

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/maintenance/missing", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTransitionMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.MaintenanceTransition{MaintenanceID: uuid.NewString(), From: "scheduled", To: "in_progress"}
		jsonData, _ := json.Marshal(payload)
		ucm.On("TransitionStatus", ctx, &payload).Return(nil)

		err := h.TransitionMaintenance(ctx, asynq.NewTask("maintenance_start", jsonData))

		assert.NoError(t, err)
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.TransitionMaintenance(ctx, asynq.NewTask("maintenance_start", []byte(`not json`)))

		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
