package handler

import (
	"context"
	"fmt"

	"phoenix-booking-service/internal/module/maintenance/models/request"
	"phoenix-booking-service/internal/module/maintenance/usecases"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type MaintenanceHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *MaintenanceHandler) CreateMaintenance(ctx *fiber.Ctx) error {
	var req request.CreateMaintenance
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	window, err := h.Usecase.CreateWindow(ctx.UserContext(), &req, middleware.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create maintenance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, window, "maintenance scheduled")
}

func (h *MaintenanceHandler) ListMaintenance(ctx *fiber.Ctx) error {
	var req request.ListMaintenance
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	windows, err := h.Usecase.ListWindows(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list maintenance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, windows, "success get maintenance")
}

func (h *MaintenanceHandler) UpdateMaintenance(ctx *fiber.Ctx) error {
	var req request.UpdateMaintenance
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	window, err := h.Usecase.UpdateWindow(ctx.UserContext(), ctx.Params("maintenanceId"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update maintenance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, window, "maintenance updated")
}

func (h *MaintenanceHandler) DeleteMaintenance(ctx *fiber.Ctx) error {
	if err := h.Usecase.DeleteWindow(ctx.UserContext(), ctx.Params("maintenanceId")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error delete maintenance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "maintenance deleted")
}

// TransitionMaintenance handles the scheduled start and complete tasks.
func (h *MaintenanceHandler) TransitionMaintenance(ctx context.Context, t *asynq.Task) error {
	var req request.MaintenanceTransition
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal task %s: %v", t.Type(), err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate task %s: %v", t.Type(), err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.TransitionStatus(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error transition maintenance %s: %v", req.MaintenanceID, err))
		return err
	}

	return nil
}
