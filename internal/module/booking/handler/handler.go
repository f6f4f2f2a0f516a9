package handler

import (
	"context"
	"fmt"

	"phoenix-booking-service/internal/module/booking/models/request"
	"phoenix-booking-service/internal/module/booking/usecases"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"
	"phoenix-booking-service/internal/pkg/middleware"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	outcome, err := h.Usecase.CreateBooking(ctx.UserContext(), ctx.Params("hotelId"), &req, middleware.UserID(ctx), middleware.Email(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if outcome.Conflict != nil {
		return helpers.RespConflict(ctx, h.Log, outcome.Conflict)
	}

	return helpers.RespCreated(ctx, h.Log, outcome.Booking, "booking confirmed")
}

func (h *BookingHandler) UpdateBooking(ctx *fiber.Ctx) error {
	var req request.UpdateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.ensureAccess(ctx, ctx.Params("bookingId")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error access booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	outcome, err := h.Usecase.UpdateBooking(ctx.UserContext(), ctx.Params("bookingId"), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	if outcome.Conflict != nil {
		return helpers.RespConflict(ctx, h.Log, outcome.Conflict)
	}

	return helpers.RespSuccess(ctx, h.Log, outcome.Booking, "booking updated")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	if err := h.ensureAccess(ctx, ctx.Params("bookingId")); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error access booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	booking, err := h.Usecase.CancelBooking(ctx.UserContext(), ctx.Params("bookingId"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, booking, "booking cancelled")
}

// ensureAccess lets holders of bookings:write through; anyone else must own
// the booking, and sees NotFound otherwise.
func (h *BookingHandler) ensureAccess(ctx *fiber.Ctx, bookingID string) error {
	if middleware.HasCapability(ctx, middleware.ObjBookings, middleware.ActWrite) {
		return nil
	}
	_, err := h.Usecase.GetBooking(ctx.UserContext(), bookingID, middleware.UserID(ctx))
	return err
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	booking, err := h.Usecase.GetBooking(ctx.UserContext(), ctx.Params("bookingId"), middleware.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, booking, "success get booking")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	bookings, err := h.Usecase.ShowBookings(ctx.UserContext(), middleware.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, bookings, "success get bookings")
}

func (h *BookingHandler) HotelBookings(ctx *fiber.Ctx) error {
	bookings, err := h.Usecase.HotelBookings(ctx.UserContext(), ctx.Params("hotelId"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get hotel bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, bookings, "success get hotel bookings")
}

func (h *BookingHandler) AllBookings(ctx *fiber.Ctx) error {
	var req request.BookingFilter
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	bookings, err := h.Usecase.AllBookings(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get all bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, bookings, "success get bookings")
}

func (h *BookingHandler) CreatePaymentIntent(ctx *fiber.Ctx) error {
	var req request.PaymentIntent
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	intent, err := h.Usecase.CreatePaymentIntent(ctx.UserContext(), ctx.Params("hotelId"), &req, middleware.UserID(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment intent: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, intent, "payment intent created")
}

// ConsumeCancellationQueue cancels bookings on behalf of other services. A
// returned error sends the message through retry and then the poison queue.
func (h *BookingHandler) ConsumeCancellationQueue(msg *message.Message) error {
	tx := apm.DefaultTracer.StartTransaction("consume booking_cancellation", "messaging")
	defer tx.End()
	ctx := apm.ContextWithTransaction(msg.Context(), tx)

	var req request.CancelBooking
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate message: %v", err))
		return err
	}

	if _, err := h.Usecase.CancelBooking(ctx, req.BookingID); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error consume cancellation queue: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) AwardLoyaltyPoints(ctx context.Context, t *asynq.Task) error {
	var req request.LoyaltyAward
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal task: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate task: %v", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Usecase.AwardLoyaltyPoints(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error award loyalty points: %v", err))
		return err
	}

	return nil
}
