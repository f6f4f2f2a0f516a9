package helpers

import (
	"phoenix-booking-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Response struct {
	Message string      `json:"message"`
	Reason  string      `json:"reason,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespCustom(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return RespCustom(ctx, log, fiber.StatusCreated, data, message)
}

func RespCustom(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	log.Ctx(ctx.UserContext()).Debug("response", zap.Int("status", status), zap.String("path", ctx.Path()))
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	ce, ok := errors.As(err)
	if !ok {
		log.Ctx(ctx.UserContext()).Error("unexpected error", zap.Error(err), zap.String("path", ctx.Path()))
		return ctx.Status(fiber.StatusInternalServerError).JSON(Response{
			Message: "internal server error",
			Reason:  errors.ReasonInternal,
		})
	}

	return ctx.Status(ce.Code).JSON(Response{
		Message: ce.Message,
		Reason:  ce.Reason,
	})
}

// RespConflict writes body as is with 409, for outcomes that carry their own
// message and reason.
func RespConflict(ctx *fiber.Ctx, log *otelzap.Logger, body interface{}) error {
	log.Ctx(ctx.UserContext()).Debug("response", zap.Int("status", fiber.StatusConflict), zap.String("path", ctx.Path()))
	return ctx.Status(fiber.StatusConflict).JSON(body)
}
