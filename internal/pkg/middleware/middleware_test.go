package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"phoenix-booking-service/internal/module/booking/models/response"
	"phoenix-booking-service/internal/pkg/errors"
	log_internal "phoenix-booking-service/internal/pkg/log"
	"phoenix-booking-service/internal/pkg/middleware"

	"github.com/casbin/casbin"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type tokenValidator map[string]response.UserServiceValidate

func (v tokenValidator) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	user, ok := v[token]
	if !ok {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}
	return user, nil
}

var (
	m   *middleware.Middleware
	app *fiber.App
)

func setup(t *testing.T) {
	enforcer, err := casbin.NewEnforcerSafe("../../../config/rbac_model.conf", "../../../config/policy.csv")
	assert.NoError(t, err)

	m = &middleware.Middleware{
		Log: log_internal.Setup(),
		Repo: tokenValidator{
			"guest-token": {IsValid: true, UserID: "user-1", Email: "ada@example.com", Roles: []string{"guest"}},
			"staff-token": {IsValid: true, UserID: "user-2", Email: "sam@example.com", Roles: []string{"guest", "staff"}},
		},
		Enforcer: enforcer,
	}

	app = fiber.New()
	app.Get("/me", m.ValidateToken, func(ctx *fiber.Ctx) error {
		return ctx.SendString(middleware.UserID(ctx) + " " + middleware.Email(ctx))
	})
	app.Get("/bookings/all", m.ValidateToken, m.RequireCapability("bookings", "read"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(http.StatusOK)
	})
	app.Patch("/bookings/:bookingId", m.ValidateToken, m.CheckCapability(middleware.ObjBookings, middleware.ActWrite), func(ctx *fiber.Ctx) error {
		if middleware.HasCapability(ctx, middleware.ObjBookings, middleware.ActWrite) {
			return ctx.SendStatus(http.StatusAccepted)
		}
		return ctx.SendStatus(http.StatusOK)
	})
	app.Post("/maintenance", m.ValidateToken, m.RequireCapability("maintenance", "write"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(http.StatusCreated)
	})
}

func call(t *testing.T, method, target, token string) int {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func TestValidateToken(t *testing.T) {
	setup(t)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(t, http.MethodGet, "/me", ""))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(t, http.MethodGet, "/me", "Basic guest-token"))
	})

	t.Run("unknown token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call(t, http.MethodGet, "/me", "Bearer nope"))
	})

	t.Run("caller is stored on the context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer guest-token")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := make([]byte, 64)
		n, _ := resp.Body.Read(body)
		assert.Equal(t, "user-1 ada@example.com", string(body[:n]))
	})
}

func TestRequireCapability(t *testing.T) {
	setup(t)

	t.Run("guest cannot list all bookings", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call(t, http.MethodGet, "/bookings/all", "Bearer guest-token"))
	})

	t.Run("any granted role is enough", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call(t, http.MethodGet, "/bookings/all", "Bearer staff-token"))
		assert.Equal(t, http.StatusCreated, call(t, http.MethodPost, "/maintenance", "Bearer staff-token"))
	})

	t.Run("guest cannot schedule maintenance", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call(t, http.MethodPost, "/maintenance", "Bearer guest-token"))
	})
}

func TestCheckCapability(t *testing.T) {
	setup(t)

	t.Run("guest continues without the capability", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call(t, http.MethodPatch, "/bookings/b-1", "Bearer guest-token"))
	})

	t.Run("staff continues with the capability", func(t *testing.T) {
		assert.Equal(t, http.StatusAccepted, call(t, http.MethodPatch, "/bookings/b-1", "Bearer staff-token"))
	})
}
