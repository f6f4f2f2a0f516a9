package middleware

import (
	"context"
	"fmt"
	"strings"

	"phoenix-booking-service/internal/module/booking/models/response"
	"phoenix-booking-service/internal/pkg/errors"
	"phoenix-booking-service/internal/pkg/helpers"

	"github.com/casbin/casbin"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email_user"
	LocalRoles  = "roles"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
}

type Middleware struct {
	Log      *otelzap.Logger
	Repo     TokenValidator
	Enforcer *casbin.Enforcer
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error parse bearer token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error parse bearer token"))
	}

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals(LocalUserID, resp.UserID)
	ctx.Locals(LocalEmail, resp.Email)
	ctx.Locals(LocalRoles, resp.Roles)

	return ctx.Next()
}

const (
	ObjBookings    = "bookings"
	ObjMaintenance = "maintenance"
	ActRead        = "read"
	ActWrite       = "write"
)

// RequireCapability lets the request through when any of the caller's roles
// is granted act on obj by the RBAC policy. Must run after ValidateToken.
func (m *Middleware) RequireCapability(obj, act string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ok, err := m.allowed(ctx, obj, act)
		if err != nil {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error enforce policy: %v", err))
			return helpers.RespError(ctx, m.Log, errors.InternalServerError("error enforce policy"))
		}
		if ok {
			return ctx.Next()
		}

		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("forbidden %s %s for roles %v", act, obj, ctx.Locals(LocalRoles)))
		return helpers.RespError(ctx, m.Log, errors.Forbidden(fmt.Sprintf("missing capability %s:%s", obj, act)))
	}
}

// CheckCapability records whether the caller holds act on obj and always
// continues. Handlers read the result with HasCapability.
func (m *Middleware) CheckCapability(obj, act string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ok, err := m.allowed(ctx, obj, act)
		if err != nil {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error enforce policy: %v", err))
			return helpers.RespError(ctx, m.Log, errors.InternalServerError("error enforce policy"))
		}
		ctx.Locals(CapabilityKey(obj, act), ok)
		return ctx.Next()
	}
}

func (m *Middleware) allowed(ctx *fiber.Ctx, obj, act string) (bool, error) {
	roles, _ := ctx.Locals(LocalRoles).([]string)
	for _, role := range roles {
		ok, err := m.Enforcer.EnforceSafe(role, obj, act)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func CapabilityKey(obj, act string) string {
	return "capability:" + obj + ":" + act
}

func HasCapability(ctx *fiber.Ctx, obj, act string) bool {
	ok, _ := ctx.Locals(CapabilityKey(obj, act)).(bool)
	return ok
}

func UserID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(LocalUserID).(string)
	return id
}

func Email(ctx *fiber.Ctx) string {
	email, _ := ctx.Locals(LocalEmail).(string)
	return email
}
