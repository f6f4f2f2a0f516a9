package errors

import (
	"errors"
	"net/http"
)

// Reason codes carried by CustomError so callers can branch on something
// stabler than the message text.
const (
	ReasonValidation          = "validation_error"
	ReasonNotFound            = "not_found"
	ReasonConflict            = "conflict"
	ReasonUnauthorized        = "unauthorized"
	ReasonForbidden           = "forbidden"
	ReasonUpstreamUnavailable = "upstream_unavailable"
	ReasonInternal            = "internal_error"
)

var (
	// ErrNotificationFailed marks a notification dispatch that did not reach the sink.
	ErrNotificationFailed = errors.New("notification failed")
	// ErrLoyaltyAwardFailed marks a loyalty award the identity service did not accept.
	ErrLoyaltyAwardFailed = errors.New("loyalty award failed")
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Message: msg, Reason: ReasonValidation}
}

func NotFound(msg string) error {
	return &CustomError{Code: http.StatusNotFound, Message: msg, Reason: ReasonNotFound}
}

func Conflict(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg, Reason: ReasonConflict}
}

func UnauthorizedError(msg string) error {
	return &CustomError{Code: http.StatusUnauthorized, Message: msg, Reason: ReasonUnauthorized}
}

func Forbidden(msg string) error {
	return &CustomError{Code: http.StatusForbidden, Message: msg, Reason: ReasonForbidden}
}

// UpstreamUnavailable is returned when a sibling service on the critical path
// cannot be reached or answers with a non-success status.
func UpstreamUnavailable(msg string) error {
	return &CustomError{Code: http.StatusBadGateway, Message: msg, Reason: ReasonUpstreamUnavailable}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Message: msg, Reason: ReasonInternal}
}

// As unwraps err into a CustomError when possible.
func As(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// HasReason reports whether err is a CustomError with the given reason.
func HasReason(err error, reason string) bool {
	ce, ok := As(err)
	return ok && ce.Reason == reason
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
