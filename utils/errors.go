package utils

import (
	"Listline/internal/config"
	"Listline/internal/logging"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrResourceNotFound = errors.New("not found")
var ErrTemplateNotFound = fmt.Errorf("template: %w", ErrResourceNotFound)
var ErrTemplateFieldNotFound = fmt.Errorf("template field: %w", ErrResourceNotFound)
var ErrCampaignNotFound = fmt.Errorf("campaign: %w", ErrResourceNotFound)
var ErrCustomizationNotFound = fmt.Errorf("customization: %w", ErrResourceNotFound)
var ErrProfileNotFound = fmt.Errorf("profile: %w", ErrResourceNotFound)
var ErrAppSettingNotFound = fmt.Errorf("app setting: %w", ErrResourceNotFound)
var ErrOutboxMessageNotFound = fmt.Errorf("outbox message: %w", ErrResourceNotFound)

var ErrHttpBadRequest = errors.New("bad request")
var ErrTemplateNotAvailable = NewPublicError(ErrHttpBadRequest, "This template is not available")

var ErrHttpUnauthorized = errors.New("unauthorized")
var ErrHttpForbidden = errors.New("forbidden")
var ErrHttpConflict = errors.New("conflict")
var ErrHttpPayloadTooLarge = errors.New("payload too large")

// ErrUpstream marks failures of external services (AI providers, the browser, icon search).
var ErrUpstream = errors.New("upstream service failed")

// PublicError carries the exact message shown to clients for a sentinel error.
type PublicError struct {
	Message string
	Err     error
}

func NewPublicError(err error, message string) *PublicError {
	return &PublicError{
		Message: message,
		Err:     err,
	}
}

func (e *PublicError) Error() string {
	return e.Message
}

func (e *PublicError) Unwrap() error {
	return e.Err
}

type ErrorResponseDto struct {
	Error string `json:"error"`
}

func HandleHttpError(w http.ResponseWriter, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, ErrHttpBadRequest):
		status = http.StatusBadRequest
		msg = err.Error()

	case errors.Is(err, ErrHttpUnauthorized):
		status = http.StatusUnauthorized
		msg = "unauthorized"

	case errors.Is(err, ErrHttpForbidden):
		status = http.StatusForbidden
		msg = "forbidden"

	case errors.Is(err, ErrResourceNotFound):
		status = http.StatusNotFound
		msg = err.Error()

	case errors.Is(err, ErrHttpConflict):
		status = http.StatusConflict
		msg = err.Error()

	case errors.Is(err, ErrHttpPayloadTooLarge):
		status = http.StatusRequestEntityTooLarge
		msg = err.Error()

	case errors.Is(err, ErrUpstream):
		status = http.StatusBadGateway
		msg = "upstream service failed"

	default:
		status = http.StatusInternalServerError
		if config.IsProduction() {
			msg = "internal server error"
		} else {
			msg = err.Error()
		}
	}

	var publicError *PublicError
	if status < http.StatusInternalServerError && errors.As(err, &publicError) {
		msg = publicError.Message
	}

	if status >= http.StatusInternalServerError {
		logging.Logger.Errorf("request failed: %v", err)
	}

	WriteJsonError(w, status, msg)
}

// WriteJsonError writes the error envelope with the given status and message as is.
func WriteJsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(ErrorResponseDto{Error: msg})
	if err != nil {
		logging.Logger.Errorf("writing error response: %v", err)
	}
}

func PanicOnError(f func() error, msg string) {
	err := f()
	if err != nil {
		logging.Logger.Fatalf("%s: %v", msg, err)
	}
}

func Unwrap[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
