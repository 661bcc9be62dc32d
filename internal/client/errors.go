package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind is the coarse failure category a caller can branch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthRequired
	KindNotFound
	KindBackendUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindAuthRequired:
		return "AuthRequired"
	case KindNotFound:
		return "NotFound"
	case KindBackendUnavailable:
		return "BackendUnavailable"
	default:
		return "Unknown"
	}
}

// APIError is a failed call, either rejected by the server or caught locally
// before any request was sent.
type APIError struct {
	Status    int
	Code      string
	Message   string
	Details   any
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Kind maps the status and code back to a failure category.
func (e *APIError) Kind() Kind {
	switch {
	case e.Status == http.StatusBadRequest,
		e.Status == http.StatusRequestEntityTooLarge,
		e.Status == http.StatusUnsupportedMediaType,
		e.Status == http.StatusConflict:
		return KindValidation
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return KindAuthRequired
	case e.Status == http.StatusNotFound:
		return KindNotFound
	case e.Status == 0, e.Status >= http.StatusInternalServerError:
		return KindBackendUnavailable
	default:
		return KindUnknown
	}
}

// KindOf reports the failure category of err. Transport failures count as
// BackendUnavailable.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind()
	}

	return KindBackendUnavailable
}

func validationError(message string) error {
	return errors.WithStack(&APIError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_FAILED",
		Message: message,
	})
}

var errSignedOut = &APIError{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH_REQUIRED",
	Message: "sign in required",
}
