package handler

import (
	"inkwell/internal/delivery/api/middleware"
	"inkwell/internal/delivery/api/response"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request body into req and checks its validate tags.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Request body could not be parsed")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			err.Error(),
		)
	}

	return true, nil
}

// requireIdentity returns the caller attached by the auth middleware.
func requireIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	return identity, nil
}
