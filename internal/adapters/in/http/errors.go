package http

import (
	"errors"
	"net/http"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/auth"
	"production/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error to a JSON error response. Lifecycle
// refusals on existing orders are conflicts, not bad requests, so transition
// endpoints pass conflictOnInvalid=true.
func writeError(ctx echo.Context, err error, conflictOnInvalid bool) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, commands.ErrLoginIsTaken):
		code = http.StatusConflict
	case errors.Is(err, auth.ErrInvalidToken):
		code = http.StatusUnauthorized
	case errors.Is(err, order.ErrReturnDateIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		if conflictOnInvalid {
			code = http.StatusConflict
		} else {
			code = http.StatusBadRequest
		}
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, errorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}
