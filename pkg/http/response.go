package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ResultResponse writes a successful pipeline result verbatim.
func ResultResponse(c echo.Context, result interface{}) error {
	return c.JSON(http.StatusOK, result)
}

// FailureResponse writes a failure body with the given status.
func FailureResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, FailureBody{Success: false, Error: message})
}

// BadRequestResponse writes a 400 failure body.
func BadRequestResponse(c echo.Context, message string) error {
	return FailureResponse(c, http.StatusBadRequest, message)
}

// AppErrorResponse maps an error to a failure body. AppError carries its own
// status; anything else is reported as an internal error with the raw message.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return FailureResponse(c, appErr.Status, appErr.Error())
	}
	return FailureResponse(c, http.StatusInternalServerError, err.Error())
}
