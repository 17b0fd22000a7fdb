package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindValid binds and validates req. On failure it has already written the
// 400/422 response and the caller should return the error it got back.
func bindValid(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
