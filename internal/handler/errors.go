package handler

import (
	"errors"
	"net/http"

	"nimbus-chat/internal/transport/httpdto"
	nimbus_errors "nimbus-chat/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto status codes: invalid input →
// 400, missing or not-owned records → 404, everything else → 500. The
// 500 path only records the error; the ErrorHandler middleware logs it
// and renders the body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, nimbus_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
	case errors.Is(err, nimbus_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error(), "NOT_FOUND"))
	case errors.Is(err, nimbus_errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(err.Error(), "UNAUTHORIZED"))
	default:
		c.Status(http.StatusInternalServerError)
		_ = c.Error(err)
	}
}
