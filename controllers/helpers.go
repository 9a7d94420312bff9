// controllers/helpers.go
package controllers

import (
	"errors"
	"log/slog"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) uint {
	id, _ := strconv.Atoi(c.Param(name))
	return uint(id)
}

// respondError maps the service error taxonomy onto status codes.
// Storage failures are logged here, once, before the 500 goes out.
func respondError(c *gin.Context, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.BadRequest(c, verr.Error())
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrServiceOptionNotFound),
		errors.Is(err, services.ErrEventRequestNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrServiceOptionMenuMismatch):
		resp.Conflict(c, err.Error())
	default:
		slog.Error("storage failure", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		resp.ServerError(c, err)
	}
}
