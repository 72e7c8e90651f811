package handler

import (
	"errors"
	"net/http"

	"github.com/dresspalette/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError translates service sentinel errors into HTTP status codes.
// Unknown errors are reported as a generic 500 so internal detail never
// leaks to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrAppointmentNotFound),
		errors.Is(err, service.ErrDressNotFound),
		errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrSlugAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrDateRange),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrEmptyTitle),
		errors.Is(err, service.ErrEmptySubject),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrEmptyReply):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathUUID parses the named path parameter as a UUID, writing a 400 response
// and returning false when it is malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
