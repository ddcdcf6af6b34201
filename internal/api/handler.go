package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"argus-backend/internal/booking"
	"argus-backend/internal/fault"
	"argus-backend/internal/store"
	"argus-backend/internal/voting"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store        store.Store
	reservations *booking.Guard
	votes        *voting.Guard
	sessions     *voting.SessionService
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, reservations *booking.Guard, votes *voting.Guard, sessions *voting.SessionService) *Handler {
	return &Handler{
		store:        s,
		reservations: reservations,
		votes:        votes,
		sessions:     sessions,
	}
}

// abortWithError maps guard and store failures to transport status codes.
func abortWithError(c *gin.Context, err error) {
	var fe *fault.Error
	if errors.As(err, &fe) {
		c.AbortWithStatusJSON(fe.HTTPStatus(), gin.H{"error": fe.Message})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "record already exists"})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pathID parses the :id path parameter, aborting with 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
