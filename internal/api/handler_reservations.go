package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"argus-backend/internal/model"
)

type createReservationRequest struct {
	AreaName    string     `json:"areaName" binding:"required"`
	ReserveDate model.Date `json:"reserveDate" binding:"required"`
}

// PostReservation handles POST /api/reservations.
func (h *Handler) PostReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.reservations.Reserve(c.Request.Context(), req.AreaName, req.ReserveDate)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// GetReservations handles GET /api/reservations.
func (h *Handler) GetReservations(c *gin.Context) {
	reservations, err := h.reservations.ListAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// DeleteReservation handles DELETE /api/reservations/:id.
func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	message, err := h.reservations.Cancel(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
