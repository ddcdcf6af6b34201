package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
)

type createAreaRequest struct {
	Name          string `json:"name" binding:"required"`
	Available     *bool  `json:"available" binding:"required"`
	CondominiumID int64  `json:"condominiumId" binding:"required"`
}

// PostArea handles POST /api/areas.
func (h *Handler) PostArea(c *gin.Context) {
	var req createAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area := model.CommonArea{
		Name:          req.Name,
		Available:     *req.Available,
		CondominiumID: req.CondominiumID,
	}
	if err := h.store.CreateCommonArea(c.Request.Context(), &area); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

// GetAreas handles GET /api/areas.
func (h *Handler) GetAreas(c *gin.Context) {
	areas, err := h.store.ListCommonAreas(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

// GetArea handles GET /api/areas/:id.
func (h *Handler) GetArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	area, err := h.store.GetCommonArea(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

type updateAreaRequest struct {
	Name      *string `json:"name"`
	Available *bool   `json:"available"`
}

// PutArea handles PUT /api/areas/:id. Toggling availability is the admin
// switch that makes the reservation guard reject new bookings.
func (h *Handler) PutArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := h.store.GetCommonArea(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Available != nil {
		area.Available = *req.Available
	}
	if err := h.store.UpdateCommonArea(c.Request.Context(), area); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

// DeleteArea handles DELETE /api/areas/:id. Areas with reservations are
// kept: deletion is rejected rather than cascading.
func (h *Handler) DeleteArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	n, err := h.store.CountReservationsByArea(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if n > 0 {
		abortWithError(c, fault.Conflict("common area %d has %d reservations and cannot be deleted", id, n))
		return
	}

	if err := h.store.DeleteCommonArea(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
