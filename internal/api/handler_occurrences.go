package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"argus-backend/internal/model"
)

type createOccurrenceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ReporterID  int64  `json:"reporterId" binding:"required"`
}

// PostOccurrence handles POST /api/occurrences. New occurrences open with a
// generated protocol code the reporter can quote later.
func (h *Handler) PostOccurrence(c *gin.Context) {
	var req createOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetUser(ctx, req.ReporterID); err != nil {
		abortWithError(c, err)
		return
	}

	occ := model.Occurrence{
		Protocol:    uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      model.OccurrenceOpen,
		ReporterID:  req.ReporterID,
	}
	if err := h.store.CreateOccurrence(ctx, &occ); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, occ)
}

// GetOccurrences handles GET /api/occurrences.
func (h *Handler) GetOccurrences(c *gin.Context) {
	occs, err := h.store.ListOccurrences(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, occs)
}

// GetOccurrence handles GET /api/occurrences/:id.
func (h *Handler) GetOccurrence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	occ, err := h.store.GetOccurrence(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

type updateOccurrenceRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	Status      *model.OccurrenceStatus `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED"`
}

// PutOccurrence handles PUT /api/occurrences/:id. The protocol code and
// reporter are immutable.
func (h *Handler) PutOccurrence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateOccurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	occ, err := h.store.GetOccurrence(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if req.Title != nil {
		occ.Title = *req.Title
	}
	if req.Description != nil {
		occ.Description = *req.Description
	}
	if req.Status != nil {
		occ.Status = *req.Status
	}
	if err := h.store.UpdateOccurrence(c.Request.Context(), occ); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, occ)
}

// DeleteOccurrence handles DELETE /api/occurrences/:id.
func (h *Handler) DeleteOccurrence(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteOccurrence(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
