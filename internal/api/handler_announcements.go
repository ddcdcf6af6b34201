package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"argus-backend/internal/model"
)

type createAnnouncementRequest struct {
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	AuthorID      int64  `json:"authorId" binding:"required"`
	CondominiumID int64  `json:"condominiumId" binding:"required"`
}

// PostAnnouncement handles POST /api/announcements.
func (h *Handler) PostAnnouncement(c *gin.Context) {
	var req createAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetUser(ctx, req.AuthorID); err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := h.store.GetCondominium(ctx, req.CondominiumID); err != nil {
		abortWithError(c, err)
		return
	}

	notice := model.Announcement{
		Title:         req.Title,
		Body:          req.Body,
		AuthorID:      req.AuthorID,
		CondominiumID: req.CondominiumID,
	}
	if err := h.store.CreateAnnouncement(ctx, &notice); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notice)
}

// GetAnnouncements handles GET /api/announcements.
func (h *Handler) GetAnnouncements(c *gin.Context) {
	notices, err := h.store.ListAnnouncements(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

// GetAnnouncement handles GET /api/announcements/:id.
func (h *Handler) GetAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	notice, err := h.store.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

type updateAnnouncementRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// PutAnnouncement handles PUT /api/announcements/:id.
func (h *Handler) PutAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notice, err := h.store.GetAnnouncement(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Body != nil {
		notice.Body = *req.Body
	}
	if err := h.store.UpdateAnnouncement(c.Request.Context(), notice); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// DeleteAnnouncement handles DELETE /api/announcements/:id.
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
