package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"argus-backend/internal/model"
)

type createSessionRequest struct {
	Proposal        string     `json:"proposal" binding:"required"`
	Description     string     `json:"description"`
	OpensAt         model.Date `json:"opensAt" binding:"required"`
	ClosesAt        model.Date `json:"closesAt" binding:"required"`
	CondominiumName string     `json:"condominiumName" binding:"required"`
}

// PostSession handles POST /api/sessions.
func (h *Handler) PostSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessions.CreateSession(c.Request.Context(),
		req.Proposal, req.Description, req.OpensAt, req.ClosesAt, req.CondominiumName)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSessions handles GET /api/sessions.
func (h *Handler) GetSessions(c *gin.Context) {
	sessions, err := h.sessions.ListSessions(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /api/sessions/:id.
func (h *Handler) GetSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	session, err := h.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /api/sessions/:id.
func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.sessions.DeleteSession(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
