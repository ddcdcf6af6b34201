package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type castVoteRequest struct {
	SessionID int64 `json:"sessionId" binding:"required"`
	UserID    int64 `json:"userId" binding:"required"`
	Choice    *bool `json:"choice" binding:"required"`
}

// PostVote handles POST /api/votes.
func (h *Handler) PostVote(c *gin.Context) {
	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.votes.CastVote(c.Request.Context(), req.SessionID, req.UserID, *req.Choice)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vote)
}

// GetSessionVotes handles GET /api/sessions/:id/votes.
func (h *Handler) GetSessionVotes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	votes, err := h.votes.ListVotes(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, votes)
}

// GetVote handles GET /api/votes/:id.
func (h *Handler) GetVote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	vote, err := h.votes.GetVote(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, vote)
}

// DeleteVote handles DELETE /api/votes/:id.
func (h *Handler) DeleteVote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	message, err := h.votes.DeleteVote(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
