package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
)

type condominiumRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// PostCondominium handles POST /api/condominiums.
func (h *Handler) PostCondominium(c *gin.Context) {
	var req condominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	condo := model.Condominium{Name: req.Name, Address: req.Address}
	if err := h.store.CreateCondominium(c.Request.Context(), &condo); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, condo)
}

// GetCondominiums handles GET /api/condominiums.
func (h *Handler) GetCondominiums(c *gin.Context) {
	condos, err := h.store.ListCondominiums(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, condos)
}

// GetCondominium handles GET /api/condominiums/:id.
func (h *Handler) GetCondominium(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	condo, err := h.store.GetCondominium(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, condo)
}

// PutCondominium handles PUT /api/condominiums/:id.
func (h *Handler) PutCondominium(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req condominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	condo, err := h.store.GetCondominium(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	condo.Name = req.Name
	condo.Address = req.Address
	if err := h.store.UpdateCondominium(c.Request.Context(), condo); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, condo)
}

// DeleteCondominium handles DELETE /api/condominiums/:id. Deletion is
// rejected while any areas, users, sessions or announcements still point at
// the condominium.
func (h *Handler) DeleteCondominium(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	n, err := h.store.CountCondominiumReferences(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if n > 0 {
		abortWithError(c, fault.Conflict("condominium %d is referenced by %d records and cannot be deleted", id, n))
		return
	}

	if err := h.store.DeleteCondominium(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
