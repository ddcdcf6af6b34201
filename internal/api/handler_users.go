package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
)

type createUserRequest struct {
	Name          string         `json:"name" binding:"required"`
	CPF           string         `json:"cpf" binding:"required"`
	Password      string         `json:"password" binding:"required,min=6"`
	Phone         string         `json:"phone" binding:"required"`
	Role          model.UserRole `json:"role" binding:"required,oneof=ADMIN RESIDENT"`
	Block         *string        `json:"block"`
	Apartment     *int           `json:"apartment"`
	CondominiumID *int64         `json:"condominiumId"`
}

// PostUser handles POST /api/users. The raw password is hashed before the
// record is stored.
func (h *Handler) PostUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := model.User{
		Name:          req.Name,
		CPF:           req.CPF,
		PasswordHash:  string(hash),
		Phone:         req.Phone,
		Role:          req.Role,
		Block:         req.Block,
		Apartment:     req.Apartment,
		CondominiumID: req.CondominiumID,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUsers handles GET /api/users.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Name          *string         `json:"name"`
	Password      *string         `json:"password"`
	Phone         *string         `json:"phone"`
	Role          *model.UserRole `json:"role"`
	Block         *string         `json:"block"`
	Apartment     *int            `json:"apartment"`
	CondominiumID *int64          `json:"condominiumId"`
}

// PutUser handles PUT /api/users/:id. The CPF is immutable.
func (h *Handler) PutUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		user.PasswordHash = string(hash)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Block != nil {
		user.Block = req.Block
	}
	if req.Apartment != nil {
		user.Apartment = req.Apartment
	}
	if req.CondominiumID != nil {
		user.CondominiumID = req.CondominiumID
	}

	if err := h.store.UpdateUser(c.Request.Context(), user); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id. Users with recorded votes are
// kept: deleting them would orphan the vote trail.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	n, err := h.store.CountVotesByUser(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if n > 0 {
		abortWithError(c, fault.Conflict("user %d has %d recorded votes and cannot be deleted", id, n))
		return
	}

	if err := h.store.DeleteUser(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
