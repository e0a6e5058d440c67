package handler

import (
	"context"
	"net/http"
	"time"

	"winecellar/internal/http-api/dto"
	"winecellar/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const relationshipTimeout = 5 * time.Second

type FavoriteHandler struct {
	svc service.FavoriteService
}

func NewFavoriteHandler(svc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// RegisterRoutes registers the favorites routes; the caller mounts the
// group behind AuthMiddleware and RequireSubject.
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.PUT("", h.Add)
	rg.DELETE("", h.Remove)
}

// List returns the user's favorite wines as full records.
// GET /users/:user_id/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), relationshipTimeout)
	defer cancel()

	wines, err := h.svc.List(ctx, c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, wines)
}

// Add favorites a wine; favoriting it again is a harmless repeat.
// PUT /users/:user_id/favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), relationshipTimeout)
	defer cancel()

	wine, err := h.svc.Add(ctx, c.Param("user_id"), req.WineID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}

// Remove unfavorites a wine; removing a non-member succeeds as a no-op.
// DELETE /users/:user_id/favorites
func (h *FavoriteHandler) Remove(c *gin.Context) {
	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), relationshipTimeout)
	defer cancel()

	if err := h.svc.Remove(ctx, c.Param("user_id"), req.WineID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
