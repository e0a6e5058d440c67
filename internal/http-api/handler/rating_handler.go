package handler

import (
	"context"
	"net/http"

	"winecellar/internal/http-api/dto"
	"winecellar/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers the rated-wines routes; the caller mounts
// the group behind AuthMiddleware and RequireSubject.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("", h.Rate)
	rg.GET("", h.List)
}

// Rate upserts the caller's rating for a wine.
// PUT /users/:user_id/rated
func (h *RatingHandler) Rate(c *gin.Context) {
	var req dto.RateWineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), relationshipTimeout)
	defer cancel()

	rating, err := h.ratingService.Rate(ctx, c.Param("user_id"), req.WineID, req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// List returns the caller's ratings, newest first.
// GET /users/:user_id/rated
func (h *RatingHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), relationshipTimeout)
	defer cancel()

	ratings, err := h.ratingService.ListByUser(ctx, c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}
