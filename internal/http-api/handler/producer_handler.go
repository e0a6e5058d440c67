package handler

import (
	"net/http"

	"winecellar/internal/http-api/repository"
	"winecellar/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ProducerHandler struct {
	producerService service.ProducerService
}

func NewProducerHandler(producerService service.ProducerService) *ProducerHandler {
	return &ProducerHandler{producerService: producerService}
}

func (h *ProducerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:producer_id", h.Get)
	rg.GET("/:producer_id/wines", h.ListWines)
}

// List returns producers, optionally filtered by the allowlisted
// name/country query params.
// GET /producers?name=&country=
func (h *ProducerHandler) List(c *gin.Context) {
	filter := repository.ProducerFilter{
		Name:    c.Query("name"),
		Country: c.Query("country"),
	}
	producers, err := h.producerService.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, producers)
}

// GET /producers/:producer_id
func (h *ProducerHandler) Get(c *gin.Context) {
	producer, err := h.producerService.GetByID(c.Request.Context(), c.Param("producer_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, producer)
}

// ListWines returns every wine of one producer; an empty list is a
// valid answer for a producer that exists.
// GET /producers/:producer_id/wines
func (h *ProducerHandler) ListWines(c *gin.Context) {
	wines, err := h.producerService.ListWines(c.Request.Context(), c.Param("producer_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, wines)
}
