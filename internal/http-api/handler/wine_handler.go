package handler

import (
	"net/http"

	"winecellar/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WineHandler struct {
	wineService service.WineService
}

func NewWineHandler(wineService service.WineService) *WineHandler {
	return &WineHandler{wineService: wineService}
}

// RegisterRoutes registers wine-related routes
func (h *WineHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Search)
	rg.GET("/:wine_id", h.Get)
}

// Search lists wines matching the free-text query, ordered by sort.
// GET /wines?query=&sort=
func (h *WineHandler) Search(c *gin.Context) {
	wines, err := h.wineService.Search(c.Request.Context(), c.Query("query"), c.Query("sort"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, wines)
}

// Get returns a single wine with its producer.
// GET /wines/:wine_id
func (h *WineHandler) Get(c *gin.Context) {
	wine, err := h.wineService.GetByID(c.Request.Context(), c.Param("wine_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, wine)
}
