package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// maxMenuDocumentBytes caps the body of POST /api/menu.
const maxMenuDocumentBytes = 1 << 20

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// ListMenu -> GET /api/menu?category=
func (mc *MenuController) ListMenu(c *gin.Context) {
	items, err := mc.Menu.ListMenu(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, items)
}

// CreateMenuItem -> POST /api/menu. Any JSON object is accepted and stored as is.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxMenuDocumentBytes))
	if err != nil {
		utils.RespondDetail(c, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	doc, err := models.DecodeDocument(body)
	if err != nil {
		utils.RespondDetail(c, http.StatusUnprocessableEntity, "request body must be a JSON object")
		return
	}

	created, err := mc.Menu.CreateMenuItem(c.Request.Context(), doc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, created)
}

// SeedMenu -> POST /api/menu/seed
func (mc *MenuController) SeedMenu(c *gin.Context) {
	result, err := mc.Menu.Seed(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, result)
}
