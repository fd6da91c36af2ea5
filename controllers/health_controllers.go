package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

const maxListedCollections = 10

// Diagnostics is the body of GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthController struct {
	Store *database.Store
	DB    config.DBConfig
}

func NewHealthController(store *database.Store, db config.DBConfig) *HealthController {
	return &HealthController{Store: store, DB: db}
}

// Root -> GET /
func (hc *HealthController) Root(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Restaurant API running"})
}

// Diagnostics -> GET /test. Always answers 200; problems are described in the body.
func (hc *HealthController) Diagnostics(c *gin.Context) {
	resp := Diagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if !hc.Store.Available() {
		if hc.Store.Cause() != nil {
			resp.Database = "⚠️  Available but not initialized"
		}
		utils.RespondJSON(c, http.StatusOK, resp)
		return
	}

	ctx := c.Request.Context()
	resp.Database = "✅ Available"
	urlStatus := "❌ Not Set"
	if hc.DB.URL != "" {
		urlStatus = "✅ Set"
	}
	resp.DatabaseURL = &urlStatus

	name := hc.DB.Name
	if name == "" {
		name = hc.Store.Name(ctx)
	}
	if name == "" {
		name = "✅ Connected"
	}
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	tables, err := hc.Store.Collections(ctx)
	if err != nil {
		resp.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 50))
		utils.RespondJSON(c, http.StatusOK, resp)
		return
	}
	if tables == nil {
		tables = []string{}
	}
	if len(tables) > maxListedCollections {
		tables = tables[:maxListedCollections]
	}
	resp.Collections = tables
	resp.Database = "✅ Connected & Working"
	utils.RespondJSON(c, http.StatusOK, resp)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
