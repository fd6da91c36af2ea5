package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/kds"
	"github.com/yeremiapane/restaurant-ordering/router"
	"github.com/yeremiapane/restaurant-ordering/testhelpers"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Port: "0",
		DB:   config.DBConfig{Driver: config.DriverSQLite},
		HTTP: config.HTTPConfig{
			AllowOrigins:    []string{"*"},
			SecurityHeaders: map[string]string{"X-Content-Type-Options": "nosniff"},
		},
	}
}

// TestEndToEndIntegration runs the main flow:
// 1. seed the menu and read it back by category
// 2. place an order while a kitchen display is connected
// 3. reject a bad order without writing anything
// 4. list orders newest first
func TestEndToEndIntegration(t *testing.T) {
	hub := kds.NewHub()
	srv := httptest.NewServer(router.SetupRouter(testConfig(), testhelpers.NewStore(t), hub))
	defer srv.Close()

	ids := seedTest(t, srv)
	listMenuTest(t, srv)

	ws := connectKDS(t, srv, hub)
	orderID := createOrderTest(t, srv, ids)
	expectOrderEvent(t, ws, orderID)

	rejectOrderTest(t, srv)
	listOrdersTest(t, srv, orderID)
}

func TestUnavailableDatabase(t *testing.T) {
	store := database.Unavailable(errors.New("dial tcp: connection refused"))
	srv := httptest.NewServer(router.SetupRouter(testConfig(), store, nil))
	defer srv.Close()

	resp, body := call(t, srv, http.MethodGet, "/api/menu", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Database not initialized"}`, body)

	resp, body = call(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Restaurant API running"}`, body)

	resp, body = call(t, srv, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var diag map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &diag))
	assert.Equal(t, "✅ Running", diag["backend"])
	assert.Equal(t, "Not Connected", diag["connection_status"])
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.String()
}

func seedTest(t *testing.T, srv *httptest.Server) map[string]string {
	resp, body := call(t, srv, http.MethodPost, "/api/menu/seed", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	var seeded struct {
		Seeded bool                     `json:"seeded"`
		Count  int                      `json:"count"`
		Items  []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &seeded))
	require.True(t, seeded.Seeded)
	require.Equal(t, 6, seeded.Count)

	ids := make(map[string]string)
	for _, item := range seeded.Items {
		ids[item["name"].(string)] = item["id"].(string)
	}
	return ids
}

func listMenuTest(t *testing.T, srv *httptest.Server) {
	resp, body := call(t, srv, http.MethodGet, "/api/menu?category=Pizza", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Margherita Pizza", items[0]["name"])
	assert.Equal(t, "Pepperoni Pizza", items[1]["name"])
}

func connectKDS(t *testing.T, srv *httptest.Server, hub *kds.Hub) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/kds/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)
	return ws
}

func createOrderTest(t *testing.T, srv *httptest.Server, ids map[string]string) string {
	payload, err := json.Marshal(map[string]interface{}{
		"customer_name":    "Ana Lima",
		"customer_email":   "ana@example.com",
		"customer_address": "12 Harbour Rd",
		"items": []map[string]interface{}{
			{"item_id": ids["Margherita Pizza"], "quantity": 2},
			{"item_id": ids["Lemonade"], "quantity": 1},
		},
	})
	require.NoError(t, err)

	resp, body := call(t, srv, http.MethodPost, "/api/orders", string(payload))
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var order struct {
		ID       string  `json:"id"`
		Subtotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
		Status   string  `json:"status"`
		Items    []struct {
			Name      string  `json:"name"`
			LineTotal float64 `json:"line_total"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &order))
	assert.Equal(t, 27.47, order.Subtotal)
	assert.Equal(t, 2.20, order.Tax)
	assert.Equal(t, 29.67, order.Total)
	assert.Equal(t, "pending", order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Margherita Pizza", order.Items[0].Name)
	return order.ID
}

func expectOrderEvent(t *testing.T, ws *websocket.Conn, orderID string) {
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg struct {
		Event string `json:"event"`
		Data  struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, ws.ReadJSON(&msg))
	assert.Equal(t, kds.EventOrderCreated, msg.Event)
	assert.Equal(t, orderID, msg.Data.ID)
}

func rejectOrderTest(t *testing.T, srv *httptest.Server) {
	resp, body := call(t, srv, http.MethodPost, "/api/orders", `{
		"customer_name": "Ana Lima",
		"customer_email": "ana@example.com",
		"customer_address": "12 Harbour Rd",
		"items": [{"item_id": "64b7f0c2e1", "quantity": 1}]
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Invalid item id format"}`, body)

	resp, _ = call(t, srv, http.MethodPost, "/api/orders", `{"customer_name": "Ana Lima", "items": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func listOrdersTest(t *testing.T, srv *httptest.Server, orderID string) {
	resp, body := call(t, srv, http.MethodGet, "/api/orders?limit=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0]["id"])

	resp, body = call(t, srv, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &orders))
	assert.Len(t, orders, 1)
}
