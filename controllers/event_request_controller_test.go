package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"backend/entity"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Menu{},
		&entity.ServiceOption{},
		&entity.EventRequest{},
		&entity.Review{},
	))

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w.Code, parsed
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func TestEventRequestFlow(t *testing.T) {
	r := setupRouter(t)

	code, body := doJSON(t, r, http.MethodPost, "/menus", gin.H{"name": "Test Menu"})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	menuID := data(t, body)["id"].(float64)

	code, body = doJSON(t, r, http.MethodPost, "/service-options", gin.H{
		"menu_id":          menuID,
		"service_type":     "plated",
		"price_per_person": 25.00,
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	optionID := data(t, body)["id"].(float64)

	code, body = doJSON(t, r, http.MethodPost, "/event-requests", gin.H{
		"customer_name":     "Jordan Smith",
		"customer_email":    "jordan@example.com",
		"menu_id":           menuID,
		"service_option_id": optionID,
		"event_date":        "2026-09-12",
		"event_time":        "18:30",
		"location":          "12 Harbour St",
		"guest_count":       10,
	})
	require.Equal(t, http.StatusCreated, code, "body: %v", body)
	request := data(t, body)
	// money serializes as a JSON number
	assert.Equal(t, 250.0, request["total_price"])
	assert.Equal(t, "pending", request["status"])
	assert.Equal(t, "Test Menu", request["menu"].(map[string]any)["name"])

	// accept it with a checkout link
	requestID := int(request["id"].(float64))
	code, body = doJSON(t, r, http.MethodPatch,
		"/event-requests/"+strconv.Itoa(requestID)+"/status",
		gin.H{"status": "accepted", "checkout_url": "https://pay.example.com/c/1"})
	require.Equal(t, http.StatusOK, code, "body: %v", body)
	assert.Equal(t, "accepted", data(t, body)["status"])
	assert.Equal(t, 250.0, data(t, body)["total_price"])
}

func TestEventRequestEndpointFailures(t *testing.T) {
	r := setupRouter(t)

	code, body := doJSON(t, r, http.MethodPost, "/menus", gin.H{"name": "Menu A"})
	require.Equal(t, http.StatusCreated, code)
	menuA := data(t, body)["id"].(float64)
	code, body = doJSON(t, r, http.MethodPost, "/menus", gin.H{"name": "Menu B"})
	require.Equal(t, http.StatusCreated, code)
	menuB := data(t, body)["id"].(float64)
	code, body = doJSON(t, r, http.MethodPost, "/service-options", gin.H{
		"menu_id":          menuA,
		"service_type":     "buffet",
		"price_per_person": 40.00,
	})
	require.Equal(t, http.StatusCreated, code)
	optionA := data(t, body)["id"].(float64)

	eventBody := func(menuID, optionID float64) gin.H {
		return gin.H{
			"customer_name":     "Jordan Smith",
			"customer_email":    "jordan@example.com",
			"menu_id":           menuID,
			"service_option_id": optionID,
			"event_date":        "2026-09-12",
			"event_time":        "18:30",
			"location":          "12 Harbour St",
			"guest_count":       10,
		}
	}

	t.Run("option of a different menu is a conflict", func(t *testing.T) {
		code, _ := doJSON(t, r, http.MethodPost, "/event-requests", eventBody(menuB, optionA))
		assert.Equal(t, http.StatusConflict, code)
	})
	t.Run("unknown menu is not found", func(t *testing.T) {
		code, _ := doJSON(t, r, http.MethodPost, "/event-requests", eventBody(9999, optionA))
		assert.Equal(t, http.StatusNotFound, code)
	})
	t.Run("status update on unknown request is not found", func(t *testing.T) {
		code, _ := doJSON(t, r, http.MethodPatch, "/event-requests/9999/status", gin.H{"status": "accepted"})
		assert.Equal(t, http.StatusNotFound, code)
	})
	t.Run("menu detail for unknown id is not found", func(t *testing.T) {
		code, _ := doJSON(t, r, http.MethodGet, "/menus/9999", nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
	t.Run("reviews for unknown menu are an empty list", func(t *testing.T) {
		code, body := doJSON(t, r, http.MethodGet, "/menus/9999/reviews", nil)
		assert.Equal(t, http.StatusOK, code)
		reviews, ok := body["data"].([]any)
		require.True(t, ok)
		assert.Empty(t, reviews)
	})
}
