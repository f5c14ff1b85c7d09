package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/scrape"
	"github.com/shoplocal/backend-go/internal/service"
)

type stubRegistry struct {
	shops []models.RegistryShop
}

func (s *stubRegistry) ListShops() ([]models.RegistryShop, error) { return s.shops, nil }

func (s *stubRegistry) GetShop(id int64) (*models.RegistryShop, error) {
	for i := range s.shops {
		if s.shops[i].ID == id {
			return &s.shops[i], nil
		}
	}
	return nil, nil
}

type stubRows struct {
	rows []scrape.Row
}

func (s *stubRows) Rows() []scrape.Row { return s.rows }

func lat(v float64) *float64 { return &v }

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := &stubRegistry{shops: []models.RegistryShop{
		{ID: 1, ShopName: "Sharma General Store", Latitude: lat(26.45), Longitude: lat(80.33)},
	}}
	rows := &stubRows{rows: []scrape.Row{
		{"Shop_Name": "Gupta Kirana", "Products": "Rice:50,Tea:20"},
	}}

	shopSvc := service.NewShopService(registry, rows, 0)
	insightsSvc := service.NewInsightsService(registry, rows)

	r := gin.New()
	r.GET("/api/shops", NewShopHandler(shopSvc).GetShops)
	assistant := NewAssistantHandler(insightsSvc)
	r.POST("/api/assistant/customer", assistant.CustomerInsights)
	r.POST("/api/assistant/seller", assistant.SellerInsights)
	return r
}

func TestGetShopsEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var result models.AggregateResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(result.Shops) != 2 {
		t.Errorf("shops: got %d, want 2", len(result.Shops))
	}
	if result.Shops[0].ID != "reg_1" || result.Shops[1].ID != "scr_0" {
		t.Errorf("ids: got %q, %q", result.Shops[0].ID, result.Shops[1].ID)
	}
	if result.MissingCoordsCount != 1 {
		t.Errorf("missingCoordsCount: got %d, want 1", result.MissingCoordsCount)
	}
}

func TestGetShopsEndpointBadQuery(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shops?maxDistanceKM=abc", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestCustomerInsightsEndpointWithoutBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/customer", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	var insights models.CustomerInsights
	if err := json.Unmarshal(w.Body.Bytes(), &insights); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(insights.TrendingProducts) != 2 {
		t.Errorf("trending: got %d, want 2", len(insights.TrendingProducts))
	}
	if insights.NearbyShops == nil {
		t.Error("nearby_shops must serialize as a list, not null")
	}
}

func TestSellerInsightsEndpointMissingShopID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/seller", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestSellerInsightsEndpointUnknownShop(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/seller", strings.NewReader(`{"shop_id": 42}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}
