package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/service"
	"github.com/shoplocal/backend-go/pkg/response"
)

// ShopHandler handles HTTP requests for the shop directory
type ShopHandler struct {
	service *service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(service *service.ShopService) *ShopHandler {
	return &ShopHandler{service: service}
}

// GetShops handles GET /api/shops
func (h *ShopHandler) GetShops(c *gin.Context) {
	var filter models.ShopFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	response.Success(c, h.service.GetShops(filter))
}
