package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/repository"
	"github.com/shoplocal/backend-go/internal/service"
	"github.com/shoplocal/backend-go/pkg/response"
)

// SellerHandler handles shop registration and inventory management
type SellerHandler struct {
	shops *repository.ShopRepository
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(shops *repository.ShopRepository) *SellerHandler {
	return &SellerHandler{shops: shops}
}

// registerShopRequest accepts the products field as either a JSON array or a
// plain-text block of "name - price" lines.
type registerShopRequest struct {
	ShopName  string          `json:"shop_name"`
	ShopType  *string         `json:"shop_type"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	PhotoURL  *string         `json:"photo_url"`
	Address   *string         `json:"address"`
	Rating    *float64        `json:"rating"`
	Contact   *string         `json:"contact"`
	OpenTime  *string         `json:"open_time"`
	CloseTime *string         `json:"close_time"`
	Products  json.RawMessage `json:"products"`
}

// RegisterShop handles POST /api/seller/register
func (h *SellerHandler) RegisterShop(c *gin.Context) {
	var req registerShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.ShopName = strings.TrimSpace(req.ShopName)
	if req.ShopName == "" {
		response.BadRequest(c, "shop_name is required")
		return
	}

	products := service.ParseSubmittedProducts(req.Products)
	serialized, err := json.Marshal(products)
	if err != nil {
		response.InternalError(c, "Failed to encode products")
		return
	}

	id, err := h.shops.CreateShop(models.RegistryShop{
		ShopName:  req.ShopName,
		ShopType:  req.ShopType,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PhotoURL:  req.PhotoURL,
		Address:   req.Address,
		Rating:    req.Rating,
		Contact:   req.Contact,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Products:  string(serialized),
	})
	if err != nil {
		response.InternalError(c, "Failed to register shop")
		return
	}

	response.Created(c, gin.H{
		"success": true,
		"shop_id": id,
	})
}

// GetInventory handles GET /api/seller/:id/inventory
func (h *SellerHandler) GetInventory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid shop ID")
		return
	}

	shop, err := h.shops.GetShop(id)
	if err != nil {
		response.InternalError(c, "Failed to load shop")
		return
	}
	if shop == nil {
		response.NotFound(c, "Shop not found")
		return
	}

	response.Success(c, gin.H{
		"shop_id":   shop.ID,
		"shop_name": shop.ShopName,
		"products":  service.ParseStoredProducts(shop.Products),
	})
}

type updateInventoryRequest struct {
	Products json.RawMessage `json:"products"`
}

// UpdateInventory handles PUT /api/seller/:id/inventory
func (h *SellerHandler) UpdateInventory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid shop ID")
		return
	}

	var req updateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	products := service.ParseSubmittedProducts(req.Products)
	serialized, err := json.Marshal(products)
	if err != nil {
		response.InternalError(c, "Failed to encode products")
		return
	}

	updated, err := h.shops.UpdateProducts(id, string(serialized))
	if err != nil {
		response.InternalError(c, "Failed to update inventory")
		return
	}
	if !updated {
		response.NotFound(c, "Shop not found")
		return
	}

	response.Success(c, gin.H{
		"success":  true,
		"shop_id":  id,
		"products": products,
	})
}
