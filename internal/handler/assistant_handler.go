package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplocal/backend-go/internal/service"
	"github.com/shoplocal/backend-go/pkg/response"
)

// AssistantHandler serves the customer and seller insight endpoints
type AssistantHandler struct {
	insights *service.InsightsService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(insights *service.InsightsService) *AssistantHandler {
	return &AssistantHandler{insights: insights}
}

type customerInsightsRequest struct {
	Location string `json:"location"`
}

// CustomerInsights handles POST /api/assistant/customer. The location is
// optional; without one the response carries trending products only.
func (h *AssistantHandler) CustomerInsights(c *gin.Context) {
	var req customerInsightsRequest
	// A missing or empty body is fine, it just means no location.
	_ = c.ShouldBindJSON(&req)

	response.Success(c, h.insights.CustomerInsights(req.Location))
}

type sellerInsightsRequest struct {
	ShopID int64 `json:"shop_id"`
}

// SellerInsights handles POST /api/assistant/seller
func (h *AssistantHandler) SellerInsights(c *gin.Context) {
	var req sellerInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ShopID == 0 {
		response.BadRequest(c, "shop_id required")
		return
	}

	insights, err := h.insights.SellerInsights(req.ShopID)
	if err != nil {
		response.InternalError(c, "Failed to compute insights")
		return
	}
	if insights == nil {
		response.NotFound(c, "Shop not found")
		return
	}

	response.Success(c, insights)
}
