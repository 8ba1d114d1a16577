package order

import (
	"log"

	"oms/api/internal/app/domains/apimodel/response"
	"oms/api/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// List 查询全部订单，按创建时间倒序
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list orders failed: %v", err)
		ginx.InternalError(c, "list orders failed")
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders))
}
