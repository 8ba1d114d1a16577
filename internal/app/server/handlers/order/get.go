package order

import (
	"errors"
	"log"

	"oms/api/internal/app/domains/apimodel/response"
	"oms/api/internal/app/pkg/errorx"
	"oms/api/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// Get godoc
// @Summary      获取订单详情
// @Description  根据订单ID获取订单详细信息（包含明细列表）
// @Tags         orders
// @Produce      json
// @Param        id path string true "订单ID（UUID）"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "查询成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Failure      500 {object} ginx.Response "服务器错误"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			ginx.NotFound(c, "order not found")
			return
		}
		log.Printf("[ERROR] get order failed: %v", err)
		ginx.InternalError(c, "get order failed")
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
