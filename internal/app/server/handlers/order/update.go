package order

import (
	"errors"
	"log"

	"oms/api/internal/app/domains/apimodel/request"
	"oms/api/internal/app/domains/apimodel/response"
	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/pkg/errorx"
	"oms/api/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// Update 更新订单接口（状态、收货地址、备注，未携带字段不修改）
// PATCH /api/v1/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrOrderNotFound):
			ginx.NotFound(c, "order not found")
		case errors.Is(err, etorder.ErrInvalidStatus):
			ginx.BadRequest(c, err.Error())
		default:
			log.Printf("[ERROR] update order failed: %v", err)
			ginx.InternalError(c, "update order failed")
		}
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
