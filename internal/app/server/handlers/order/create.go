package order

import (
	"errors"
	"log"

	"oms/api/internal/app/domains/apimodel/request"
	"oms/api/internal/app/domains/apimodel/response"
	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// Create 创建订单接口
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req.ToOrderInput())
	if err != nil {
		if isOrderInputError(err) {
			ginx.BadRequest(c, err.Error())
			return
		}
		log.Printf("[ERROR] create order failed: %v", err)
		ginx.InternalError(c, "create order failed")
		return
	}

	ginx.Created(c, response.FromOrderEntity(order))
}

// isOrderInputError 判断是否为入参校验类错误
func isOrderInputError(err error) bool {
	return errors.Is(err, etorder.ErrEmptyCustomerName) ||
		errors.Is(err, etorder.ErrEmptyCustomerEmail) ||
		errors.Is(err, etorder.ErrEmptyItems) ||
		errors.Is(err, etorder.ErrInvalidItem)
}
