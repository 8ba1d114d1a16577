package order

import (
	"errors"
	"log"

	"oms/api/internal/app/pkg/errorx"
	"oms/api/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// Delete 删除订单接口
// DELETE /api/v1/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			ginx.NotFound(c, "order not found")
			return
		}
		log.Printf("[ERROR] delete order failed: %v", err)
		ginx.InternalError(c, "delete order failed")
		return
	}

	ginx.Success(c, gin.H{"id": orderID, "deleted": true})
}
