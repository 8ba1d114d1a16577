package order

import (
	"log"

	"oms/api/internal/app/domains/apimodel/request"
	"oms/api/internal/app/domains/apimodel/response"
	"oms/api/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// Search godoc
// @Summary      检索订单
// @Description  按条件检索订单，搜索引擎优先，不可用或无结果时回退数据库
// @Tags         orders
// @Produce      json
// @Param        id query string false "订单ID精确匹配"
// @Param        status query string false "订单状态" Enums(pending, processing, shipped, delivered, cancelled)
// @Param        start_date query string false "创建时间下界（RFC3339 或 2006-01-02）"
// @Param        end_date query string false "创建时间上界（RFC3339 或 2006-01-02）"
// @Param        item query string false "商品ID或名称"
// @Param        q query string false "全文检索关键词"
// @Success      200 {object} ginx.Response{data=[]response.OrderResponse} "检索成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      500 {object} ginx.Response "服务器错误"
// @Router       /orders/search [get]
func (h *OrderHandler) Search(c *gin.Context) {
	var req request.FilterOrderRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	orders, err := h.orderService.SearchOrders(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] search orders failed: %v", err)
		ginx.InternalError(c, "search orders failed")
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders))
}
