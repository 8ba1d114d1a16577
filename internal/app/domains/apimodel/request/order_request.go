package request

import (
	"fmt"
	"time"

	"oms/api/internal/app/domains/entity/etorder"
)

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required" example:"John Doe"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email" example:"john@example.com"`
	CustomerPhone   string             `json:"customer_phone" example:"+1-415-555-0100"`
	ShippingAddress string             `json:"shipping_address" example:"123 Main St, San Francisco"`
	Notes           string             `json:"notes" example:"leave at the front desk"`
	Items           []*CreateOrderItem `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItem 创建订单明细
type CreateOrderItem struct {
	ProductID   string  `json:"product_id" binding:"required" example:"8f7b5db5-8d69-4a6d-81e5-51f33d0e30b0"`
	ProductName string  `json:"product_name" binding:"required" example:"iPhone 13 Pro"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0" example:"999.99"`
	Quantity    int     `json:"quantity" binding:"required,min=1" example:"1"`
	Subtotal    float64 `json:"subtotal" binding:"required,gt=0" example:"999.99"`
}

// ToOrderInput 转换为领域入参
func (r *CreateOrderRequest) ToOrderInput() etorder.NewOrderInput {
	items := make([]*etorder.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, &etorder.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return etorder.NewOrderInput{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		Notes:           r.Notes,
		Items:           items,
	}
}

// UpdateOrderRequest 更新订单请求（nil 字段不修改）
type UpdateOrderRequest struct {
	Status          *string `json:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled" example:"shipped"`
	ShippingAddress *string `json:"shipping_address"`
	Notes           *string `json:"notes"`
}

// ToPatch 转换为领域补丁
func (r *UpdateOrderRequest) ToPatch() etorder.UpdatePatch {
	patch := etorder.UpdatePatch{
		ShippingAddress: r.ShippingAddress,
		Notes:           r.Notes,
	}
	if r.Status != nil {
		status := etorder.OrderStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// FilterOrderRequest 订单检索请求（query 参数）
type FilterOrderRequest struct {
	ID        string `form:"id"`
	Status    string `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Item      string `form:"item"`
	Query     string `form:"q"`
}

// ToFilter 转换为统一查询条件
// 日期接受 RFC3339 或 2006-01-02，范围为闭区间
func (r *FilterOrderRequest) ToFilter() (etorder.OrderFilter, error) {
	filter := etorder.OrderFilter{
		ID:     r.ID,
		Status: etorder.OrderStatus(r.Status),
		Item:   r.Item,
		Query:  r.Query,
	}

	if r.StartDate != "" {
		t, err := parseDate(r.StartDate)
		if err != nil {
			return etorder.OrderFilter{}, fmt.Errorf("invalid start_date: %w", err)
		}
		filter.StartDate = &t
	}
	if r.EndDate != "" {
		t, err := parseDate(r.EndDate)
		if err != nil {
			return etorder.OrderFilter{}, fmt.Errorf("invalid end_date: %w", err)
		}
		filter.EndDate = &t
	}

	return filter, nil
}

// parseDate 解析日期参数
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
