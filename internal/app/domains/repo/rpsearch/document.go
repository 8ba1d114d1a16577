package rpsearch

import (
	"time"

	"oms/api/internal/app/domains/entity/etorder"
)

// OrderDocument 订单搜索文档（非规范化投影，按订单ID作为文档ID）
type OrderDocument struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone,omitempty"`
	Status          string              `json:"status"`
	TotalAmount     float64             `json:"totalAmount"`
	ShippingAddress string              `json:"shippingAddress,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemDocument `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// OrderItemDocument 明细投影（nested）
type OrderItemDocument struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// ToDocument 领域对象转搜索文档
func ToDocument(order *etorder.Order) OrderDocument {
	doc := OrderDocument{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	doc.Items = make([]OrderItemDocument, 0, len(order.Items))
	for _, item := range order.Items {
		doc.Items = append(doc.Items, OrderItemDocument{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return doc
}

// ToDomain 搜索文档转领域对象
func (d OrderDocument) ToDomain() *etorder.Order {
	order := &etorder.Order{
		ID:              d.ID,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		Status:          etorder.OrderStatus(d.Status),
		TotalAmount:     d.TotalAmount,
		ShippingAddress: d.ShippingAddress,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	order.Items = make([]*etorder.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		order.Items = append(order.Items, &etorder.OrderItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return order
}
