package etevent

import (
	"time"

	"oms/api/internal/app/domains/entity/etorder"
)

// Kafka 主题定义
const (
	TopicOrderCreated       = "order_created"
	TopicOrderStatusUpdated = "order_status_updated"
	TopicOrderDeleted       = "order_deleted"
)

// OrderCreated 订单创建事件
type OrderCreated struct {
	OrderID       string       `json:"orderId"`
	CustomerName  string       `json:"customerName"`
	CustomerEmail string       `json:"customerEmail"`
	TotalAmount   float64      `json:"totalAmount"`
	Status        string       `json:"status"`
	Items         []*OrderItem `json:"items"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// OrderItem 事件中的订单明细投影
type OrderItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderStatusUpdated 订单状态变更事件
type OrderStatusUpdated struct {
	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	CurrentStatus  string    `json:"currentStatus"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OrderDeleted 订单删除事件
type OrderDeleted struct {
	OrderID   string    `json:"orderId"`
	DeletedAt time.Time `json:"deletedAt"`
}

// MessageKey 消息键（按订单分区，保证同订单事件有序）
func (e OrderCreated) MessageKey() string       { return e.OrderID }
func (e OrderStatusUpdated) MessageKey() string { return e.OrderID }
func (e OrderDeleted) MessageKey() string       { return e.OrderID }

// NewOrderCreated 从订单实体构建创建事件
func NewOrderCreated(order *etorder.Order) OrderCreated {
	return OrderCreated{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		Items:         projectItems(order.Items),
		CreatedAt:     order.CreatedAt,
	}
}

// NewOrderStatusUpdated 从状态变更构建事件
func NewOrderStatusUpdated(orderID string, previous, current etorder.OrderStatus, updatedAt time.Time) OrderStatusUpdated {
	return OrderStatusUpdated{
		OrderID:        orderID,
		PreviousStatus: string(previous),
		CurrentStatus:  string(current),
		UpdatedAt:      updatedAt,
	}
}

// NewOrderDeleted 构建删除事件
func NewOrderDeleted(orderID string) OrderDeleted {
	return OrderDeleted{
		OrderID:   orderID,
		DeletedAt: time.Now(),
	}
}

// projectItems 订单明细转事件投影
func projectItems(items []*etorder.OrderItem) []*OrderItem {
	out := make([]*OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, &OrderItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}
