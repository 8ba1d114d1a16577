package etorder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// 错误定义
var (
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrEmptyCustomerEmail = errors.New("customer email cannot be empty")
	ErrEmptyItems         = errors.New("order must contain at least one item")
	ErrInvalidItem        = errors.New("invalid order item")
	ErrInvalidStatus      = errors.New("invalid order status")
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid 校验状态枚举值
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order 订单聚合根（领域对象）
type Order struct {
	ID              string       // 订单ID (UUID)
	CustomerName    string       // 客户姓名
	CustomerEmail   string       // 客户邮箱
	CustomerPhone   string       // 客户电话（可选）
	Status          OrderStatus  // 订单状态
	TotalAmount     float64      // 订单总金额
	ShippingAddress string       // 收货地址（可选）
	Notes           string       // 备注（可选）
	Items           []*OrderItem // 订单明细
	CreatedAt       time.Time    // 创建时间
	UpdatedAt       time.Time    // 更新时间
}

// OrderItem 订单明细（随订单级联删除）
type OrderItem struct {
	ID          string  // 明细ID (UUID)
	ProductID   string  // 商品ID
	ProductName string  // 商品名称
	UnitPrice   float64 // 单价
	Quantity    int     // 数量
	Subtotal    float64 // 小计
}

// NewOrderInput 创建订单入参
type NewOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
	Items           []*OrderItem
}

// NewOrder 创建订单（工厂方法）
// 总金额由明细小计汇总得出，创建后不再重算
func NewOrder(input NewOrderInput) (*Order, error) {
	if input.CustomerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if input.CustomerEmail == "" {
		return nil, ErrEmptyCustomerEmail
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyItems
	}

	total := 0.0
	for _, item := range input.Items {
		if item == nil || item.ProductID == "" || item.ProductName == "" {
			return nil, ErrInvalidItem
		}
		if item.UnitPrice <= 0 || item.Quantity < 1 || item.Subtotal <= 0 {
			return nil, ErrInvalidItem
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		total += item.Subtotal
	}

	now := time.Now()
	return &Order{
		ID:              uuid.New().String(),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Status:          OrderStatusPending,
		TotalAmount:     total,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		Items:           input.Items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// UpdatePatch 订单更新补丁（nil 字段不修改）
type UpdatePatch struct {
	Status          *OrderStatus
	ShippingAddress *string
	Notes           *string
}

// Apply 将补丁应用到订单（领域行为）
// 状态变更不做状态机约束，任意状态可覆盖任意状态
func (o *Order) Apply(patch UpdatePatch) error {
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return ErrInvalidStatus
		}
		o.Status = *patch.Status
	}
	if patch.ShippingAddress != nil {
		o.ShippingAddress = *patch.ShippingAddress
	}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	o.UpdatedAt = time.Now()
	return nil
}
