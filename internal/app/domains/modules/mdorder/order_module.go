package mdorder

import (
	"context"

	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/domains/repo/rporder"
)

// OrderModule 订单模块（数据操作层）
type OrderModule struct {
	orderRepo rporder.OrderRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(orderRepo rporder.OrderRepository) *OrderModule {
	return &OrderModule{
		orderRepo: orderRepo,
	}
}

// CreateOrder 创建订单（数据操作）
func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Create(ctx, order)
}

// GetOrder 查询订单
func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// ListOrders 查询全部订单，按创建时间倒序
func (m *OrderModule) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	return m.orderRepo.List(ctx)
}

// UpdateOrder 更新订单并返回更新后状态
func (m *OrderModule) UpdateOrder(ctx context.Context, orderID string, patch etorder.UpdatePatch) (*etorder.Order, error) {
	return m.orderRepo.Update(ctx, orderID, patch)
}

// DeleteOrder 删除订单，返回受影响行数
func (m *OrderModule) DeleteOrder(ctx context.Context, orderID string) (int64, error) {
	return m.orderRepo.Delete(ctx, orderID)
}

// FilterOrders 按统一查询条件过滤
func (m *OrderModule) FilterOrders(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error) {
	return m.orderRepo.Filter(ctx, filter)
}
