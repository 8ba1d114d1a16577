package rporder

import (
	"context"

	"oms/api/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口（只定义，不实现）
// 权威存储，所有写操作以此为准
type OrderRepository interface {
	// Create 创建订单（含明细）
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单，不存在返回 errorx.ErrOrderNotFound
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// List 查询全部订单，按创建时间倒序
	List(ctx context.Context) ([]*etorder.Order, error)

	// Update 应用补丁并返回更新后的订单，不存在返回 errorx.ErrOrderNotFound
	Update(ctx context.Context, orderID string, patch etorder.UpdatePatch) (*etorder.Order, error)

	// Delete 删除订单（明细级联删除），返回受影响行数
	Delete(ctx context.Context, orderID string) (int64, error)

	// Filter 按统一查询条件过滤，按创建时间倒序
	Filter(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error)
}
