package rporder

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/infra/persistence/entity"
	"oms/api/internal/app/pkg/errorx"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，明细随订单一并写入
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po := r.toGormModel(order)
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询订单（含明细）
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// List 查询全部订单，按创建时间倒序
func (r *OrderRepositoryImpl) List(ctx context.Context) ([]*etorder.Order, error) {
	var pos []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModels(pos), nil
}

// Update 应用补丁并返回更新后的订单
// 只更新补丁携带的字段，总金额不重算
func (r *OrderRepositoryImpl) Update(ctx context.Context, orderID string, patch etorder.UpdatePatch) (*etorder.Order, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.ShippingAddress != nil {
		updates["shipping_address"] = *patch.ShippingAddress
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	result := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errorx.ErrOrderNotFound
	}

	return r.GetByID(ctx, orderID)
}

// Delete 删除订单及其明细（单事务）
func (r *OrderRepositoryImpl) Delete(ctx context.Context, orderID string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", orderID).Delete(&entity.Order{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Filter 将统一查询条件编译为 MySQL 谓词
// 语义与 Elasticsearch 侧保持一致：id/status 精确，时间为闭区间，
// item 匹配明细 productId（精确）或 productName（子串），query 跨字段 OR 子串匹配
func (r *OrderRepositoryImpl) Filter(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error) {
	q := r.db.WithContext(ctx).Model(&entity.Order{})

	if filter.ID != "" {
		q = q.Where("orders.id = ?", filter.ID)
	}
	if filter.Status != "" {
		q = q.Where("orders.status = ?", string(filter.Status))
	}
	if filter.StartDate != nil {
		q = q.Where("orders.created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("orders.created_at <= ?", *filter.EndDate)
	}
	if filter.Item != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id"+
				" AND (order_items.product_id = ? OR order_items.product_name LIKE ?))",
			filter.Item, "%"+filter.Item+"%",
		)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where(
			"orders.customer_name LIKE ? OR orders.customer_email LIKE ?"+
				" OR orders.shipping_address LIKE ? OR orders.notes LIKE ?",
			like, like, like, like,
		)
	}

	var pos []entity.Order
	err := q.Preload("Items").Order("orders.created_at DESC").Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModels(pos), nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *OrderRepositoryImpl) toGormModel(order *etorder.Order) *entity.Order {
	po := &entity.Order{
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

	po.Items = make([]entity.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		po.Items = append(po.Items, entity.OrderItem{
			ID:          item.ID,
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
			CreatedAt:   order.CreatedAt,
			UpdatedAt:   order.UpdatedAt,
		})
	}

	return po
}

// toDomainModel GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *entity.Order) *etorder.Order {
	order := &etorder.Order{
		ID:              po.ID,
		CustomerName:    po.CustomerName,
		CustomerEmail:   po.CustomerEmail,
		CustomerPhone:   po.CustomerPhone,
		Status:          etorder.OrderStatus(po.Status),
		TotalAmount:     po.TotalAmount,
		ShippingAddress: po.ShippingAddress,
		Notes:           po.Notes,
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}

	order.Items = make([]*etorder.OrderItem, 0, len(po.Items))
	for i := range po.Items {
		item := &po.Items[i]
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

// toDomainModels 批量转换
func (r *OrderRepositoryImpl) toDomainModels(pos []entity.Order) []*etorder.Order {
	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		orders = append(orders, r.toDomainModel(&pos[i]))
	}
	return orders
}
