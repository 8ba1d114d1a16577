package svorder

import (
	"context"
	"fmt"

	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/domains/modules/mdevent"
	"oms/api/internal/app/domains/modules/mdorder"
	"oms/api/internal/app/domains/modules/mdsearch"
	"oms/api/internal/app/pkg/errorx"
	"oms/api/internal/app/pkg/logger"
)

// OrderService 订单服务，负责订单业务编排
// 权威写入（MySQL）同步完成后，事件发布与搜索索引作为尽力而为的副作用执行，
// 副作用失败只记录日志，永远不影响主操作的返回结果
type OrderService struct {
	orderModule  *mdorder.OrderModule
	eventModule  *mdevent.EventModule
	searchModule *mdsearch.SearchModule
	log          logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(
	orderModule *mdorder.OrderModule,
	eventModule *mdevent.EventModule,
	searchModule *mdsearch.SearchModule,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		orderModule:  orderModule,
		eventModule:  eventModule,
		searchModule: searchModule,
		log:          log,
	}
}

// CreateOrder 创建订单（完整业务流程）
// 1. 构建订单实体（总金额 = 明细小计之和）
// 2. 写入权威存储
// 3. 发布 order_created 事件（尽力而为）
// 4. 写入搜索索引（尽力而为）
func (s *OrderService) CreateOrder(ctx context.Context, input etorder.NewOrderInput) (*etorder.Order, error) {
	order, err := etorder.NewOrder(input)
	if err != nil {
		return nil, fmt.Errorf("create order entity failed: %w", err)
	}

	if err := s.orderModule.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	if err := s.eventModule.PublishOrderCreated(ctx, order); err != nil {
		s.log.Warnf(ctx, "publish order_created failed: order_id=%s, error=%v", order.ID, err)
	}
	if err := s.searchModule.IndexOrder(ctx, order); err != nil {
		s.log.Warnf(ctx, "index order failed: order_id=%s, error=%v", order.ID, err)
	}

	return order, nil
}

// GetOrder 查询订单
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.orderModule.GetOrder(ctx, orderID)
}

// ListOrders 查询全部订单，按创建时间倒序
func (s *OrderService) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	return s.orderModule.ListOrders(ctx)
}

// UpdateOrder 更新订单
// 仅当补丁携带的状态与原状态不同时发布 order_status_updated 事件；
// 搜索索引总是按更新后的状态刷新
func (s *OrderService) UpdateOrder(ctx context.Context, orderID string, patch etorder.UpdatePatch) (*etorder.Order, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, etorder.ErrInvalidStatus
	}

	existing, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	updated, err := s.orderModule.UpdateOrder(ctx, orderID, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		err := s.eventModule.PublishOrderStatusUpdated(ctx, updated.ID, existing.Status, updated.Status, updated.UpdatedAt)
		if err != nil {
			s.log.Warnf(ctx, "publish order_status_updated failed: order_id=%s, error=%v", updated.ID, err)
		}
	}

	if err := s.searchModule.UpdateOrderIndex(ctx, updated); err != nil {
		s.log.Warnf(ctx, "update order index failed: order_id=%s, error=%v", updated.ID, err)
	}

	return updated, nil
}

// DeleteOrder 删除订单
// 先校验存在性，删除成功后尽力清理搜索索引并发布 order_deleted 事件
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	if _, err := s.orderModule.GetOrder(ctx, orderID); err != nil {
		return err
	}

	affected, err := s.orderModule.DeleteOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order failed: %w", err)
	}
	if affected == 0 {
		return errorx.ErrOrderNotFound
	}

	if err := s.searchModule.RemoveOrderIndex(ctx, orderID); err != nil {
		s.log.Warnf(ctx, "remove order index failed: order_id=%s, error=%v", orderID, err)
	}
	if err := s.eventModule.PublishOrderDeleted(ctx, orderID); err != nil {
		s.log.Warnf(ctx, "publish order_deleted failed: order_id=%s, error=%v", orderID, err)
	}

	return nil
}

// SearchOrders 按统一查询条件检索（搜索优先、权威存储回退）
func (s *OrderService) SearchOrders(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error) {
	return s.searchModule.Search(ctx, filter)
}
