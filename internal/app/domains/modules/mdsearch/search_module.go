package mdsearch

import (
	"context"
	"errors"

	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/domains/repo/rporder"
	"oms/api/internal/app/domains/repo/rpsearch"
	"oms/api/internal/app/pkg/logger"
)

// SearchModule 搜索存储写通与回退查询模块
// 写路径：把权威存储的每次变更尽力镜像到搜索存储，幂等且不影响主事务；
// 读路径：搜索存储优先，空结果或出错时回退到权威存储
type SearchModule struct {
	searchRepo rpsearch.SearchRepository
	orderRepo  rporder.OrderRepository
	log        logger.Logger
}

// NewSearchModule 创建搜索模块
func NewSearchModule(searchRepo rpsearch.SearchRepository, orderRepo rporder.OrderRepository, log logger.Logger) *SearchModule {
	return &SearchModule{
		searchRepo: searchRepo,
		orderRepo:  orderRepo,
		log:        log,
	}
}

// IndexOrder 全量写入订单投影
func (m *SearchModule) IndexOrder(ctx context.Context, order *etorder.Order) error {
	return m.searchRepo.Index(ctx, order)
}

// UpdateOrderIndex 部分更新订单投影
// 文档缺失时整档重建自愈，其余错误原样返回供调用方记录
func (m *SearchModule) UpdateOrderIndex(ctx context.Context, order *etorder.Order) error {
	err := m.searchRepo.Update(ctx, order)
	if errors.Is(err, rpsearch.ErrDocumentNotFound) {
		m.log.Warnf(ctx, "order %s missing from search index, reindexing", order.ID)
		return m.searchRepo.Index(ctx, order)
	}
	return err
}

// RemoveOrderIndex 删除订单投影，文档不存在视为成功（幂等删除）
func (m *SearchModule) RemoveOrderIndex(ctx context.Context, orderID string) error {
	err := m.searchRepo.Delete(ctx, orderID)
	if errors.Is(err, rpsearch.ErrDocumentNotFound) {
		return nil
	}
	return err
}

// Search 搜索优先、权威存储回退的查询
// 零命中与查询出错都会回退：无法区分“条件确实无结果”和“搜索存储不可用”，
// 与参考行为保持一致
func (m *SearchModule) Search(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error) {
	results, err := m.searchRepo.Search(ctx, filter)
	if err != nil {
		m.log.Warnf(ctx, "search store query failed, falling back to mysql: %v", err)
		return m.orderRepo.Filter(ctx, filter)
	}
	if len(results) > 0 {
		return results, nil
	}
	return m.orderRepo.Filter(ctx, filter)
}
