package rpsearch

import (
	"context"
	"errors"

	"oms/api/internal/app/domains/entity/etorder"
)

// 错误定义
var (
	// ErrDocumentNotFound 文档不存在（调用方据此做自愈/幂等处理）
	ErrDocumentNotFound = errors.New("document not found")
)

// SearchRepository 搜索存储仓储接口（只定义，不实现）
// 二级存储，保存订单的非规范化投影，与权威存储最终一致
type SearchRepository interface {
	// EnsureIndex 索引不存在时按映射创建
	EnsureIndex(ctx context.Context) error

	// Index 按订单ID全量写入（upsert）
	Index(ctx context.Context, order *etorder.Order) error

	// Update 部分更新已有文档，不存在返回 ErrDocumentNotFound
	Update(ctx context.Context, order *etorder.Order) error

	// Delete 按ID删除文档，不存在返回 ErrDocumentNotFound
	Delete(ctx context.Context, orderID string) error

	// Search 按统一查询条件检索，按创建时间倒序
	Search(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error)
}
