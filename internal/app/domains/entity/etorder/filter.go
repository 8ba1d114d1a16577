package etorder

import "time"

// OrderFilter 订单查询条件（统一中间表示）
// 同一份条件分别编译为 Elasticsearch 查询和 MySQL 谓词，两侧语义保持一致：
//   - ID/Status 精确匹配
//   - StartDate/EndDate 为 createdAt 的闭区间，允许只给一端
//   - Item 匹配明细的 productId（精确）或 productName（子串）
//   - Query 在 customerName/customerEmail/shippingAddress/notes 间做 OR 匹配
//
// 所有字段为空时匹配全部订单
type OrderFilter struct {
	ID        string
	Status    OrderStatus
	StartDate *time.Time
	EndDate   *time.Time
	Item      string
	Query     string
}

// IsEmpty 是否为空条件
func (f OrderFilter) IsEmpty() bool {
	return f.ID == "" && f.Status == "" && f.StartDate == nil &&
		f.EndDate == nil && f.Item == "" && f.Query == ""
}
