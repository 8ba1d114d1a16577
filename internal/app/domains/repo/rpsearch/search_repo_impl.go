package rpsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"oms/api/internal/app/domains/entity/etorder"
)

// orderIndexMapping 订单索引映射
// keyword/text/float/date 与 nested 明细，镜像权威存储的订单结构
const orderIndexMapping = `{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 1
  },
  "mappings": {
    "properties": {
      "id": { "type": "keyword" },
      "customerName": { "type": "text", "analyzer": "standard" },
      "customerEmail": { "type": "keyword" },
      "customerPhone": { "type": "keyword" },
      "status": { "type": "keyword" },
      "totalAmount": { "type": "float" },
      "shippingAddress": { "type": "text", "analyzer": "standard" },
      "notes": { "type": "text", "analyzer": "standard" },
      "createdAt": { "type": "date" },
      "updatedAt": { "type": "date" },
      "items": {
        "type": "nested",
        "properties": {
          "id": { "type": "keyword" },
          "productId": { "type": "keyword" },
          "productName": { "type": "text", "analyzer": "standard" },
          "unitPrice": { "type": "float" },
          "quantity": { "type": "integer" },
          "subtotal": { "type": "float" }
        }
      }
    }
  }
}`

// SearchRepositoryImpl 搜索仓储实现（Elasticsearch）
type SearchRepositoryImpl struct {
	es    *elasticsearch.Client
	index string
}

// NewSearchRepository 创建搜索仓储实例
func NewSearchRepository(es *elasticsearch.Client, index string) SearchRepository {
	return &SearchRepositoryImpl{
		es:    es,
		index: index,
	}
}

// EnsureIndex 索引不存在时按映射创建
func (r *SearchRepositoryImpl) EnsureIndex(ctx context.Context) error {
	res, err := r.es.Indices.Exists(
		[]string{r.index},
		r.es.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("check index exists failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	createRes, err := r.es.Indices.Create(
		r.index,
		r.es.Indices.Create.WithContext(ctx),
		r.es.Indices.Create.WithBody(strings.NewReader(orderIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index failed: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("create index failed: %s", createRes.String())
	}
	return nil
}

// Index 按订单ID全量写入（upsert）
func (r *SearchRepositoryImpl) Index(ctx context.Context, order *etorder.Order) error {
	body, err := json.Marshal(ToDocument(order))
	if err != nil {
		return fmt.Errorf("marshal document failed: %w", err)
	}

	res, err := r.es.Index(
		r.index,
		bytes.NewReader(body),
		r.es.Index.WithDocumentID(order.ID),
		r.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index document failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index document failed: %s", res.String())
	}
	return nil
}

// Update 部分更新已有文档
func (r *SearchRepositoryImpl) Update(ctx context.Context, order *etorder.Order) error {
	body, err := json.Marshal(map[string]interface{}{
		"doc": ToDocument(order),
	})
	if err != nil {
		return fmt.Errorf("marshal document failed: %w", err)
	}

	res, err := r.es.Update(
		r.index,
		order.ID,
		bytes.NewReader(body),
		r.es.Update.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("update document failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrDocumentNotFound
	}
	if res.IsError() {
		return fmt.Errorf("update document failed: %s", res.String())
	}
	return nil
}

// Delete 按ID删除文档
func (r *SearchRepositoryImpl) Delete(ctx context.Context, orderID string) error {
	res, err := r.es.Delete(
		r.index,
		orderID,
		r.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete document failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrDocumentNotFound
	}
	if res.IsError() {
		return fmt.Errorf("delete document failed: %s", res.String())
	}
	return nil
}

// Search 将统一查询条件编译为 ES bool 查询
// 语义与 MySQL 侧保持一致，结果按创建时间倒序
func (r *SearchRepositoryImpl) Search(ctx context.Context, filter etorder.OrderFilter) ([]*etorder.Order, error) {
	body, err := json.Marshal(BuildQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("marshal query failed: %w", err)
	}

	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.String())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response failed: %w", err)
	}

	orders := make([]*etorder.Order, 0, len(sr.Hits.Hits))
	for _, hit := range sr.Hits.Hits {
		orders = append(orders, hit.Source.ToDomain())
	}
	return orders, nil
}

// searchResponse ES 检索响应
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score  float64       `json:"_score"`
			Source OrderDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// BuildQuery 编译统一查询条件为 ES 请求体
// 空条件得到空 must，等价于 match_all
func BuildQuery(filter etorder.OrderFilter) map[string]interface{} {
	must := make([]interface{}, 0, 5)

	if filter.ID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"id": filter.ID},
		})
	}
	if filter.Status != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"status": string(filter.Status)},
		})
	}
	if filter.StartDate != nil || filter.EndDate != nil {
		createdAt := map[string]interface{}{}
		if filter.StartDate != nil {
			createdAt["gte"] = filter.StartDate
		}
		if filter.EndDate != nil {
			createdAt["lte"] = filter.EndDate
		}
		must = append(must, map[string]interface{}{
			"range": map[string]interface{}{"createdAt": createdAt},
		})
	}
	if filter.Item != "" {
		must = append(must, map[string]interface{}{
			"nested": map[string]interface{}{
				"path": "items",
				"query": map[string]interface{}{
					"bool": map[string]interface{}{
						"should": []interface{}{
							map[string]interface{}{
								"match": map[string]interface{}{"items.productName": filter.Item},
							},
							map[string]interface{}{
								"term": map[string]interface{}{"items.productId": filter.Item},
							},
						},
					},
				},
			},
		})
	}
	if filter.Query != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  filter.Query,
				"fields": []string{"customerName", "customerEmail", "shippingAddress", "notes"},
			},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
		"sort": []interface{}{
			map[string]interface{}{
				"createdAt": map[string]interface{}{"order": "desc"},
			},
		},
	}
}
