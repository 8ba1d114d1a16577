package rpsearch

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"oms/api/internal/app/domains/entity/etorder"
)

func mustClauses(t *testing.T, q map[string]interface{}) []interface{} {
	t.Helper()
	boolQuery := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
	return boolQuery["must"].([]interface{})
}

func TestBuildQueryEmptyFilter(t *testing.T) {
	q := BuildQuery(etorder.OrderFilter{})

	if got := mustClauses(t, q); len(got) != 0 {
		t.Errorf("must clauses = %d, empty filter should match all", len(got))
	}

	sort := q["sort"].([]interface{})
	body, _ := json.Marshal(sort)
	if !strings.Contains(string(body), `"createdAt":{"order":"desc"}`) {
		t.Errorf("sort = %s, want createdAt desc", body)
	}
}

func TestBuildQueryAllConditions(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	q := BuildQuery(etorder.OrderFilter{
		ID:        "order-1",
		Status:    etorder.OrderStatusShipped,
		StartDate: &start,
		EndDate:   &end,
		Item:      "Widget",
		Query:     "john",
	})

	clauses := mustClauses(t, q)
	if len(clauses) != 5 {
		t.Fatalf("must clauses = %d, want 5", len(clauses))
	}

	body, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("query must be serializable: %v", err)
	}
	for _, want := range []string{
		`"term":{"id":"order-1"}`,
		`"term":{"status":"shipped"}`,
		`"range":{"createdAt":`,
		`"nested":{"path":"items"`,
		`"multi_match":`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("query %s\nmissing clause %s", body, want)
		}
	}
}

func TestBuildQueryItemMatchesIDOrName(t *testing.T) {
	q := BuildQuery(etorder.OrderFilter{Item: "p1"})

	body, _ := json.Marshal(q)
	if !strings.Contains(string(body), `"match":{"items.productName":"p1"}`) {
		t.Errorf("query %s missing productName match", body)
	}
	if !strings.Contains(string(body), `"term":{"items.productId":"p1"}`) {
		t.Errorf("query %s missing productId term", body)
	}
}
