package etorder

import (
	"errors"
	"testing"
)

func validItems() []*OrderItem {
	return []*OrderItem{
		{ProductID: "p1", ProductName: "Widget", UnitPrice: 10, Quantity: 2, Subtotal: 20},
		{ProductID: "p2", ProductName: "Gadget", UnitPrice: 2.5, Quantity: 2, Subtotal: 5},
	}
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(NewOrderInput{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Items:         validItems(),
	})
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}

	if order.ID == "" {
		t.Error("order ID must be assigned")
	}
	if order.Status != OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.TotalAmount != 25 {
		t.Errorf("total = %v, want 25 (sum of item subtotals)", order.TotalAmount)
	}
	for i, item := range order.Items {
		if item.ID == "" {
			t.Errorf("item[%d] ID must be assigned", i)
		}
	}
}

func TestNewOrderValidation(t *testing.T) {
	cases := []struct {
		name    string
		input   NewOrderInput
		wantErr error
	}{
		{
			name:    "empty customer name",
			input:   NewOrderInput{CustomerEmail: "john@example.com", Items: validItems()},
			wantErr: ErrEmptyCustomerName,
		},
		{
			name:    "empty customer email",
			input:   NewOrderInput{CustomerName: "John Doe", Items: validItems()},
			wantErr: ErrEmptyCustomerEmail,
		},
		{
			name:    "no items",
			input:   NewOrderInput{CustomerName: "John Doe", CustomerEmail: "john@example.com"},
			wantErr: ErrEmptyItems,
		},
		{
			name: "item without product",
			input: NewOrderInput{
				CustomerName:  "John Doe",
				CustomerEmail: "john@example.com",
				Items:         []*OrderItem{{ProductName: "Widget", UnitPrice: 10, Quantity: 1, Subtotal: 10}},
			},
			wantErr: ErrInvalidItem,
		},
		{
			name: "item with zero quantity",
			input: NewOrderInput{
				CustomerName:  "John Doe",
				CustomerEmail: "john@example.com",
				Items:         []*OrderItem{{ProductID: "p1", ProductName: "Widget", UnitPrice: 10, Quantity: 0, Subtotal: 10}},
			},
			wantErr: ErrInvalidItem,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewOrder(tc.input); !errors.Is(err, tc.wantErr) {
				t.Errorf("NewOrder() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("teleported").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestApplyPatch(t *testing.T) {
	order, err := NewOrder(NewOrderInput{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Notes:         "original",
		Items:         validItems(),
	})
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}

	shipped := OrderStatusShipped
	addr := "456 Oak Ave"
	if err := order.Apply(UpdatePatch{Status: &shipped, ShippingAddress: &addr}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if order.Status != OrderStatusShipped {
		t.Errorf("status = %s, want shipped", order.Status)
	}
	if order.ShippingAddress != addr {
		t.Errorf("address = %s, want %s", order.ShippingAddress, addr)
	}
	if order.Notes != "original" {
		t.Errorf("notes = %s, nil patch field must not change the order", order.Notes)
	}
}

func TestApplyPatchInvalidStatus(t *testing.T) {
	order, _ := NewOrder(NewOrderInput{
		CustomerName:  "John Doe",
		CustomerEmail: "john@example.com",
		Items:         validItems(),
	})

	bogus := OrderStatus("teleported")
	if err := order.Apply(UpdatePatch{Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Apply() error = %v, want ErrInvalidStatus", err)
	}
	if order.Status != OrderStatusPending {
		t.Errorf("status = %s, failed patch must not change the order", order.Status)
	}
}
