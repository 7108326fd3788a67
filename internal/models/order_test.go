package models

import (
	"strings"
	"testing"
	"time"
)

func validOrder() *Order {
	return &Order{
		ID:              "ORD-847291",
		ClientName:      "Jane Wanjiku",
		ClientPhone:     "254 712 345 678",
		DeliveryAddress: "Clay City, Nairobi",
		Items: []CartItem{
			{DrinkID: 1, Name: "Nairobi Sunset", Price: 450, Quantity: 2},
		},
		Subtotal:        900,
		DeliveryFee:     1000,
		Total:           1900,
		TotalQuantity:   2,
		PaymentMethod:   PaymentMpesa,
		PaymentProvider: "M-Pesa (Code/STK)",
		PaymentDetails:  "STK Push requested to: 254 712 345 678",
		Timestamp:       time.Now(),
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1735689847291)
	id := NewOrderID(now)
	if id != "ORD-847291" {
		t.Errorf("NewOrderID() = %q, want ORD-847291", id)
	}

	// Always ORD- plus the last six digits of the millisecond timestamp
	if !orderIDRegex.MatchString(NewOrderID(time.Now())) {
		t.Error("generated order ID does not match the expected format")
	}
}

func TestOrderValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr string
	}{
		{"valid order", func(o *Order) {}, ""},
		{"bad id format", func(o *Order) { o.ID = "847291" }, "order ID format"},
		{"missing name", func(o *Order) { o.ClientName = "" }, "client name"},
		{"missing phone", func(o *Order) { o.ClientPhone = "" }, "client phone"},
		{"missing address", func(o *Order) { o.DeliveryAddress = "" }, "delivery address"},
		{"no items", func(o *Order) { o.Items = nil }, "at least one item"},
		{"inconsistent total", func(o *Order) { o.Total = 999 }, "does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(order)

			err := order.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestItemsText(t *testing.T) {
	order := validOrder()
	order.Items = []CartItem{
		{DrinkID: 1, Name: "Nairobi Sunset", Price: 450, Quantity: 2},
		{DrinkID: 31, Name: "Tusker Lager", Price: 300, Quantity: 1},
	}

	want := "2 x Nairobi Sunset @ Ksh 450\n1 x Tusker Lager @ Ksh 300"
	if got := order.ItemsText(); got != want {
		t.Errorf("ItemsText() = %q, want %q", got, want)
	}
}

func TestCartFind(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{DrinkID: 1, Quantity: 1},
		{DrinkID: 31, Quantity: 2},
	}}

	if got := cart.Find(31); got != 1 {
		t.Errorf("Find(31) = %d, want 1", got)
	}
	if got := cart.Find(61); got != -1 {
		t.Errorf("Find(61) = %d, want -1", got)
	}
	if !(&Cart{}).IsEmpty() {
		t.Error("empty cart should report IsEmpty")
	}
}
