package pricing

import (
	"testing"

	"acacia-lounge/internal/models"
)

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		quantity int
		want     int
	}{
		{0, 1000},
		{1, 1000},
		{4, 1000},
		{5, 800},
		{19, 800},
		{20, 1300},
		{39, 1300},
		{40, 1800},
		{60, 2300},
	}

	for _, tt := range tests {
		if got := DeliveryFee(tt.quantity); got != tt.want {
			t.Errorf("DeliveryFee(%d) = %d, want %d", tt.quantity, got, tt.want)
		}
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name         string
		cart         *models.Cart
		wantQuantity int
		wantSubtotal int
		wantTotal    int
	}{
		{
			name:         "empty cart",
			cart:         &models.Cart{},
			wantQuantity: 0,
			wantSubtotal: 0,
			wantTotal:    1000,
		},
		{
			name: "small order pays base fee",
			cart: &models.Cart{Items: []models.CartItem{
				{DrinkID: 1, Name: "Nairobi Sunset", Price: 450, Quantity: 3},
			}},
			wantQuantity: 3,
			wantSubtotal: 1350,
			wantTotal:    2350,
		},
		{
			name: "bulk order pays reduced fee plus surcharge",
			cart: &models.Cart{Items: []models.CartItem{
				{DrinkID: 121, Name: "Coca-Cola", Price: 100, Quantity: 25},
			}},
			wantQuantity: 25,
			wantSubtotal: 2500,
			wantTotal:    3800,
		},
		{
			name: "quantities sum across lines",
			cart: &models.Cart{Items: []models.CartItem{
				{DrinkID: 1, Price: 450, Quantity: 2},
				{DrinkID: 31, Price: 250, Quantity: 3},
			}},
			wantQuantity: 5,
			wantSubtotal: 1650,
			wantTotal:    2450,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalQuantity(tt.cart); got != tt.wantQuantity {
				t.Errorf("TotalQuantity() = %d, want %d", got, tt.wantQuantity)
			}
			if got := Subtotal(tt.cart); got != tt.wantSubtotal {
				t.Errorf("Subtotal() = %d, want %d", got, tt.wantSubtotal)
			}
			if got := Total(tt.cart); got != tt.wantTotal {
				t.Errorf("Total() = %d, want %d", got, tt.wantTotal)
			}
		})
	}
}

func TestFeeNotice(t *testing.T) {
	if got := FeeNotice(0); got != "" {
		t.Errorf("FeeNotice(0) = %q, want empty", got)
	}

	got := FeeNotice(3)
	want := "Minimum order: 5 drinks for reduced delivery. Add 2 more drinks to save Ksh 200 on delivery!"
	if got != want {
		t.Errorf("FeeNotice(3) = %q, want %q", got, want)
	}

	got = FeeNotice(4)
	want = "Minimum order: 5 drinks for reduced delivery. Add 1 more drink to save Ksh 200 on delivery!"
	if got != want {
		t.Errorf("FeeNotice(4) = %q, want %q", got, want)
	}

	got = FeeNotice(5)
	want = "You qualify for reduced delivery fee!"
	if got != want {
		t.Errorf("FeeNotice(5) = %q, want %q", got, want)
	}
}
