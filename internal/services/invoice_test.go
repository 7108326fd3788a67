package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"acacia-lounge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceTestOrder() *models.Order {
	return &models.Order{
		ID:              "ORD-847291",
		ClientName:      "Jane Wanjiku",
		ClientID:        "12345678",
		ClientPhone:     "254 712 345 678",
		DeliveryAddress: "Clay City, Nairobi",
		SpecialMessage:  "Call on arrival",
		Items: []models.CartItem{
			{DrinkID: 1, Name: "Nairobi Sunset", Price: 450, Quantity: 2},
			{DrinkID: 31, Name: "Tusker Lager", Price: 300, Quantity: 1},
		},
		Subtotal:        1200,
		DeliveryFee:     1000,
		Total:           2200,
		TotalQuantity:   3,
		PaymentMethod:   models.PaymentMpesa,
		PaymentProvider: "M-Pesa (Code/STK)",
		PaymentDetails:  "M-Pesa Code provided: QGH7KL2M9P",
		Timestamp:       time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	service := NewInvoiceService()
	order := invoiceTestOrder()

	document, err := service.Render(order)
	require.NoError(t, err)

	html := string(document)
	assert.Contains(t, html, "ORD-847291")
	assert.Contains(t, html, "Jane Wanjiku")
	assert.Contains(t, html, "254 712 345 678")
	assert.Contains(t, html, "Clay City, Nairobi")
	assert.Contains(t, html, "Nairobi Sunset")
	assert.Contains(t, html, "Tusker Lager")
	assert.Contains(t, html, "Ksh 2,200")
	assert.Contains(t, html, "M-Pesa Code provided: QGH7KL2M9P")
	assert.Contains(t, html, "Call on arrival")

	// Date and footer year come from the order, not the wall clock
	assert.Contains(t, html, "14 Mar 2025")
	assert.Contains(t, html, "&copy; 2025")
}

func TestRender_Deterministic(t *testing.T) {
	service := NewInvoiceService()
	order := invoiceTestOrder()

	first, err := service.Render(order)
	require.NoError(t, err)
	second, err := service.Render(order)
	require.NoError(t, err)

	assert.Equal(t, first, second, "rendering the same order twice must produce identical documents")
}

func TestRender_DoesNotMutateOrder(t *testing.T) {
	service := NewInvoiceService()
	order := invoiceTestOrder()
	before := *order

	_, err := service.Render(order)
	require.NoError(t, err)

	assert.Equal(t, before.Total, order.Total)
	assert.Equal(t, before.Items, order.Items)
}

func TestRender_OptionalFieldsOmitted(t *testing.T) {
	service := NewInvoiceService()
	order := invoiceTestOrder()
	order.ClientID = ""
	order.SpecialMessage = ""

	document, err := service.Render(order)
	require.NoError(t, err)

	html := string(document)
	assert.NotContains(t, html, "ID Number:")
	assert.Contains(t, html, "None provided")
}

func TestSaveToFile(t *testing.T) {
	service := NewInvoiceService()
	dir := filepath.Join(t.TempDir(), "invoices")

	path, err := service.SaveToFile(invoiceTestOrder(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "invoice-ORD-847291.html"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "ORD-847291")
}
