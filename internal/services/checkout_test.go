package services

import (
	"testing"

	"acacia-lounge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		ClientName:      "Jane Wanjiku",
		ClientPhone:     "0712345678",
		DeliveryAddress: "Clay City, Nairobi",
		PaymentMethod:   models.PaymentMpesa,
		SubMethod:       models.SubMethodSTK,
		PaymentPhone:    "0712345678",
	}
}

func testCart() *models.Cart {
	return &models.Cart{Items: []models.CartItem{
		{DrinkID: 1, Name: "Nairobi Sunset", Price: 450, Quantity: 3},
	}}
}

func TestValidate(t *testing.T) {
	service := NewCheckoutService(NewMockOrderSubmitter())

	tests := []struct {
		name      string
		mutate    func(req *CheckoutRequest)
		cart      *models.Cart
		wantField string
	}{
		{"valid request", func(req *CheckoutRequest) {}, testCart(), ""},
		{"missing name", func(req *CheckoutRequest) { req.ClientName = "  " }, testCart(), "client_name"},
		{"missing phone", func(req *CheckoutRequest) { req.ClientPhone = "" }, testCart(), "client_phone"},
		{"invalid phone", func(req *CheckoutRequest) { req.ClientPhone = "12345" }, testCart(), "client_phone"},
		{"missing address", func(req *CheckoutRequest) { req.DeliveryAddress = "" }, testCart(), "delivery_address"},
		{"bad id number", func(req *CheckoutRequest) { req.ClientID = "12AB" }, testCart(), "client_id"},
		{"blank id number is fine", func(req *CheckoutRequest) { req.ClientID = "" }, testCart(), ""},
		{"empty cart", func(req *CheckoutRequest) {}, &models.Cart{}, "cart"},
		{"unknown payment method", func(req *CheckoutRequest) { req.PaymentMethod = "cash" }, testCart(), "payment_method"},
		{"stk without phone", func(req *CheckoutRequest) { req.PaymentPhone = "" }, testCart(), "payment_phone"},
		{
			"code without code",
			func(req *CheckoutRequest) { req.SubMethod = models.SubMethodCode; req.MpesaCode = "" },
			testCart(), "mpesa_code",
		},
		{
			"malformed mpesa code",
			func(req *CheckoutRequest) { req.SubMethod = models.SubMethodCode; req.MpesaCode = "short" },
			testCart(), "mpesa_code",
		},
		{
			"well-formed mpesa code",
			func(req *CheckoutRequest) { req.SubMethod = models.SubMethodCode; req.MpesaCode = "QGH7KL2M9P" },
			testCart(), "",
		},
		{
			"airtel without phone",
			func(req *CheckoutRequest) { req.PaymentMethod = models.PaymentAirtel; req.PaymentPhone = "" },
			testCart(), "payment_phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tt.mutate(req)

			errors := service.Validate(req, tt.cart)
			if tt.wantField == "" {
				assert.Empty(t, errors)
			} else {
				assert.NotEmpty(t, errors[tt.wantField], "expected an error on %s, got %v", tt.wantField, errors)
			}
		})
	}
}

func TestBuildOrder(t *testing.T) {
	service := NewCheckoutService(NewMockOrderSubmitter())
	req := validCheckoutRequest()
	cart := testCart()

	order := service.BuildOrder(req, cart)

	assert.Regexp(t, `^ORD-\d{6}$`, order.ID)
	assert.Equal(t, "Jane Wanjiku", order.ClientName)
	assert.Equal(t, "254 712 345 678", order.ClientPhone)
	assert.Equal(t, 1350, order.Subtotal)
	assert.Equal(t, 1000, order.DeliveryFee)
	assert.Equal(t, 2350, order.Total)
	assert.Equal(t, 3, order.TotalQuantity)
	assert.Equal(t, "M-Pesa (Code/STK)", order.PaymentProvider)
	assert.Contains(t, order.PaymentDetails, "STK Push requested to: 254 712 345 678")

	// The order carries its own copy of the cart lines
	require.Len(t, order.Items, 1)
	cart.Items[0].Quantity = 99
	assert.Equal(t, 3, order.Items[0].Quantity)
}

func TestBuildOrder_MpesaCode(t *testing.T) {
	service := NewCheckoutService(NewMockOrderSubmitter())
	req := validCheckoutRequest()
	req.SubMethod = models.SubMethodCode
	req.MpesaCode = "QGH7KL2M9P"

	order := service.BuildOrder(req, testCart())
	assert.Equal(t, "M-Pesa Code provided: QGH7KL2M9P", order.PaymentDetails)
}

func TestBuildOrder_Airtel(t *testing.T) {
	service := NewCheckoutService(NewMockOrderSubmitter())
	req := validCheckoutRequest()
	req.PaymentMethod = models.PaymentAirtel

	order := service.BuildOrder(req, testCart())
	assert.Equal(t, "Airtel Money", order.PaymentProvider)
	assert.Equal(t, "Airtel Money payment from: 254 712 345 678", order.PaymentDetails)
}

func TestProcessCheckout_Success(t *testing.T) {
	submitter := NewMockOrderSubmitter()
	service := NewCheckoutService(submitter)

	order, fieldErrors, err := service.ProcessCheckout(validCheckoutRequest(), testCart())

	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	require.NotNil(t, order)
	require.Len(t, submitter.Submitted, 1)
	assert.Equal(t, order.ID, submitter.Submitted[0].ID)
}

func TestProcessCheckout_ValidationFailureNeverSubmits(t *testing.T) {
	submitter := NewMockOrderSubmitter()
	service := NewCheckoutService(submitter)

	req := validCheckoutRequest()
	req.ClientName = ""

	order, fieldErrors, err := service.ProcessCheckout(req, testCart())

	require.NoError(t, err)
	assert.Nil(t, order)
	assert.NotEmpty(t, fieldErrors["client_name"])
	assert.Empty(t, submitter.Submitted, "invalid checkout must never reach the relay")
}

func TestProcessCheckout_SubmissionFailure(t *testing.T) {
	submitter := NewMockOrderSubmitter()
	submitter.ShouldFail = true
	service := NewCheckoutService(submitter)

	cart := testCart()
	order, fieldErrors, err := service.ProcessCheckout(validCheckoutRequest(), cart)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSubmissionFailed)
	assert.Nil(t, order)
	assert.Empty(t, fieldErrors)

	// The cart snapshot is untouched; a retry can reuse it
	assert.Len(t, cart.Items, 1)

	// The service accepts a retry after a failure
	submitter.ShouldFail = false
	order, _, err = service.ProcessCheckout(validCheckoutRequest(), cart)
	require.NoError(t, err)
	assert.NotNil(t, order)
}
