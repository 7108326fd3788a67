package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// PaymentMethod identifies the mobile-money network chosen at checkout
type PaymentMethod string

const (
	PaymentMpesa  PaymentMethod = "mpesa"
	PaymentAirtel PaymentMethod = "airtel"
)

// PaymentSubMethod identifies how an M-Pesa payment is completed
type PaymentSubMethod string

const (
	SubMethodSTK  PaymentSubMethod = "stk"
	SubMethodCode PaymentSubMethod = "code"
)

// Order represents the immutable snapshot of a completed checkout attempt.
// It is built once by the checkout service, submitted to the form relay and
// then handed to the invoice renderer. It is never modified afterwards.
type Order struct {
	ID              string        `json:"id"`
	ClientName      string        `json:"client_name"`
	ClientID        string        `json:"client_id,omitempty"` // National ID number, optional
	ClientPhone     string        `json:"client_phone"`        // Display-formatted: 254 7XX XXX XXX
	DeliveryAddress string        `json:"delivery_address"`
	SpecialMessage  string        `json:"special_message,omitempty"`
	Items           []CartItem    `json:"items"` // Cart snapshot at submission time
	Subtotal        int           `json:"subtotal"`
	DeliveryFee     int           `json:"delivery_fee"`
	Total           int           `json:"total"`
	TotalQuantity   int           `json:"total_quantity"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentProvider string        `json:"payment_provider"` // e.g. "M-Pesa (Code/STK)"
	PaymentDetails  string        `json:"payment_details"`  // Human-readable payment summary
	Timestamp       time.Time     `json:"timestamp"`
}

var (
	// Order ID format: ORD-XXXXXX, derived from the submission time
	orderIDRegex = regexp.MustCompile(`^ORD-\d{6}$`)
)

// NewOrderID generates a time-derived order identifier like ORD-847291.
// Uniqueness is not guaranteed, but collisions within the lifetime of a
// single customer's orders are unlikely enough for a storefront receipt.
func NewOrderID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	return "ORD-" + millis[len(millis)-6:]
}

// Validate validates the assembled order before submission
func (o *Order) Validate() error {
	if !orderIDRegex.MatchString(o.ID) {
		return errors.New("order ID format is invalid")
	}
	if o.ClientName == "" {
		return errors.New("client name is required")
	}
	if o.ClientPhone == "" {
		return errors.New("client phone is required")
	}
	if o.DeliveryAddress == "" {
		return errors.New("delivery address is required")
	}
	if len(o.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	if o.Total != o.Subtotal+o.DeliveryFee {
		return errors.New("order total does not match subtotal plus delivery fee")
	}
	return nil
}

// ItemsText renders the cart lines in the plain-text form sent to the form
// relay, one "N x Name @ Ksh Price" line per cart item
func (o *Order) ItemsText() string {
	text := ""
	for i, item := range o.Items {
		if i > 0 {
			text += "\n"
		}
		text += fmt.Sprintf("%d x %s @ Ksh %d", item.Quantity, item.Name, item.Price)
	}
	return text
}
