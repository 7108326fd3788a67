package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"acacia-lounge/internal/models"
	"acacia-lounge/internal/phone"
	"acacia-lounge/internal/pricing"
)

// OrderSubmitter delivers a completed order to the external form relay
type OrderSubmitter interface {
	Submit(order *models.Order) error
}

// CheckoutRequest carries the checkout form input
type CheckoutRequest struct {
	ClientName      string
	ClientID        string // National ID number, optional
	ClientPhone     string
	DeliveryAddress string
	SpecialMessage  string
	PaymentMethod   models.PaymentMethod
	SubMethod       models.PaymentSubMethod // M-Pesa only
	PaymentPhone    string                  // STK push / Airtel Money number
	MpesaCode       string                  // Manual transaction code
}

// Kenyan national ID numbers are exactly eight digits
var clientIDRegex = regexp.MustCompile(`^\d{8}$`)

// CheckoutService validates checkout input, assembles the order record and
// submits it to the form relay. Validation failures never reach the relay;
// a failed submission leaves the cart untouched so the customer can retry.
// Only one submission may be in flight at a time.
type CheckoutService struct {
	submitter OrderSubmitter

	mu       sync.Mutex
	inFlight bool
}

// NewCheckoutService creates a checkout service over the given submitter
func NewCheckoutService(submitter OrderSubmitter) *CheckoutService {
	return &CheckoutService{submitter: submitter}
}

// Validate checks the checkout form against the cart. It returns a map of
// field name to error messages; an empty map means the form is valid. No
// state is mutated and no network request is made.
func (s *CheckoutService) Validate(req *CheckoutRequest, cart *models.Cart) map[string][]string {
	errors := make(map[string][]string)

	if strings.TrimSpace(req.ClientName) == "" {
		errors["client_name"] = append(errors["client_name"], "Name is required")
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		errors["client_phone"] = append(errors["client_phone"], "Phone number is required")
	} else if !phone.IsValid(req.ClientPhone) {
		errors["client_phone"] = append(errors["client_phone"], "Please enter a valid Kenyan phone number")
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		errors["delivery_address"] = append(errors["delivery_address"], "Delivery address is required")
	}
	if id := strings.TrimSpace(req.ClientID); id != "" && !clientIDRegex.MatchString(id) {
		errors["client_id"] = append(errors["client_id"], "Please enter a valid Kenyan ID Number (8 digits) or leave it blank")
	}
	if cart.IsEmpty() {
		errors["cart"] = append(errors["cart"], "Your cart is empty. Please add items to your cart before checking out")
	}

	s.validatePayment(req, errors)
	return errors
}

// validatePayment checks the sub-fields the selected payment method needs
func (s *CheckoutService) validatePayment(req *CheckoutRequest, errors map[string][]string) {
	switch req.PaymentMethod {
	case models.PaymentMpesa:
		if req.SubMethod == models.SubMethodCode {
			code := strings.TrimSpace(req.MpesaCode)
			if code == "" {
				errors["mpesa_code"] = append(errors["mpesa_code"], "Please enter your M-Pesa transaction code")
			} else if !mpesaCodeRegex.MatchString(code) {
				errors["mpesa_code"] = append(errors["mpesa_code"], "Please enter a valid M-Pesa transaction code (10 characters)")
			}
			return
		}
		// STK push is the default sub-method
		if strings.TrimSpace(req.PaymentPhone) == "" {
			errors["payment_phone"] = append(errors["payment_phone"], "Please enter your M-Pesa phone number for STK push")
		} else if !phone.IsValid(req.PaymentPhone) {
			errors["payment_phone"] = append(errors["payment_phone"], "Please enter a valid M-Pesa phone number")
		}
	case models.PaymentAirtel:
		if strings.TrimSpace(req.PaymentPhone) == "" {
			errors["payment_phone"] = append(errors["payment_phone"], "Please enter your Airtel Money phone number")
		} else if !phone.IsValid(req.PaymentPhone) {
			errors["payment_phone"] = append(errors["payment_phone"], "Please enter a valid Airtel Money phone number")
		}
	default:
		errors["payment_method"] = append(errors["payment_method"], "Please select a payment method")
	}
}

// BuildOrder assembles the immutable order record from validated input and
// the cart snapshot. Totals are derived from the snapshot at this instant.
func (s *CheckoutService) BuildOrder(req *CheckoutRequest, cart *models.Cart) *models.Order {
	now := time.Now()
	totalQuantity := pricing.TotalQuantity(cart)
	subtotal := pricing.Subtotal(cart)
	deliveryFee := pricing.DeliveryFee(totalQuantity)

	provider, details := paymentSummary(req)

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return &models.Order{
		ID:              models.NewOrderID(now),
		ClientName:      strings.TrimSpace(req.ClientName),
		ClientID:        strings.TrimSpace(req.ClientID),
		ClientPhone:     phone.Format(req.ClientPhone),
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		SpecialMessage:  strings.TrimSpace(req.SpecialMessage),
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           subtotal + deliveryFee,
		TotalQuantity:   totalQuantity,
		PaymentMethod:   req.PaymentMethod,
		PaymentProvider: provider,
		PaymentDetails:  details,
		Timestamp:       now,
	}
}

// paymentSummary renders the human-readable payment method and details
// strings carried on the order and forwarded to the relay
func paymentSummary(req *CheckoutRequest) (provider, details string) {
	switch req.PaymentMethod {
	case models.PaymentMpesa:
		provider = "M-Pesa (Code/STK)"
		if req.SubMethod == models.SubMethodCode {
			details = fmt.Sprintf("M-Pesa Code provided: %s", strings.TrimSpace(req.MpesaCode))
		} else {
			details = fmt.Sprintf("STK Push requested to: %s", phone.Format(req.PaymentPhone))
		}
	case models.PaymentAirtel:
		provider = "Airtel Money"
		details = fmt.Sprintf("Airtel Money payment from: %s", phone.Format(req.PaymentPhone))
	default:
		provider = string(req.PaymentMethod)
		details = fmt.Sprintf("Payment method: %s", provider)
	}
	return provider, details
}

// ProcessCheckout runs the full checkout: validate, build the order, submit
// to the relay. On validation failure it returns the field errors and makes
// no request. On submission failure it returns an error; the caller must
// preserve the cart and form state for a retry. Only the caller clears the
// cart, and only after success.
func (s *CheckoutService) ProcessCheckout(req *CheckoutRequest, cart *models.Cart) (*models.Order, map[string][]string, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("a checkout is already in progress")
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if errors := s.Validate(req, cart); len(errors) > 0 {
		return nil, errors, nil
	}

	order := s.BuildOrder(req, cart)
	if err := order.Validate(); err != nil {
		return nil, nil, fmt.Errorf("assembled order is invalid: %w", err)
	}

	log.Printf("🛒 Submitting order %s: total=Ksh %d items=%d", order.ID, order.Total, order.TotalQuantity)

	if err := s.submitter.Submit(order); err != nil {
		log.Printf("❌ Order %s submission failed: %v", order.ID, err)
		return nil, nil, err
	}

	log.Printf("✅ Order %s submitted successfully", order.ID)
	return order, nil, nil
}
