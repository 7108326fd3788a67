package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"acacia-lounge/internal/models"
)

// FormRelayConfig configures the hosted form-relay submission
type FormRelayConfig struct {
	Endpoint string // e.g. https://formspree.io/f/xpwovkjw
	ReplyTo  string // Email address order notifications reply to
}

// FormRelayService submits completed orders to the hosted form-relay
// endpoint. The relay forwards the submission by email; there is no
// storefront backend behind it.
type FormRelayService struct {
	config FormRelayConfig
	client *http.Client
}

// NewFormRelayService creates a relay client for the given endpoint
func NewFormRelayService(config FormRelayConfig) *FormRelayService {
	return &FormRelayService{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit posts the order to the relay endpoint as a single JSON form
// submission. Any 2xx response counts as success; anything else is an
// error and the caller keeps the cart for a retry.
func (s *FormRelayService) Submit(order *models.Order) error {
	payload := s.buildPayload(order)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode order submission: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: relay returned status %d: %s", models.ErrSubmissionFailed, resp.StatusCode, string(respBody))
	}

	return nil
}

// buildPayload maps the order onto the human-readable field names the
// relay forwards in its notification email. Field names are part of the
// external contract; do not rename them.
func (s *FormRelayService) buildPayload(order *models.Order) map[string]interface{} {
	idNumber := order.ClientID
	if idNumber == "" {
		idNumber = "N/A (No ID Provided)"
	}
	instructions := order.SpecialMessage
	if instructions == "" {
		instructions = "None"
	}

	return map[string]interface{}{
		"Name":                      order.ClientName,
		"Contact_Phone":             order.ClientPhone,
		"ID_Number":                 idNumber,
		"Delivery_Address":          order.DeliveryAddress,
		"Payment_Method":            order.PaymentProvider,
		"Payment_Details_Submitted": order.PaymentDetails,
		"Total_Amount":              fmt.Sprintf("Ksh %d", order.Total),
		"Subtotal":                  fmt.Sprintf("Ksh %d", order.Subtotal),
		"Delivery_Fee":              fmt.Sprintf("Ksh %d", order.DeliveryFee),
		"Cart_Items_List":           order.ItemsText(),
		"Total_Quantity_Items":      order.TotalQuantity,
		"Special_Instructions":      instructions,
		"_replyto":                  s.config.ReplyTo,
	}
}
