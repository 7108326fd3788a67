package services

import "time"

// PaymentVerdict is the outcome of a simulated payment operation
type PaymentVerdict struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	TransactionID string    `json:"transaction_id,omitempty"`
	ProcessedAt   time.Time `json:"processed_at"`
}

// PaymentStatus is the state of a previously initiated payment
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentVerifier is the capability the checkout flow uses to confirm a
// customer's mobile-money payment. Both implementations in this repository
// are simulators: they model the latency and failure modes of the real
// gateways but never contact a payment network. Real gateway integration
// belongs on a trusted server, never here.
type PaymentVerifier interface {
	// InitiatePush asks the network to prompt the customer's phone for
	// payment authorization
	InitiatePush(phoneNumber string, amount int, reference string) PaymentVerdict
	// VerifyCode checks a transaction code the customer obtained after
	// paying manually
	VerifyCode(code string, amount int, reference string) PaymentVerdict
}
