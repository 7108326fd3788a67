package services

import (
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"time"

	"acacia-lounge/internal/phone"
)

// MpesaConfig configures the simulated M-Pesa service
type MpesaConfig struct {
	BusinessShortCode string
	PushDelay         time.Duration // Simulated STK push round-trip
	VerifyDelay       time.Duration // Simulated code verification round-trip
	StatusDelay       time.Duration // Simulated status poll round-trip
	SuccessRate       float64       // Fraction of pushes that succeed, 0..1
}

// DefaultMpesaConfig returns the simulator's stock behavior: two-second
// pushes that succeed four times out of five
func DefaultMpesaConfig() MpesaConfig {
	return MpesaConfig{
		BusinessShortCode: "174379",
		PushDelay:         2 * time.Second,
		VerifyDelay:       1500 * time.Millisecond,
		StatusDelay:       time.Second,
		SuccessRate:       0.8,
	}
}

// MpesaService simulates Lipa Na M-Pesa STK pushes and transaction-code
// verification. No request ever leaves the process.
type MpesaService struct {
	config MpesaConfig
	rng    *rand.Rand
}

// M-Pesa transaction codes are ten uppercase alphanumeric characters
var mpesaCodeRegex = regexp.MustCompile(`^[A-Z0-9]{10}$`)

// NewMpesaService creates a simulated M-Pesa service
func NewMpesaService(config MpesaConfig) *MpesaService {
	return &MpesaService{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// InitiatePush simulates an STK push to the customer's phone
func (s *MpesaService) InitiatePush(phoneNumber string, amount int, reference string) PaymentVerdict {
	normalized, ok := phone.Normalize(phoneNumber)
	if !ok {
		return PaymentVerdict{
			Success:     false,
			Message:     "Invalid M-Pesa phone number.",
			ProcessedAt: time.Now(),
		}
	}

	log.Printf("M-Pesa: initiating STK push (simulated): phone=%s amount=%d reference=%s shortcode=%s",
		normalized, amount, reference, s.config.BusinessShortCode)
	time.Sleep(s.config.PushDelay)

	if s.rng.Float64() >= s.config.SuccessRate {
		return PaymentVerdict{
			Success:     false,
			Message:     "Failed to initiate payment. Please try again.",
			ProcessedAt: time.Now(),
		}
	}

	return PaymentVerdict{
		Success:       true,
		Message:       "STK push initiated successfully. Check your phone to complete payment.",
		TransactionID: fmt.Sprintf("MPE_%d", time.Now().UnixMilli()),
		ProcessedAt:   time.Now(),
	}
}

// VerifyCode simulates verification of a manually entered M-Pesa
// transaction code. Only the code's shape is checked.
func (s *MpesaService) VerifyCode(code string, amount int, reference string) PaymentVerdict {
	log.Printf("M-Pesa: verifying transaction code (simulated): code=%s amount=%d reference=%s", code, amount, reference)
	time.Sleep(s.config.VerifyDelay)

	if !mpesaCodeRegex.MatchString(code) {
		return PaymentVerdict{
			Success:     false,
			Message:     "Invalid transaction code",
			ProcessedAt: time.Now(),
		}
	}

	return PaymentVerdict{
		Success:       true,
		Message:       "Transaction verified successfully",
		TransactionID: code,
		ProcessedAt:   time.Now(),
	}
}

// CheckStatus simulates polling a pending payment. The outcome is random:
// the real API would return the actual gateway state.
func (s *MpesaService) CheckStatus(transactionID string) (PaymentStatus, PaymentVerdict) {
	log.Printf("M-Pesa: checking payment status (simulated): %s", transactionID)
	time.Sleep(s.config.StatusDelay)

	statuses := []PaymentStatus{PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed}
	status := statuses[s.rng.Intn(len(statuses))]

	return status, PaymentVerdict{
		Success:       status == PaymentStatusCompleted,
		Message:       fmt.Sprintf("Payment %s", status),
		TransactionID: transactionID,
		ProcessedAt:   time.Now(),
	}
}
