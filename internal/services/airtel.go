package services

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"acacia-lounge/internal/phone"

	"github.com/google/uuid"
)

// AirtelConfig configures the simulated Airtel Money service
type AirtelConfig struct {
	ManualPayNumber string        // Till number quoted in manual-pay instructions
	PushDelay       time.Duration
	VerifyDelay     time.Duration
	SuccessRate     float64
}

// DefaultAirtelConfig returns the simulator's stock behavior
func DefaultAirtelConfig() AirtelConfig {
	return AirtelConfig{
		ManualPayNumber: "0721555163",
		PushDelay:       2 * time.Second,
		VerifyDelay:     1500 * time.Millisecond,
		SuccessRate:     0.8,
	}
}

// AirtelService simulates Airtel Money payment pushes and reference-code
// verification. No request ever leaves the process.
type AirtelService struct {
	config AirtelConfig
	rng    *rand.Rand
}

// NewAirtelService creates a simulated Airtel Money service
func NewAirtelService(config AirtelConfig) *AirtelService {
	return &AirtelService{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// InitiatePush simulates an Airtel Money payment prompt on the customer's
// phone
func (s *AirtelService) InitiatePush(phoneNumber string, amount int, reference string) PaymentVerdict {
	normalized, ok := phone.Normalize(phoneNumber)
	if !ok {
		return PaymentVerdict{
			Success:     false,
			Message:     "Phone number is required for Airtel payment.",
			ProcessedAt: time.Now(),
		}
	}

	log.Printf("Airtel Money: initiating payment (simulated): phone=%s amount=%d reference=%s", normalized, amount, reference)
	time.Sleep(s.config.PushDelay)

	if s.rng.Float64() >= s.config.SuccessRate {
		return PaymentVerdict{
			Success:     false,
			Message:     "Airtel Money initiation failed. Please check your phone number and try again.",
			ProcessedAt: time.Now(),
		}
	}

	return PaymentVerdict{
		Success:       true,
		Message:       "Airtel Money payment initiated successfully. Check your phone to complete payment.",
		TransactionID: newAirtelTransactionID(),
		ProcessedAt:   time.Now(),
	}
}

// VerifyCode simulates verification of an Airtel Money reference code.
// Airtel references vary in format, so only a minimum length is enforced.
func (s *AirtelService) VerifyCode(code string, amount int, reference string) PaymentVerdict {
	log.Printf("Airtel Money: verifying reference code (simulated): code=%s amount=%d reference=%s", code, amount, reference)
	time.Sleep(s.config.VerifyDelay)

	if len(strings.TrimSpace(code)) < 8 {
		return PaymentVerdict{
			Success:     false,
			Message:     "Invalid Airtel Transaction Code. Please re-check the code and try again.",
			ProcessedAt: time.Now(),
		}
	}

	return PaymentVerdict{
		Success:       true,
		Message:       "Airtel Transaction verified successfully! Order is complete.",
		TransactionID: code,
		ProcessedAt:   time.Now(),
	}
}

// newAirtelTransactionID generates references like AIR3F8K2M9QD1
func newAirtelTransactionID() string {
	compact := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "AIR" + compact[:10]
}
