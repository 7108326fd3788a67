package services

import (
	"fmt"
	"time"

	"acacia-lounge/internal/models"
)

// MockPaymentService is a deterministic PaymentVerifier for tests: no
// delays, no randomness, and individual operations can be made to fail.
type MockPaymentService struct {
	shouldFailOps map[string]bool

	PushCalls   []string
	VerifyCalls []string
}

// NewMockPaymentService creates a mock verifier where every operation
// succeeds
func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{
		shouldFailOps: make(map[string]bool),
	}
}

// SetShouldFail makes the named operation ("push" or "verify") fail
func (s *MockPaymentService) SetShouldFail(operation string, fail bool) {
	s.shouldFailOps[operation] = fail
}

func (s *MockPaymentService) InitiatePush(phoneNumber string, amount int, reference string) PaymentVerdict {
	s.PushCalls = append(s.PushCalls, phoneNumber)

	if s.shouldFailOps["push"] {
		return PaymentVerdict{
			Success:     false,
			Message:     "Failed to initiate payment. Please try again.",
			ProcessedAt: time.Now(),
		}
	}
	return PaymentVerdict{
		Success:       true,
		Message:       "Push initiated",
		TransactionID: fmt.Sprintf("MOCK_%s", reference),
		ProcessedAt:   time.Now(),
	}
}

func (s *MockPaymentService) VerifyCode(code string, amount int, reference string) PaymentVerdict {
	s.VerifyCalls = append(s.VerifyCalls, code)

	if s.shouldFailOps["verify"] {
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

// CheckStatus always reports the payment as completed
func (s *MockPaymentService) CheckStatus(transactionID string) (PaymentStatus, PaymentVerdict) {
	return PaymentStatusCompleted, PaymentVerdict{
		Success:       true,
		Message:       "Payment completed",
		TransactionID: transactionID,
		ProcessedAt:   time.Now(),
	}
}

// MockOrderSubmitter records submitted orders and can be made to fail, for
// exercising the checkout flow without a network
type MockOrderSubmitter struct {
	ShouldFail bool
	Submitted  []*models.Order
}

// NewMockOrderSubmitter creates a submitter that accepts every order
func NewMockOrderSubmitter() *MockOrderSubmitter {
	return &MockOrderSubmitter{}
}

func (s *MockOrderSubmitter) Submit(order *models.Order) error {
	if s.ShouldFail {
		return fmt.Errorf("%w: relay returned status 503", models.ErrSubmissionFailed)
	}
	s.Submitted = append(s.Submitted, order)
	return nil
}
