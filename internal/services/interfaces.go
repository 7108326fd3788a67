package services

import "acacia-lounge/internal/models"

// InvoiceRenderer produces printable invoice documents for completed orders
type InvoiceRenderer interface {
	Render(order *models.Order) ([]byte, error)
}

// PaymentStatusChecker polls the state of a previously initiated payment
type PaymentStatusChecker interface {
	CheckStatus(transactionID string) (PaymentStatus, PaymentVerdict)
}
