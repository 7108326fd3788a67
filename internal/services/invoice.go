package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"acacia-lounge/internal/models"
	"acacia-lounge/web/templates/pages"
)

// InvoiceService renders completed orders into self-contained printable
// HTML documents. Rendering is pure: the same order always produces the
// same document and the order is never mutated.
type InvoiceService struct{}

// NewInvoiceService creates a new invoice service
func NewInvoiceService() *InvoiceService {
	return &InvoiceService{}
}

// Render produces the invoice document for the given order
func (s *InvoiceService) Render(order *models.Order) ([]byte, error) {
	var buffer bytes.Buffer
	if err := pages.InvoicePage(order).Render(context.Background(), &buffer); err != nil {
		return nil, fmt.Errorf("failed to render invoice for order %s: %w", order.ID, err)
	}
	return buffer.Bytes(), nil
}

// SaveToFile renders the invoice and writes it under dir as
// invoice-<orderID>.html, creating the directory if needed. Returns the
// written path.
func (s *InvoiceService) SaveToFile(order *models.Order, dir string) (string, error) {
	document, err := s.Render(order)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create invoice directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("invoice-%s.html", order.ID))
	if err := os.WriteFile(path, document, 0o644); err != nil {
		return "", fmt.Errorf("failed to write invoice file: %w", err)
	}
	return path, nil
}
