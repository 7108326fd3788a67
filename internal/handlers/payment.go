package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"acacia-lounge/internal/models"
	"acacia-lounge/internal/services"

	"github.com/go-chi/chi/v5"
)

// PaymentHandler exposes the simulated mobile-money flows as a small JSON
// API the cart page polls while the customer authorizes payment
type PaymentHandler struct {
	mpesa  services.PaymentVerifier
	airtel services.PaymentVerifier
	status services.PaymentStatusChecker
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(mpesa, airtel services.PaymentVerifier, status services.PaymentStatusChecker) *PaymentHandler {
	return &PaymentHandler{
		mpesa:  mpesa,
		airtel: airtel,
		status: status,
	}
}

// InitiatePush triggers a simulated payment prompt on the customer's phone
func (h *PaymentHandler) InitiatePush(w http.ResponseWriter, r *http.Request) {
	verifier, ok := h.verifierFor(chi.URLParam(r, "provider"))
	if !ok {
		http.Error(w, "Unknown payment provider", http.StatusNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	amount, err := strconv.Atoi(r.FormValue("amount"))
	if err != nil || amount <= 0 {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	verdict := verifier.InitiatePush(r.FormValue("phone"), amount, r.FormValue("reference"))
	writeVerdict(w, verdict)
}

// VerifyCode checks a manually entered M-Pesa transaction code
func (h *PaymentHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	amount, err := strconv.Atoi(r.FormValue("amount"))
	if err != nil || amount <= 0 {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	verdict := h.mpesa.VerifyCode(r.FormValue("code"), amount, r.FormValue("reference"))
	writeVerdict(w, verdict)
}

// CheckStatus polls a previously initiated payment
func (h *PaymentHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	status, verdict := h.status.CheckStatus(chi.URLParam(r, "transactionID"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"verdict": verdict,
	})
}

func (h *PaymentHandler) verifierFor(provider string) (services.PaymentVerifier, bool) {
	switch models.PaymentMethod(provider) {
	case models.PaymentMpesa:
		return h.mpesa, true
	case models.PaymentAirtel:
		return h.airtel, true
	default:
		return nil, false
	}
}

func writeVerdict(w http.ResponseWriter, verdict services.PaymentVerdict) {
	w.Header().Set("Content-Type", "application/json")
	if !verdict.Success {
		w.WriteHeader(http.StatusBadGateway)
	}
	json.NewEncoder(w).Encode(verdict)
}
