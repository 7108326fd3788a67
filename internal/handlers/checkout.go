package handlers

import (
	"net/http"

	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/models"
	"acacia-lounge/internal/pricing"
	"acacia-lounge/internal/services"
	"acacia-lounge/web/templates/pages"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// CheckoutHandler handles order submission, the confirmation page and the
// invoice document
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	invoiceService  services.InvoiceRenderer
	catalog         catalog.Provider
	store           sessions.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	checkoutService *services.CheckoutService,
	invoiceService services.InvoiceRenderer,
	catalog catalog.Provider,
	store sessions.Store,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		invoiceService:  invoiceService,
		catalog:         catalog,
		store:           store,
	}
}

// ProcessCheckout validates the checkout form and submits the order. On
// validation failure the cart page is re-rendered with the errors and the
// customer's input; the cart is cleared only after a successful submission.
func (h *CheckoutHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	session, err := h.store.Get(r, sessionName)
	if err != nil {
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	req := &services.CheckoutRequest{
		ClientName:      r.FormValue("client_name"),
		ClientID:        r.FormValue("client_id"),
		ClientPhone:     r.FormValue("client_phone"),
		DeliveryAddress: r.FormValue("delivery_address"),
		SpecialMessage:  r.FormValue("special_message"),
		PaymentMethod:   models.PaymentMethod(r.FormValue("payment_method")),
		SubMethod:       models.PaymentSubMethod(r.FormValue("sub_method")),
		PaymentPhone:    r.FormValue("payment_phone"),
		MpesaCode:       r.FormValue("mpesa_code"),
	}

	cartStore := newCartStore(session, h.catalog)
	snapshot := cartStore.Snapshot()

	order, fieldErrors, err := h.checkoutService.ProcessCheckout(req, snapshot)
	if len(fieldErrors) > 0 {
		h.renderCheckoutErrors(w, r, snapshot, formData(r), fieldErrors)
		return
	}
	if err != nil {
		// Submission failed; cart and form survive so the customer can retry
		errors := map[string][]string{
			"general": {"We could not submit your order. Please check your connection and try again."},
		}
		h.renderCheckoutErrors(w, r, snapshot, formData(r), errors)
		return
	}

	if err := saveLastOrder(session, order); err != nil {
		http.Error(w, "Failed to save order", http.StatusInternalServerError)
		return
	}

	cartStore.Clear()
	if err := session.Save(r, w); err != nil {
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	handleRedirect(w, r, "/orders/"+order.ID+"/confirmation", http.StatusSeeOther)
}

// Confirmation displays the post-checkout summary for the customer's most
// recent order
func (h *CheckoutHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orderFromSession(w, r)
	if !ok {
		return
	}

	component := pages.ConfirmationPage(order, pricing.FeeNotice(order.TotalQuantity))
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render confirmation page", http.StatusInternalServerError)
	}
}

// Invoice serves the printable invoice document for the customer's most
// recent order
func (h *CheckoutHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orderFromSession(w, r)
	if !ok {
		return
	}

	document, err := h.invoiceService.Render(order)
	if err != nil {
		http.Error(w, "Failed to render invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(document)
}

// orderFromSession loads the customer's last order and checks it matches
// the id route parameter. Orders live only in the customer's own session,
// so there is nothing to look up for anyone else.
func (h *CheckoutHandler) orderFromSession(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		http.Error(w, "Session error", http.StatusInternalServerError)
		return nil, false
	}

	order, ok := loadLastOrder(session)
	if !ok || order.ID != chi.URLParam(r, "id") {
		http.Error(w, "Order not found", http.StatusNotFound)
		return nil, false
	}
	return order, true
}

// renderCheckoutErrors re-renders the cart page with validation errors and
// the customer's input preserved
func (h *CheckoutHandler) renderCheckoutErrors(w http.ResponseWriter, r *http.Request, cart *models.Cart, formData map[string]string, errors map[string][]string) {
	data := buildCartData(cart, formData, errors)

	w.WriteHeader(http.StatusUnprocessableEntity)
	component := pages.CartPage(data)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render cart page", http.StatusInternalServerError)
	}
}

// formData captures the submitted form values for sticky re-rendering
func formData(r *http.Request) map[string]string {
	data := make(map[string]string)
	for key := range r.PostForm {
		data[key] = r.PostForm.Get(key)
	}
	return data
}
