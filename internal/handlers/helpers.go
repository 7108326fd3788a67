package handlers

import (
	"encoding/json"
	"net/http"

	"acacia-lounge/internal/cart"
	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/middleware"
	"acacia-lounge/internal/models"
	"acacia-lounge/internal/pricing"
	"acacia-lounge/web/templates/pages"

	"github.com/gorilla/sessions"
)

const (
	// sessionName is the cookie session all handlers share
	sessionName = "session"
	// lastOrderKey stores the most recent completed order as JSON, for the
	// confirmation and invoice pages
	lastOrderKey = "last_order"
)

// newCartStore builds a cart store over the request's session
func newCartStore(session *sessions.Session, provider catalog.Provider) *cart.Store {
	return cart.NewStore(cart.NewSessionKV(session), provider)
}

// cartQuantity returns the total drink count in the session's cart
func cartQuantity(session *sessions.Session, provider catalog.Provider) int {
	return pricing.TotalQuantity(newCartStore(session, provider).Snapshot())
}

// buildCartData assembles the render data for the cart page and fragments
func buildCartData(snapshot *models.Cart, formData map[string]string, errors map[string][]string) pages.CartData {
	totalQuantity := pricing.TotalQuantity(snapshot)
	subtotal := pricing.Subtotal(snapshot)
	deliveryFee := pricing.DeliveryFee(totalQuantity)

	return pages.CartData{
		CartCount:   totalQuantity,
		Cart:        snapshot,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal + deliveryFee,
		ItemsCount:  pages.ItemsCountLabel(totalQuantity),
		Notice:      pricing.FeeNotice(totalQuantity),
		ReducedFee:  totalQuantity >= 5,
		FormData:    formData,
		Errors:      errors,
	}
}

// saveLastOrder stores the completed order in the session for the
// confirmation and invoice pages
func saveLastOrder(session *sessions.Session, order *models.Order) error {
	blob, err := json.Marshal(order)
	if err != nil {
		return err
	}
	session.Values[lastOrderKey] = string(blob)
	return nil
}

// loadLastOrder reads the most recent completed order from the session
func loadLastOrder(session *sessions.Session) (*models.Order, bool) {
	raw, ok := session.Values[lastOrderKey]
	if !ok {
		return nil, false
	}
	blob, ok := raw.(string)
	if !ok {
		return nil, false
	}

	var order models.Order
	if err := json.Unmarshal([]byte(blob), &order); err != nil {
		return nil, false
	}
	return &order, true
}

// handleRedirect redirects appropriately for HTMX vs regular requests
func handleRedirect(w http.ResponseWriter, r *http.Request, url string, statusCode int) {
	if middleware.IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
	} else {
		http.Redirect(w, r, url, statusCode)
	}
}
