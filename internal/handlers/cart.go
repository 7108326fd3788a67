package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/middleware"
	"acacia-lounge/internal/models"
	"acacia-lounge/web/templates/pages"

	"github.com/gorilla/sessions"
)

// CartHandler handles shopping cart requests
type CartHandler struct {
	catalog catalog.Provider
	store   sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalog catalog.Provider, store sessions.Store) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		store:   store,
	}
}

// AddToCart adds a drink to the shopping cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	drinkID, err := strconv.Atoi(r.FormValue("drink_id"))
	if err != nil {
		http.Error(w, "Invalid drink ID", http.StatusBadRequest)
		return
	}

	drink, ok := h.catalog.GetByID(drinkID)
	if !ok {
		http.Error(w, "Drink not found", http.StatusNotFound)
		return
	}

	session, err := h.store.Get(r, sessionName)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	newCartStore(session, h.catalog).AddItem(drinkID)

	if err := session.Save(r, w); err != nil {
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("HX-Trigger", "cart-updated")
	w.WriteHeader(http.StatusOK)

	// Inline confirmation for HTMX
	fmt.Fprintf(w, `
		<div class="add-confirmation">
			<i class="fas fa-check-circle"></i>
			<span>%s added to cart</span>
			<a href="/cart" class="view-cart-link">View Cart</a>
		</div>
	`, drink.Name)
}

// ViewCart displays the shopping cart with the checkout form
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	snapshot := newCartStore(session, h.catalog).Snapshot()
	data := buildCartData(snapshot, make(map[string]string), nil)

	component := pages.CartPage(data)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render cart page", http.StatusInternalServerError)
	}
}

// UpdateCartItem changes the quantity of a cart line by a delta. Dropping
// to zero or below removes the line.
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	drinkID, err := strconv.Atoi(r.FormValue("drink_id"))
	if err != nil {
		http.Error(w, "Invalid drink ID", http.StatusBadRequest)
		return
	}

	delta, err := strconv.Atoi(r.FormValue("delta"))
	if err != nil {
		http.Error(w, "Invalid quantity change", http.StatusBadRequest)
		return
	}

	session, err := h.store.Get(r, sessionName)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	cartStore := newCartStore(session, h.catalog)
	cartStore.UpdateQuantity(drinkID, delta)

	h.renderCartItems(w, r, session, cartStore.Snapshot())
}

// RemoveCartItem removes a drink from the cart entirely
func (h *CartHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	drinkID, err := strconv.Atoi(r.FormValue("drink_id"))
	if err != nil {
		http.Error(w, "Invalid drink ID", http.StatusBadRequest)
		return
	}

	session, err := h.store.Get(r, sessionName)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	cartStore := newCartStore(session, h.catalog)
	cartStore.RemoveItem(drinkID)

	h.renderCartItems(w, r, session, cartStore.Snapshot())
}

// ClearCart empties the shopping cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		h.handleSessionError(w, r, err)
		return
	}

	cartStore := newCartStore(session, h.catalog)
	cartStore.Clear()

	h.renderCartItems(w, r, session, cartStore.Snapshot())
}

// CartCount returns the header badge count as plain text
func (h *CartHandler) CartCount(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		fmt.Fprint(w, "0")
		return
	}
	fmt.Fprintf(w, "%d", cartQuantity(session, h.catalog))
}

// renderCartItems persists the session and writes the cart fragment that
// HTMX swaps into #cartSection
func (h *CartHandler) renderCartItems(w http.ResponseWriter, r *http.Request, session *sessions.Session, snapshot *models.Cart) {
	if err := session.Save(r, w); err != nil {
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("HX-Trigger", "cart-updated")

	data := buildCartData(snapshot, make(map[string]string), nil)
	component := pages.CartItemsPartial(data)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render cart", http.StatusInternalServerError)
	}
}

// handleSessionError handles session errors appropriately for HTMX vs regular requests
func (h *CartHandler) handleSessionError(w http.ResponseWriter, r *http.Request, err error) {
	if middleware.IsHTMXRequest(r) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<div class="error-banner">Session error. Please refresh the page and try again.</div>`))
	} else {
		http.Error(w, "Session error", http.StatusInternalServerError)
	}
}
