package handlers

import (
	"net/http"

	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/models"
	"acacia-lounge/web/templates/pages"

	"github.com/gorilla/sessions"
)

// CatalogHandler serves the public menu and search pages
type CatalogHandler struct {
	catalog catalog.Provider
	store   sessions.Store
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog catalog.Provider, store sessions.Store) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, store: store}
}

// Home displays the landing page
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	component := pages.HomePage(h.cartCount(r))
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render home page", http.StatusInternalServerError)
	}
}

// Menu displays the drinks menu, filtered by the optional category query
// parameter. Unknown categories fall back to the full menu.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))

	var drinks []*models.Drink
	if category.IsValid() {
		drinks = h.catalog.GetByCategory(category)
	} else {
		category = ""
		drinks = h.catalog.GetAll()
	}

	component := pages.MenuPage(drinks, category, h.cartCount(r))
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render menu page", http.StatusInternalServerError)
	}
}

// Search displays drinks matching the q query parameter
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := h.catalog.Search(query)

	component := pages.SearchPage(query, results, h.cartCount(r))
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render search page", http.StatusInternalServerError)
	}
}

// cartCount reads the cart size for the header badge. Session errors just
// show an empty badge; the menu must stay browsable.
func (h *CatalogHandler) cartCount(r *http.Request) int {
	session, err := h.store.Get(r, sessionName)
	if err != nil {
		return 0
	}
	return cartQuantity(session, h.catalog)
}
