package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"acacia-lounge/internal/catalog"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
)

func newTestCatalogHandler() *CatalogHandler {
	store := sessions.NewCookieStore([]byte("test-secret-key"))
	return NewCatalogHandler(catalog.NewDefaultProvider(), store)
}

func TestHome(t *testing.T) {
	handler := newTestCatalogHandler()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.Home(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acacia")
}

func TestMenu(t *testing.T) {
	handler := newTestCatalogHandler()

	req := httptest.NewRequest("GET", "/menu", nil)
	w := httptest.NewRecorder()
	handler.Menu(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Full menu shows drinks from several categories
	assert.Contains(t, w.Body.String(), "Tusker Lager")
	assert.Contains(t, w.Body.String(), "Nairobi Sunset")
}

func TestMenu_CategoryFilter(t *testing.T) {
	handler := newTestCatalogHandler()

	req := httptest.NewRequest("GET", "/menu?category=beers", nil)
	w := httptest.NewRecorder()
	handler.Menu(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tusker Lager")
	assert.NotContains(t, w.Body.String(), "Nairobi Sunset")
}

func TestMenu_UnknownCategoryShowsAll(t *testing.T) {
	handler := newTestCatalogHandler()

	req := httptest.NewRequest("GET", "/menu?category=smoothies", nil)
	w := httptest.NewRecorder()
	handler.Menu(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tusker Lager")
	assert.Contains(t, w.Body.String(), "Nairobi Sunset")
}

func TestSearch(t *testing.T) {
	handler := newTestCatalogHandler()

	req := httptest.NewRequest("GET", "/search?q=tusker", nil)
	w := httptest.NewRecorder()
	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tusker Lager")
	assert.NotContains(t, w.Body.String(), "Nairobi Sunset")
}

func TestSearch_NoResults(t *testing.T) {
	handler := newTestCatalogHandler()

	req := httptest.NewRequest("GET", "/search?q=zzzzzz", nil)
	w := httptest.NewRecorder()
	handler.Search(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No results found")
}
