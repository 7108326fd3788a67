package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkoutFixture wires the cart and checkout handlers onto a real router
// so the full order flow can be exercised over HTTP
type checkoutFixture struct {
	router    chi.Router
	submitter *services.MockOrderSubmitter
}

func newCheckoutFixture() *checkoutFixture {
	store := sessions.NewCookieStore([]byte("test-secret-key"))
	menu := catalog.NewDefaultProvider()
	submitter := services.NewMockOrderSubmitter()

	cartHandler := NewCartHandler(menu, store)
	checkoutHandler := NewCheckoutHandler(
		services.NewCheckoutService(submitter),
		services.NewInvoiceService(),
		menu,
		store,
	)

	r := chi.NewRouter()
	r.Get("/cart", cartHandler.ViewCart)
	r.Post("/cart/add", cartHandler.AddToCart)
	r.Post("/checkout", checkoutHandler.ProcessCheckout)
	r.Get("/orders/{id}/confirmation", checkoutHandler.Confirmation)
	r.Get("/orders/{id}/invoice", checkoutHandler.Invoice)

	return &checkoutFixture{router: r, submitter: submitter}
}

func (f *checkoutFixture) do(t *testing.T, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func validCheckoutForm() url.Values {
	return url.Values{
		"client_name":      {"Jane Wanjiku"},
		"client_phone":     {"0712345678"},
		"delivery_address": {"Clay City, Nairobi"},
		"payment_method":   {"mpesa"},
		"sub_method":       {"stk"},
		"payment_phone":    {"0712345678"},
	}
}

func TestProcessCheckout_FullFlow(t *testing.T) {
	f := newCheckoutFixture()

	// Fill the cart
	w := f.do(t, "POST", "/cart/add", url.Values{"drink_id": {"1"}}, nil)
	cookies := w.Result().Cookies()

	// Submit the order
	w = f.do(t, "POST", "/checkout", validCheckoutForm(), cookies)
	require.Equal(t, http.StatusSeeOther, w.Code, "body: %s", w.Body.String())
	require.Len(t, f.submitter.Submitted, 1)

	order := f.submitter.Submitted[0]
	location := w.Header().Get("Location")
	assert.Equal(t, "/orders/"+order.ID+"/confirmation", location)
	cookies = w.Result().Cookies()

	// The cart was cleared by the successful checkout
	cart := f.do(t, "GET", "/cart", nil, cookies)
	assert.Contains(t, cart.Body.String(), "Your cart is empty")

	// Confirmation page shows the order
	confirmation := f.do(t, "GET", location, nil, cookies)
	require.Equal(t, http.StatusOK, confirmation.Code)
	assert.Contains(t, confirmation.Body.String(), order.ID)

	// Invoice renders for the same order
	invoice := f.do(t, "GET", "/orders/"+order.ID+"/invoice", nil, cookies)
	require.Equal(t, http.StatusOK, invoice.Code)
	assert.Contains(t, invoice.Body.String(), order.ID)
	assert.Contains(t, invoice.Body.String(), "Jane Wanjiku")
}

func TestProcessCheckout_HTMXRedirect(t *testing.T) {
	f := newCheckoutFixture()

	w := f.do(t, "POST", "/cart/add", url.Values{"drink_id": {"1"}}, nil)
	cookies := w.Result().Cookies()

	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(validCheckoutForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("HX-Redirect"))
}

func TestProcessCheckout_ValidationErrors(t *testing.T) {
	f := newCheckoutFixture()

	w := f.do(t, "POST", "/cart/add", url.Values{"drink_id": {"1"}}, nil)
	cookies := w.Result().Cookies()

	form := validCheckoutForm()
	form.Set("client_name", "")
	form.Set("client_phone", "12345")

	w = f.do(t, "POST", "/checkout", form, cookies)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Name is required")
	assert.Contains(t, w.Body.String(), "valid Kenyan phone number")
	// The address the customer typed is still in the form
	assert.Contains(t, w.Body.String(), "Clay City, Nairobi")
	assert.Empty(t, f.submitter.Submitted, "invalid form must never submit")

	// The cart survives the failed attempt
	cart := f.do(t, "GET", "/cart", nil, cookies)
	assert.NotContains(t, cart.Body.String(), "Your cart is empty")
}

func TestProcessCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	w := f.do(t, "POST", "/checkout", validCheckoutForm(), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty")
	assert.Empty(t, f.submitter.Submitted)
}

func TestProcessCheckout_RelayFailureKeepsCart(t *testing.T) {
	f := newCheckoutFixture()
	f.submitter.ShouldFail = true

	w := f.do(t, "POST", "/cart/add", url.Values{"drink_id": {"1"}}, nil)
	cookies := w.Result().Cookies()

	w = f.do(t, "POST", "/checkout", validCheckoutForm(), cookies)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "could not submit your order")

	cart := f.do(t, "GET", "/cart", nil, cookies)
	assert.NotContains(t, cart.Body.String(), "Your cart is empty")
}

func TestConfirmation_UnknownOrder(t *testing.T) {
	f := newCheckoutFixture()

	w := f.do(t, "GET", "/orders/ORD-000000/confirmation", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoice_WrongOrderID(t *testing.T) {
	f := newCheckoutFixture()

	// Complete a checkout to have a last order in the session
	w := f.do(t, "POST", "/cart/add", url.Values{"drink_id": {"1"}}, nil)
	cookies := w.Result().Cookies()
	w = f.do(t, "POST", "/checkout", validCheckoutForm(), cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies = w.Result().Cookies()

	// Asking for a different order's invoice is a 404
	w = f.do(t, "GET", "/orders/ORD-000000/invoice", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
