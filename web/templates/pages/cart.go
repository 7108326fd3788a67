package pages

import (
	"context"
	"html/template"
	"io"

	"acacia-lounge/internal/models"

	"github.com/a-h/templ"
)

// cartItemsHTML is the cart lines + totals fragment. It is swapped in
// place by HTMX after every cart mutation, so it must stay self-contained.
const cartItemsHTML = `{{define "cartItems"}}
    <div class="cart-items-container" id="cartItems">
        {{if .Cart.IsEmpty}}
        <div class="empty-cart">
            <i class="fas fa-shopping-cart"></i>
            <p>Your cart is empty</p>
            <a href="/menu" class="btn btn-primary">Browse Our Menu</a>
        </div>
        {{else}}
        {{range .Cart.Items}}
        <div class="cart-item">
            <div class="cart-item-details">
                <h4>{{.Name}}</h4>
                <div class="cart-item-price">Ksh {{.Price}}</div>
                <div class="cart-item-quantity">
                    <button class="quantity-btn minus" hx-post="/cart/update" hx-vals='{"drink_id": "{{.DrinkID}}", "delta": "-1"}' hx-target="#cartSection" hx-swap="innerHTML">-</button>
                    <input type="text" class="quantity-input" value="{{.Quantity}}" readonly>
                    <button class="quantity-btn plus" hx-post="/cart/update" hx-vals='{"drink_id": "{{.DrinkID}}", "delta": "1"}' hx-target="#cartSection" hx-swap="innerHTML">+</button>
                </div>
            </div>
            <button class="remove-item" hx-post="/cart/remove" hx-vals='{"drink_id": "{{.DrinkID}}"}' hx-target="#cartSection" hx-swap="innerHTML">
                <i class="fas fa-trash"></i>
            </button>
        </div>
        {{end}}
        {{end}}
    </div>
    {{if .Notice}}
    <div class="delivery-notice">
        {{if .ReducedFee}}
        <div class="delivery-success"><i class="fas fa-check-circle"></i> <span>{{.Notice}}</span></div>
        {{else}}
        <div class="delivery-warning"><i class="fas fa-exclamation-triangle"></i> <span>{{.Notice}}</span></div>
        {{end}}
    </div>
    {{end}}
    <div class="cart-summary">
        <div class="summary-row"><span>Subtotal:</span> <span id="subtotal">Ksh {{ksh .Subtotal}}</span></div>
        <div class="summary-row"><span>Delivery Fee:</span> <span id="deliveryFee">Ksh {{ksh .DeliveryFee}}</span></div>
        <div class="summary-row total"><span>Total:</span> <span id="total">Ksh {{ksh .Total}}</span></div>
    </div>
{{end}}`

var cartTmpl = func() *template.Template {
	t := newPageTemplate("cart", `
{{define "title"}}Cart{{end}}
{{define "content"}}
    <h1>Your Cart <span class="items-count">{{.ItemsCount}}</span></h1>
    <div id="cartSection">
        {{template "cartItems" .}}
    </div>
    <button id="clearCart" class="btn" hx-post="/cart/clear" hx-target="#cartSection" hx-swap="innerHTML">Clear Cart</button>

    <section class="checkout-section">
        <h2>Checkout</h2>
        {{if fieldErrors .Errors "general"}}
        <div class="form-errors">
            {{range fieldErrors .Errors "general"}}<p class="error">{{.}}</p>{{end}}
        </div>
        {{end}}
        <form id="checkoutForm" method="post" action="/checkout">
            <div class="form-group">
                <label for="clientName">Full Name</label>
                <input type="text" id="clientName" name="client_name" value="{{formValue .FormData "client_name" ""}}">
                {{range fieldErrors .Errors "client_name"}}<p class="error">{{.}}</p>{{end}}
            </div>
            <div class="form-group">
                <label for="clientId">ID Number (optional)</label>
                <input type="text" id="clientId" name="client_id" value="{{formValue .FormData "client_id" ""}}">
                {{range fieldErrors .Errors "client_id"}}<p class="error">{{.}}</p>{{end}}
            </div>
            <div class="form-group">
                <label for="clientPhone">Phone Number</label>
                <input type="tel" id="clientPhone" name="client_phone" placeholder="0712 345 678" value="{{formValue .FormData "client_phone" ""}}">
                {{range fieldErrors .Errors "client_phone"}}<p class="error">{{.}}</p>{{end}}
            </div>
            <div class="form-group">
                <label for="deliveryAddress">Delivery Address</label>
                <textarea id="deliveryAddress" name="delivery_address">{{formValue .FormData "delivery_address" ""}}</textarea>
                {{range fieldErrors .Errors "delivery_address"}}<p class="error">{{.}}</p>{{end}}
            </div>
            <div class="form-group">
                <label for="specialMessage">Special Instructions (optional)</label>
                <textarea id="specialMessage" name="special_message">{{formValue .FormData "special_message" ""}}</textarea>
            </div>

            <h3>Payment Method</h3>
            <div class="payment-options">
                <label class="payment-option">
                    <input type="radio" name="payment_method" value="mpesa" {{if ne (formValue .FormData "payment_method" "mpesa") "airtel"}}checked{{end}}> M-Pesa
                </label>
                <label class="payment-option">
                    <input type="radio" name="payment_method" value="airtel" {{if eq (formValue .FormData "payment_method" "mpesa") "airtel"}}checked{{end}}> Airtel Money
                </label>
                {{range fieldErrors .Errors "payment_method"}}<p class="error">{{.}}</p>{{end}}
            </div>
            <div class="payment-details" id="mpesaDetails">
                <div class="sub-options">
                    <label class="sub-option">
                        <input type="radio" name="sub_method" value="stk" {{if ne (formValue .FormData "sub_method" "stk") "code"}}checked{{end}}> STK Push
                    </label>
                    <label class="sub-option">
                        <input type="radio" name="sub_method" value="code" {{if eq (formValue .FormData "sub_method" "stk") "code"}}checked{{end}}> I have a transaction code
                    </label>
                </div>
                <div class="form-group payment-field" id="paymentPhoneField">
                    <label for="paymentPhone">Mobile Money Phone Number</label>
                    <input type="tel" id="paymentPhone" name="payment_phone" placeholder="0712 345 678" value="{{formValue .FormData "payment_phone" ""}}">
                    {{range fieldErrors .Errors "payment_phone"}}<p class="error">{{.}}</p>{{end}}
                </div>
                <div class="form-group payment-field" id="mpesaCodeField">
                    <label for="mpesaCode">M-Pesa Transaction Code</label>
                    <input type="text" id="mpesaCode" name="mpesa_code" placeholder="e.g. QGH7KL2M9P" value="{{formValue .FormData "mpesa_code" ""}}">
                    {{range fieldErrors .Errors "mpesa_code"}}<p class="error">{{.}}</p>{{end}}
                </div>
            </div>
            {{range fieldErrors .Errors "cart"}}<p class="error">{{.}}</p>{{end}}
            <button type="submit" id="checkoutBtn" class="btn btn-primary">
                <i class="fas fa-lock"></i> Complete Order &amp; Pay <span id="checkoutTotal">Ksh {{ksh .Total}}</span>
            </button>
        </form>
    </section>
{{end}}
`)
	return template.Must(t.Parse(cartItemsHTML))
}()

var cartItemsPartialTmpl = template.Must(
	template.Must(template.New("cartItemsPartial").Funcs(templateFuncs).Parse(cartItemsHTML)).
		Parse(`{{template "cartItems" .}}`))

// CartData carries everything the cart page and its fragments render
type CartData struct {
	CartCount   int
	SearchQuery string
	Cart        *models.Cart
	Subtotal    int
	DeliveryFee int
	Total       int
	ItemsCount  string
	Notice      string
	ReducedFee  bool
	FormData    map[string]string
	Errors      map[string][]string
}

// CartPage renders the full cart page with the checkout form
func CartPage(data CartData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return cartTmpl.Execute(w, data)
	})
}

// CartItemsPartial renders only the cart lines and totals, for HTMX swaps
func CartItemsPartial(data CartData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return cartItemsPartialTmpl.Execute(w, data)
	})
}
