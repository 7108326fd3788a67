package pages

import (
	"context"
	"io"

	"acacia-lounge/internal/models"

	"github.com/a-h/templ"
)

var confirmationTmpl = newPageTemplate("confirmation", `
{{define "title"}}Order Confirmed{{end}}
{{define "content"}}
    <section class="confirmation">
        <h1><i class="fas fa-check-circle"></i> Order placed successfully!</h1>
        <p>Your order has been submitted to Acacia Lounge.</p>
        <div class="confirmation-summary">
            <div><strong>Order ID:</strong> {{.Order.ID}}</div>
            <div><strong>Total Amount:</strong> Ksh {{ksh .Order.Total}}</div>
            <div><strong>Delivery Fee:</strong> Ksh {{ksh .Order.DeliveryFee}}</div>
            <div><strong>Payment:</strong> {{.Order.PaymentProvider}}</div>
        </div>
        {{if .Notice}}<p class="delivery-notice-text">{{.Notice}}</p>{{end}}
        <p>Thank you for your order. We'll be in touch!</p>
        <div class="confirmation-actions">
            <a href="/orders/{{.Order.ID}}/invoice" target="_blank" class="btn btn-primary"><i class="fas fa-file-invoice"></i> View Invoice</a>
            <a href="/menu" class="btn">Back to Menu</a>
        </div>
    </section>
{{end}}
`)

type confirmationData struct {
	CartCount   int
	SearchQuery string
	Order       *models.Order
	Notice      string
}

// ConfirmationPage renders the post-checkout order summary
func ConfirmationPage(order *models.Order, notice string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return confirmationTmpl.Execute(w, confirmationData{
			Order:  order,
			Notice: notice,
		})
	})
}
