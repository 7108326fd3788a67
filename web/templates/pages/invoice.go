package pages

import (
	"context"
	"html/template"
	"io"

	"acacia-lounge/internal/models"

	"github.com/a-h/templ"
)

// invoiceHTML is a fully self-contained printable document: inline styles,
// no dependency on the site layout. The PDF export library is loaded
// best-effort; printing and viewing must work without it.
const invoiceHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Invoice - Order {{.Order.ID}}</title>
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
    <style>
        :root {
            --primary: #8B4513;
            --secondary: #D4AF37;
            --accent: #2E8B57;
            --dark: #1a1a1a;
            --light: #f5f5f5;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background-color: #f5f5f5;
            color: #333;
            line-height: 1.5;
        }
        .invoice-wrapper { max-width: 100%; margin: 0 auto; background: #fff; min-height: 100vh; }
        .invoice-box { padding: 30px; font-size: 14px; line-height: 1.6; }
        .invoice-header {
            display: flex;
            justify-content: space-between;
            align-items: flex-start;
            margin-bottom: 30px;
            padding-bottom: 20px;
            border-bottom: 3px solid var(--primary);
        }
        .logo-title { font-size: 32px; font-weight: 700; color: var(--primary); }
        .invoice-header .details { text-align: right; font-size: 16px; }
        .invoice-header .details strong { color: var(--dark); font-size: 18px; display: block; margin-bottom: 5px; }
        .info-section {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            padding: 20px 0;
            border-bottom: 1px dashed #ddd;
        }
        .client-info, .business-info { width: 48%; }
        .business-info { text-align: right; }
        .info-section h3 {
            color: var(--accent);
            margin-bottom: 12px;
            font-size: 18px;
            border-left: 4px solid var(--accent);
            padding-left: 10px;
        }
        .business-info h3 { border-left: none; border-right: 4px solid var(--accent); padding-left: 0; padding-right: 10px; }
        .table-container { width: 100%; overflow-x: auto; margin: 20px 0; border: 1px solid #e0e0e0; border-radius: 8px; }
        .item-table { width: 100%; border-collapse: collapse; min-width: 600px; }
        .item-table th, .item-table td { padding: 14px 12px; border-bottom: 1px solid #eee; text-align: left; }
        .item-table th {
            background-color: var(--primary);
            color: white;
            font-weight: 600;
            text-transform: uppercase;
            font-size: 13px;
        }
        .item-table td:first-child { width: 8%; text-align: center; }
        .totals-box { width: 100%; max-width: 400px; margin-left: auto; margin-top: 25px; border: 1px solid #ddd; border-radius: 8px; }
        .totals-row { display: flex; justify-content: space-between; padding: 14px 20px; border-bottom: 1px solid #eee; }
        .totals-row:last-child {
            border-bottom: none;
            background-color: #f7f3e8;
            font-weight: 700;
            font-size: 1.2em;
        }
        .invoice-footer { text-align: center; margin-top: 40px; padding-top: 25px; border-top: 1px solid #ddd; font-size: 13px; color: #666; }
        .payment-info { margin: 15px 0; padding: 15px; background: var(--light); border-radius: 6px; display: inline-block; text-align: left; }
        .text-right { text-align: right; }
        .text-center { text-align: center; }
        .action-bar {
            display: flex;
            justify-content: center;
            gap: 12px;
            padding: 20px;
            background-color: #f8f8f8;
            border-bottom: 1px solid #eee;
            position: sticky;
            top: 0;
            flex-wrap: wrap;
        }
        .action-bar button {
            padding: 14px 20px;
            border: none;
            border-radius: 6px;
            cursor: pointer;
            font-weight: 600;
            color: white;
            font-size: 14px;
            min-width: 160px;
        }
        .action-bar .print-btn { background-color: #3498db; }
        .action-bar .download-btn { background-color: var(--accent); }
        .action-bar .share-btn { background-color: #f39c12; }
        .action-bar .close-btn { background-color: #7f8c8d; }
        @media (max-width: 768px) {
            .invoice-box { padding: 20px 15px; }
            .invoice-header, .info-section { flex-direction: column; gap: 15px; }
            .client-info, .business-info { width: 100%; text-align: left; }
            .totals-box { max-width: none; }
        }
        @media print {
            .action-bar { display: none; }
            body { background: white; }
            .invoice-box { padding: 0; font-size: 12px; }
            .table-container { overflow-x: visible; border: 1px solid #ddd; }
            .item-table { min-width: 100%; }
        }
    </style>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/html2pdf.js/0.10.1/html2pdf.bundle.min.js" async></script>
    <script>
        function printInvoice() {
            window.print();
        }
        function downloadInvoice() {
            // The PDF library is an optional enhancement; fall back to the
            // print dialog when it did not load
            if (typeof html2pdf !== 'undefined') {
                html2pdf(document.querySelector('.invoice-wrapper'), { filename: 'invoice-{{.Order.ID}}.pdf' });
            } else {
                alert('Please select "Save as PDF" as your destination in the print dialog to download your invoice.');
                window.print();
            }
        }
        function shareInvoice() {
            if (navigator.share) {
                navigator.share({
                    title: 'Acacia Lounge Order Invoice',
                    text: 'My order invoice from Acacia Lounge.',
                    url: window.location.href
                }).catch(function (error) { console.error('Error sharing:', error); });
            } else {
                alert('Your browser does not support sharing. Please save the invoice as a PDF and share manually.');
            }
        }
        function closeInvoice() {
            window.close();
        }
        document.addEventListener('keydown', function (e) {
            if (e.key === 'Escape') {
                closeInvoice();
            }
        });
    </script>
</head>
<body>
    <div class="action-bar">
        <button class="print-btn" onclick="printInvoice()"><i class="fas fa-print"></i> Print Invoice</button>
        <button class="download-btn" onclick="downloadInvoice()"><i class="fas fa-download"></i> Save as PDF</button>
        <button class="share-btn" onclick="shareInvoice()"><i class="fas fa-share-alt"></i> Share</button>
        <button class="close-btn" onclick="closeInvoice()"><i class="fas fa-times"></i> Close</button>
    </div>
    <div class="invoice-wrapper">
        <div class="invoice-box">
            <div class="invoice-header">
                <div class="logo">
                    <div class="logo-title">Acacia <span style="color: var(--secondary);">Lounge</span></div>
                    <div style="font-size: 14px; color: #666; margin-top: 5px;">Premium Bar Experience</div>
                </div>
                <div class="details">
                    <strong>INVOICE</strong>
                    <div>Order #: {{.Order.ID}}</div>
                    <div>Date: {{.Date}}</div>
                </div>
            </div>
            <div class="info-section">
                <div class="client-info">
                    <h3>Bill To:</h3>
                    <div><strong>{{.Order.ClientName}}</strong></div>
                    <div>Phone: {{.Order.ClientPhone}}</div>
                    <div>Address: {{.Order.DeliveryAddress}}</div>
                    {{if .Order.ClientID}}<div>ID Number: {{.Order.ClientID}}</div>{{end}}
                </div>
                <div class="business-info">
                    <h3>From:</h3>
                    <div><strong>Acacia Lounge</strong></div>
                    <div>Clay City, Nairobi</div>
                    <div>Phone: 0721555163</div>
                    <div>Email: info@acacialounge.co.ke</div>
                </div>
            </div>
            <div class="table-container">
                <table class="item-table">
                    <thead>
                        <tr>
                            <th>#</th>
                            <th>Item Description</th>
                            <th class="text-center">Quantity</th>
                            <th class="text-right">Unit Price</th>
                            <th class="text-right">Subtotal</th>
                        </tr>
                    </thead>
                    <tbody>
                        {{range $i, $item := .Order.Items}}
                        <tr class="item-row">
                            <td>{{inc $i}}</td>
                            <td class="item-name">{{$item.Name}}</td>
                            <td class="text-center">{{$item.Quantity}}</td>
                            <td class="text-right">Ksh {{ksh $item.Price}}</td>
                            <td class="text-right">Ksh {{ksh (mul $item.Price $item.Quantity)}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            <div class="totals-box">
                <div class="totals-row"><span>Subtotal:</span> <span>Ksh {{ksh .Order.Subtotal}}</span></div>
                <div class="totals-row"><span>Delivery Fee:</span> <span>Ksh {{ksh .Order.DeliveryFee}}</span></div>
                <div class="totals-row"><span>Total Amount:</span> <span>Ksh {{ksh .Order.Total}}</span></div>
            </div>
            <div class="invoice-footer">
                <div class="payment-info">
                    <div><strong>Payment Method:</strong> {{.Order.PaymentProvider}}</div>
                    <div><strong>Payment Details:</strong> {{.Order.PaymentDetails}}</div>
                </div>
                <div style="margin: 15px 0;">
                    <strong>Special Instructions:</strong> {{if .Order.SpecialMessage}}{{.Order.SpecialMessage}}{{else}}None provided{{end}}
                </div>
                <div style="margin-bottom: 15px;">
                    Total Items: {{.Order.TotalQuantity}} | Order Value: Ksh {{ksh .Order.Total}}
                </div>
                <div style="border-top: 1px solid #eee; padding-top: 15px;">
                    <div>&copy; {{.Year}} Acacia Lounge. All Rights Reserved.</div>
                    <div style="margin-top: 8px; font-weight: 600;">Thank you for your business!</div>
                </div>
            </div>
        </div>
    </div>
</body>
</html>
`

var invoiceTmpl = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(invoiceHTML))

type invoiceData struct {
	Order *models.Order
	Date  string
	Year  int
}

// InvoicePage renders the standalone invoice document for a completed
// order. Everything shown, including the footer year, comes from the order
// itself so the document is reproducible.
func InvoicePage(order *models.Order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return invoiceTmpl.Execute(w, invoiceData{
			Order: order,
			Date:  order.Timestamp.Format("2 Jan 2006, 03:04 PM"),
			Year:  order.Timestamp.Year(),
		})
	})
}
