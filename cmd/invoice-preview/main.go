// Command invoice-preview renders a sample invoice to a file so the
// document layout can be checked in a browser without placing an order.
package main

import (
	"flag"
	"log"
	"time"

	"acacia-lounge/internal/cart"
	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/models"
	"acacia-lounge/internal/pricing"
	"acacia-lounge/internal/services"
)

func main() {
	outDir := flag.String("out", "invoices", "directory to write the invoice into")
	flag.Parse()

	menu := catalog.NewDefaultProvider()

	// Build a representative cart through the same store the web app uses
	store := cart.NewStore(cart.NewMapKV(), menu)
	store.AddItem(1)
	store.AddItem(1)
	store.AddItem(31)
	store.AddItem(61)

	snapshot := store.Snapshot()
	totalQuantity := pricing.TotalQuantity(snapshot)
	subtotal := pricing.Subtotal(snapshot)
	deliveryFee := pricing.DeliveryFee(totalQuantity)

	now := time.Now()
	order := &models.Order{
		ID:              models.NewOrderID(now),
		ClientName:      "Jane Wanjiku",
		ClientPhone:     "254 712 345 678",
		DeliveryAddress: "Apartment 4B, Clay City, Nairobi",
		SpecialMessage:  "Call on arrival",
		Items:           snapshot.Items,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           subtotal + deliveryFee,
		TotalQuantity:   totalQuantity,
		PaymentMethod:   models.PaymentMpesa,
		PaymentProvider: "M-Pesa (Code/STK)",
		PaymentDetails:  "STK Push requested to: 254 712 345 678",
		Timestamp:       now,
	}

	if err := order.Validate(); err != nil {
		log.Fatal("Sample order is invalid:", err)
	}

	path, err := services.NewInvoiceService().SaveToFile(order, *outDir)
	if err != nil {
		log.Fatal("Failed to write invoice:", err)
	}
	log.Printf("Invoice written to %s", path)
}
