// Package pricing derives order totals from a cart snapshot. All functions
// are pure: totals are always recomputed from the cart and never cached.
package pricing

import (
	"fmt"

	"acacia-lounge/internal/models"
)

const (
	// Base delivery fee for orders under the reduced-fee threshold
	baseFee = 1000
	// Reduced delivery fee for orders of reducedFeeThreshold drinks or more
	reducedFee = 800
	// Orders of at least this many drinks qualify for the reduced fee
	reducedFeeThreshold = 5
	// A handling surcharge is added for every complete bulkBand drinks
	bulkBand      = 20
	bulkSurcharge = 500
)

// TotalQuantity returns the number of drinks in the cart across all lines
func TotalQuantity(cart *models.Cart) int {
	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the item total in Ksh before delivery
func Subtotal(cart *models.Cart) int {
	total := 0
	for _, item := range cart.Items {
		total += item.Price * item.Quantity
	}
	return total
}

// DeliveryFee computes the delivery fee for the given total drink quantity.
// Small orders pay the base fee; orders of five or more drinks pay the
// reduced fee; every complete twenty drinks adds a handling surcharge.
func DeliveryFee(totalQuantity int) int {
	fee := baseFee
	if totalQuantity >= reducedFeeThreshold {
		fee = reducedFee
	}
	return fee + (totalQuantity/bulkBand)*bulkSurcharge
}

// Total returns the grand total in Ksh: subtotal plus delivery fee
func Total(cart *models.Cart) int {
	return Subtotal(cart) + DeliveryFee(TotalQuantity(cart))
}

// FeeNotice returns the delivery-fee tier message shown in the cart and on
// the order confirmation. Empty when the cart is empty.
func FeeNotice(totalQuantity int) string {
	if totalQuantity <= 0 {
		return ""
	}
	if totalQuantity < reducedFeeThreshold {
		remaining := reducedFeeThreshold - totalQuantity
		plural := "s"
		if remaining == 1 {
			plural = ""
		}
		return fmt.Sprintf("Minimum order: 5 drinks for reduced delivery. Add %d more drink%s to save Ksh %d on delivery!",
			remaining, plural, baseFee-reducedFee)
	}
	return "You qualify for reduced delivery fee!"
}
