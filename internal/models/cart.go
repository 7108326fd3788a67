package models

// Cart represents a customer's shopping cart
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem represents a single line in the shopping cart. Name and price are
// copied from the catalog at add-time so later menu price changes do not
// affect items already in the cart.
type CartItem struct {
	DrinkID  int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"` // Unit price in whole Ksh
	Quantity int    `json:"quantity"`
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the index of the line for the given drink ID, or -1 if the
// drink is not in the cart
func (c *Cart) Find(drinkID int) int {
	for i := range c.Items {
		if c.Items[i].DrinkID == drinkID {
			return i
		}
	}
	return -1
}
