// Package cart owns the customer's shopping cart. The persisted blob in the
// key-value store is the single source of truth: every operation re-reads
// it, mutates, and writes it back in one Set, so no in-memory copy can
// drift from the store.
package cart

import (
	"encoding/json"

	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/models"
)

// cartKey is the well-known key the serialized cart lives under
const cartKey = "cart"

// Store provides cart operations over a key-value store, with the menu
// injected for item lookups
type Store struct {
	kv      KV
	catalog catalog.Provider
}

// NewStore creates a cart store over the given KV store and menu
func NewStore(kv KV, catalog catalog.Provider) *Store {
	return &Store{kv: kv, catalog: catalog}
}

// AddItem adds one unit of the given drink to the cart. Unknown drink IDs
// are ignored. Name and price are copied from the menu at add-time.
func (s *Store) AddItem(drinkID int) {
	drink, ok := s.catalog.GetByID(drinkID)
	if !ok {
		return
	}

	cart := s.load()
	if i := cart.Find(drinkID); i >= 0 {
		cart.Items[i].Quantity++
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			DrinkID:  drink.ID,
			Name:     drink.Name,
			Price:    drink.Price,
			Quantity: 1,
		})
	}
	s.save(cart)
}

// UpdateQuantity adjusts the quantity of the given drink by delta. A line
// whose quantity drops to zero or below is removed. Drinks not in the cart
// are ignored.
func (s *Store) UpdateQuantity(drinkID, delta int) {
	cart := s.load()
	i := cart.Find(drinkID)
	if i < 0 {
		return
	}

	cart.Items[i].Quantity += delta
	if cart.Items[i].Quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}
	s.save(cart)
}

// RemoveItem deletes the line for the given drink. Removing a drink that is
// not in the cart is a no-op.
func (s *Store) RemoveItem(drinkID int) {
	cart := s.load()
	i := cart.Find(drinkID)
	if i < 0 {
		return
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	s.save(cart)
}

// Clear removes the persisted cart entirely
func (s *Store) Clear() {
	s.kv.Delete(cartKey)
}

// Snapshot returns the current cart. The returned cart is a copy; mutating
// it does not affect the store.
func (s *Store) Snapshot() *models.Cart {
	return s.load()
}

// load reads the persisted cart. An absent or unreadable blob is treated as
// an empty cart, matching first-visit behavior.
func (s *Store) load() *models.Cart {
	blob, ok := s.kv.Get(cartKey)
	if !ok {
		return &models.Cart{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return &models.Cart{}
	}
	return &models.Cart{Items: items}
}

// save re-serializes the full cart and overwrites the blob in one Set
func (s *Store) save(cart *models.Cart) {
	blob, err := json.Marshal(cart.Items)
	if err != nil {
		return
	}
	s.kv.Set(cartKey, string(blob))
}
