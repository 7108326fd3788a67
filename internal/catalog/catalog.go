package catalog

import (
	"strings"

	"acacia-lounge/internal/models"
)

// Provider supplies read-only access to the drinks menu. It is injected into
// the cart store and handlers rather than looked up ambiently.
type Provider interface {
	GetByID(id int) (*models.Drink, bool)
	GetAll() []*models.Drink
	GetByCategory(category models.Category) []*models.Drink
	Search(term string) []*models.Drink
}

// StaticProvider serves the fixed menu table. Drinks are returned in the
// order they appear in the table.
type StaticProvider struct {
	drinks []*models.Drink
	byID   map[int]*models.Drink
}

// NewStaticProvider creates a provider over the given drinks list
func NewStaticProvider(drinks []*models.Drink) *StaticProvider {
	byID := make(map[int]*models.Drink, len(drinks))
	for _, d := range drinks {
		byID[d.ID] = d
	}
	return &StaticProvider{drinks: drinks, byID: byID}
}

// NewDefaultProvider creates a provider over the built-in menu
func NewDefaultProvider() *StaticProvider {
	return NewStaticProvider(allDrinks)
}

// GetByID looks up a drink by its menu ID
func (p *StaticProvider) GetByID(id int) (*models.Drink, bool) {
	d, ok := p.byID[id]
	return d, ok
}

// GetAll returns every drink on the menu in fixed order
func (p *StaticProvider) GetAll() []*models.Drink {
	result := make([]*models.Drink, len(p.drinks))
	copy(result, p.drinks)
	return result
}

// GetByCategory returns the drinks in the given category, in menu order
func (p *StaticProvider) GetByCategory(category models.Category) []*models.Drink {
	var result []*models.Drink
	for _, d := range p.drinks {
		if d.Category == category {
			result = append(result, d)
		}
	}
	return result
}

// Search returns drinks whose name, category or description contains the
// given term, case-insensitively
func (p *StaticProvider) Search(term string) []*models.Drink {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var result []*models.Drink
	for _, d := range p.drinks {
		haystack := strings.ToLower(d.Name + " " + string(d.Category) + " " + d.Description)
		if strings.Contains(haystack, term) {
			result = append(result, d)
		}
	}
	return result
}
