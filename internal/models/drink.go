package models

// Category represents a drink category on the menu
type Category string

const (
	CategoryCocktails Category = "cocktails"
	CategoryBeers     Category = "beers"
	CategoryWines     Category = "wines"
	CategorySpirits   Category = "spirits"
	CategorySodas     Category = "sodas"
	CategoryMocktails Category = "mocktails"
)

// Categories lists all menu categories in display order
var Categories = []Category{
	CategoryCocktails,
	CategoryBeers,
	CategoryWines,
	CategorySpirits,
	CategorySodas,
	CategoryMocktails,
}

// IsValid checks whether the category is one of the known menu categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryCocktails, CategoryBeers, CategoryWines, CategorySpirits, CategorySodas, CategoryMocktails:
		return true
	}
	return false
}

// Drink represents a purchasable item on the menu
type Drink struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int      `json:"price"` // Price in whole Ksh
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
}

// Icon returns the font-awesome icon name for the drink's category
func (d *Drink) Icon() string {
	switch d.Category {
	case CategoryCocktails:
		return "glass-martini-alt"
	case CategoryBeers:
		return "beer"
	case CategoryWines:
		return "wine-glass-alt"
	case CategorySpirits:
		return "glass-whiskey"
	case CategorySodas:
		return "glass-cheers"
	case CategoryMocktails:
		return "cocktail"
	default:
		return "glass-martini"
	}
}
