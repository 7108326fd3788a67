package pages

import (
	"context"
	"io"

	"acacia-lounge/internal/models"

	"github.com/a-h/templ"
)

var menuTmpl = newPageTemplate("menu", `
{{define "title"}}Menu{{end}}
{{define "content"}}
    <h1>Our Menu</h1>
    <div class="filter-bar">
        <a href="/menu" class="filter-btn{{if not .ActiveCategory}} active{{end}}">All</a>
        {{$active := .ActiveCategory}}
        {{range .Categories}}
        <a href="/menu?category={{.}}" class="filter-btn{{if eq . $active}} active{{end}}">{{.}}</a>
        {{end}}
    </div>
    <div class="drink-grid" id="drinkContainer">
        {{range .Drinks}}
        <div class="drink-card">
            <div class="drink-img">
                {{if .Image}}<img src="/static/{{.Image}}" alt="{{.Name}}" loading="lazy">{{else}}<i class="fas fa-{{.Icon}}"></i>{{end}}
            </div>
            <div class="drink-content">
                <h3>{{.Name}}</h3>
                <div class="drink-price">Ksh {{.Price}}</div>
                <p class="drink-desc">{{.Description}}</p>
                <button class="add-to-cart" hx-post="/cart/add" hx-vals='{"drink_id": "{{.ID}}"}' hx-target="#addConfirmation" hx-swap="innerHTML">Add to Cart</button>
            </div>
        </div>
        {{else}}
        <p class="empty-category">No drinks in this category yet.</p>
        {{end}}
    </div>
    <div id="addConfirmation"></div>
{{end}}
`)

type menuData struct {
	CartCount      int
	SearchQuery    string
	Categories     []models.Category
	ActiveCategory models.Category
	Drinks         []*models.Drink
}

// MenuPage renders the drinks menu, optionally filtered to one category
func MenuPage(drinks []*models.Drink, activeCategory models.Category, cartCount int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return menuTmpl.Execute(w, menuData{
			CartCount:      cartCount,
			Categories:     models.Categories,
			ActiveCategory: activeCategory,
			Drinks:         drinks,
		})
	})
}
