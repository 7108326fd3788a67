package pages

import (
	"context"
	"io"

	"acacia-lounge/internal/models"

	"github.com/a-h/templ"
)

var homeTmpl = newPageTemplate("home", `
{{define "title"}}Home{{end}}
{{define "content"}}
    <section class="hero">
        <h1>Premium Drinks, Delivered</h1>
        <p>Cocktails, beers, wines, spirits and more, delivered across Nairobi.</p>
        <a href="/menu" class="btn btn-primary">Browse Our Menu</a>
    </section>
    <section class="categories">
        {{range .Categories}}
        <a href="/menu?category={{.}}" class="category-card">{{.}}</a>
        {{end}}
    </section>
{{end}}
`)

type homeData struct {
	CartCount   int
	SearchQuery string
	Categories  []models.Category
}

// HomePage renders the landing page
func HomePage(cartCount int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return homeTmpl.Execute(w, homeData{
			CartCount:  cartCount,
			Categories: models.Categories,
		})
	})
}
