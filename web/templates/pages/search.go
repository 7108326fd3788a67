package pages

import (
	"context"
	"io"

	"acacia-lounge/internal/models"

	"github.com/a-h/templ"
)

var searchTmpl = newPageTemplate("search", `
{{define "title"}}Search{{end}}
{{define "content"}}
    <h1>Search</h1>
    {{if .SearchQuery}}
    <p id="searchQueryLabel">Showing results for: &quot;{{.SearchQuery}}&quot;</p>
    {{else}}
    <p id="searchQueryLabel">Type a search above</p>
    {{end}}
    <div class="search-results" id="resultsContainer">
        {{range .Results}}
        <div class="search-result-item">
            <div class="result-title"><i class="fas fa-cocktail"></i> {{.Name}}</div>
            <div class="result-subtitle">Category: {{.Category}} &bull; Ksh {{.Price}}</div>
            <a href="/menu?category={{.Category}}" class="btn">Open</a>
        </div>
        {{else}}
        {{if .SearchQuery}}<p>No results found. Try a different keyword.</p>{{end}}
        {{end}}
    </div>
{{end}}
`)

type searchData struct {
	CartCount   int
	SearchQuery string
	Results     []*models.Drink
}

// SearchPage renders drink search results for the given query
func SearchPage(query string, results []*models.Drink, cartCount int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return searchTmpl.Execute(w, searchData{
			CartCount:   cartCount,
			SearchQuery: query,
			Results:     results,
		})
	})
}
