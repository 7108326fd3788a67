package pages

import "html/template"

// layoutHTML is the shared page shell: header with navigation and the cart
// count badge, content block, footer
const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{template "title" .}} - Acacia Lounge</title>
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">
    <link rel="stylesheet" href="/static/css/style.css">
    <script src="https://unpkg.com/htmx.org@1.9.10"></script>
</head>
<body>
    <header>
        <div class="container header-inner">
            <a href="/" class="logo">Acacia <span>Lounge</span></a>
            <nav>
                <a href="/">Home</a>
                <a href="/menu">Menu</a>
                <a href="/cart">Cart</a>
            </nav>
            <form class="search-form" action="/search" method="get">
                <input type="search" name="q" placeholder="Search drinks..." value="{{.SearchQuery}}">
            </form>
            <a href="/cart" class="cart-link">
                <i class="fas fa-shopping-cart"></i>
                <span class="cart-count" hx-get="/cart/count" hx-trigger="cart-updated from:body" hx-swap="innerHTML">{{.CartCount}}</span>
            </a>
        </div>
    </header>
    <main class="container">
{{template "content" .}}
    </main>
    <footer>
        <div class="container">
            <p>&copy; Acacia Lounge, Clay City, Nairobi &middot; Phone: 0721555163 &middot; info@acacialounge.co.ke</p>
        </div>
    </footer>
</body>
</html>
`

// newPageTemplate builds a page template on top of the shared layout
func newPageTemplate(name, content string) *template.Template {
	layout := template.Must(template.New(name).Funcs(templateFuncs).Parse(layoutHTML))
	return template.Must(layout.Parse(content))
}
