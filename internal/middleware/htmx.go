package middleware

import "net/http"

// IsHTMXRequest reports whether the request was issued by HTMX
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
