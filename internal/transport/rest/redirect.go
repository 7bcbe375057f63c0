package rest

import (
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// LegacyPages maps the old per-page paths onto sections of the single
// landing page. /reviews and /contests share their paths with API routes
// and are redirected by BrowserRedirect instead; the -page aliases remain.
var LegacyPages = map[string]string{
	"/shop":          "shop",
	"/gallery":       "gallery",
	"/documents":     "documents",
	"/about":         "about",
	"/reviews-page":  "reviews",
	"/contests-page": "contests",
}

// LegacyRedirect sends an old page path to /?section=<name> with a
// permanent redirect that keeps the request method.
func LegacyRedirect(section string) http.HandlerFunc {
	target := "/?" + url.Values{"section": {section}}.Encode()
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusPermanentRedirect)
	}
}

// BrowserRedirect serves api unless the request Accept header prefers
// text/html over JSON, in which case the old page link is sent to
// /?section=<name>. Redirects for browsers are temporary so caches keep
// the API response separate.
func BrowserRedirect(section string, api http.Handler) http.Handler {
	target := "/?" + url.Values{"section": {section}}.Encode()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept")
		if prefersHTML(r.Header.Get("Accept")) {
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		api.ServeHTTP(w, r)
	})
}

// prefersHTML reports whether text/html outranks application/json in an
// Accept header. Wildcard */* counts for neither.
func prefersHTML(accept string) bool {
	var html, json float64
	for _, part := range strings.Split(accept, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		q := 1.0
		if v, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				q = parsed
			}
		}
		switch mt {
		case "text/html", "application/xhtml+xml":
			html = max(html, q)
		case "application/json", "application/*":
			json = max(json, q)
		}
	}
	return html > 0 && html > json
}
