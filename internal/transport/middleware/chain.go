package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that the first one listed runs first:
// Chain(mw1, mw2)(h) is mw1(mw2(h)). Nil entries are skipped, which lets a
// route stack leave out a layer that config switched off.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Then wraps a handler function with m. It keeps route tables short:
// mux.Handle("PUT /results", admin.Then(h.Update)).
func (m Middleware) Then(fn http.HandlerFunc) http.Handler {
	if m == nil {
		return fn
	}
	return m(fn)
}
