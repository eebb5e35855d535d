package middleware

import "net/http"

// InjectWriter hands next a SafeResponseWriter bound to the request context.
// A writer that is already a SafeResponseWriter is passed through unchanged.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := w.(*SafeResponseWriter); !ok {
			w = NewSafeResponseWriter(r.Context(), w)
		}
		next.ServeHTTP(w, r)
	})
}
