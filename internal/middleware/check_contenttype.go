package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
)

// CheckContentType requires a JSON media type on POST, PUT and PATCH requests that carry a body.
// Media type parameters such as charset are allowed.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasBody(r) {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		slog.Debug("Content-Type is valid.")
		next.ServeHTTP(w, r)
	})
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return r.ContentLength != 0 || r.Header.Get(web.HeaderContentType) != ""
	default:
		return false
	}
}
