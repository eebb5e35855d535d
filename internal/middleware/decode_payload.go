package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
)

const unknownFieldPrefix = "json: unknown field "

var errTrailingData = errors.New("payload has data after the json object")

// DecodePayload decodes one JSON object of type T from a body of at most
// bodySize bytes and stores it in the request context.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			decoder := json.NewDecoder(r.Body)
			decoder.DisallowUnknownFields()

			var payload T
			if err := decoder.Decode(&payload); err != nil {
				respondDecodeError(w, err)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.RespondBadRequest(w, errors.Join(errTrailingData, err), message.InvalidInput, nil)
				return
			}

			slog.Debug("Payload decoded.", slog.Any("payload", &payload))

			next.ServeHTTP(w, r.WithContext(web.NewContextWithParams(r.Context(), payload)))
		})
	}
}

func respondDecodeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
		return
	}

	if field, ok := strings.CutPrefix(err.Error(), unknownFieldPrefix); ok {
		details := map[string]string{"field": strings.Trim(field, `"`)}
		web.RespondUnprocessableEntity(w, err, message.UnknownField, details)
		return
	}

	web.RespondBadRequest(w, err, message.InvalidInput, nil)
}
