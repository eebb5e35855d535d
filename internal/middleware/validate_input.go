package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
	"github.com/ferdiebergado/notekit/internal/platform/validation"
)

var errInvalidPayload = errors.New("payload failed validation")

// ValidateInput checks the payload stored by DecodePayload.
// Field errors are returned with 422, keyed by json field name.
func ValidateInput[T any](v validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if fieldErrs := v.ValidateStruct(params); fieldErrs != nil {
				fields := slices.Sorted(maps.Keys(fieldErrs))
				slog.Debug("Payload rejected.", "fields", fields)
				web.RespondUnprocessableEntity(w, fmt.Errorf("%w: %v", errInvalidPayload, fields), message.InvalidInput, fieldErrs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
