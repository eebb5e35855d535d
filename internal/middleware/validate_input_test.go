package middleware_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/notekit/internal/middleware"
	"github.com/ferdiebergado/notekit/internal/note"
	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
	"github.com/ferdiebergado/notekit/internal/platform/validation"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	const (
		headerCalled = "X-Handler-Called"
		testName     = "fely"
		testEmail    = "fely@example.com"
		emailErr     = "email must be a valid email address"
	)

	type profile struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	tests := []struct {
		name         string
		code         int
		payload      any
		valFunc      func(any) map[string]string
		wantErrs     map[string]string
		headerCalled string
	}{
		{"Valid input", http.StatusOK, profile{testName, testEmail}, func(_ any) map[string]string { return nil },
			nil, "true"},
		{"Invalid input", http.StatusUnprocessableEntity, profile{testName, "fely@example"}, func(_ any) map[string]string {
			return map[string]string{"email": emailErr}
		}, map[string]string{"email": emailErr}, ""},
		{"Invalid type", http.StatusBadRequest, struct{}{}, func(_ any) map[string]string {
			return nil
		}, nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, err := web.ParamsFromContext[profile](r.Context())
				if err != nil {
					const code = http.StatusBadRequest
					http.Error(w, http.StatusText(code), code)
					return
				}
				w.Header().Set(web.HeaderContentType, web.MimeJSON)
				w.Header().Set(headerCalled, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&p); err != nil {
					slog.Error("failed to encode json", "reason", err)
				}
			})

			ctx := web.NewContextWithParams(context.Background(), tc.payload)
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/", http.NoBody)
			rec := httptest.NewRecorder()
			valdtr := &validation.StubValidator{
				ValidateStructFunc: tc.valFunc,
			}
			mw := middleware.ValidateInput[profile](valdtr)
			mw(handler).ServeHTTP(rec, req)

			gotCode, wantCode := rec.Code, tc.code
			if gotCode != wantCode {
				t.Fatalf("rec.Code = %d, want: %d", gotCode, wantCode)
			}

			res := rec.Result()
			defer res.Body.Close()

			web.AssertContentType(t, res)

			gotHeaderCalled, wantHeaderCalled := res.Header.Get(headerCalled), tc.headerCalled
			if gotHeaderCalled != wantHeaderCalled {
				t.Errorf("res.Header.Get(%q) = %q, want: %q", headerCalled, gotHeaderCalled, wantHeaderCalled)
			}

			if tc.code == http.StatusOK {
				got := web.DecodeJSONResponse[profile](t, res)
				if got != tc.payload {
					t.Errorf("handler payload = %+v, want: %+v", got, tc.payload)
				}
				return
			}

			body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
			if body.Message != message.InvalidInput {
				t.Errorf("body.Message = %q, want: %q", body.Message, message.InvalidInput)
			}

			for field, want := range tc.wantErrs {
				if got := body.Errors[field]; got != want {
					t.Errorf("body.Errors[%q] = %q, want: %q", field, got, want)
				}
			}
		})
	}
}

func TestDecodeThenValidate_NotePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		code      int
		wantField string
	}{
		{"Valid note", `{"title":"Groceries","content":"eggs"}`, http.StatusOK, ""},
		{"Blank title", `{"title":"  \t ","content":"eggs"}`, http.StatusUnprocessableEntity, "title"},
		{"Missing content", `{"title":"Groceries"}`, http.StatusUnprocessableEntity, "content"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			chain := middleware.DecodePayload[note.NoteRequest](1 << 10)(
				middleware.ValidateInput[note.NoteRequest](validation.NewGoPlaygroundValidator())(next))

			req := httptest.NewRequest(http.MethodPost, "/notes/", strings.NewReader(tc.payload))
			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tc.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tc.code)
			}

			if tc.wantField == "" {
				return
			}

			body := web.DecodeJSONResponse[web.ErrorResponse](t, res)
			if _, ok := body.Errors[tc.wantField]; !ok || len(body.Errors) != 1 {
				t.Errorf("body.Errors = %v, want a single error for %q", body.Errors, tc.wantField)
			}
		})
	}
}

func TestValidateInput_ValidatesStoredPayload(t *testing.T) {
	t.Parallel()

	want := note.NoteRequest{Title: "Groceries", Content: "eggs"}
	valdtr := &validation.StubValidator{}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx := web.NewContextWithParams(context.Background(), want)
	req := httptest.NewRequestWithContext(ctx, http.MethodPut, "/notes/1", http.NoBody)
	rec := httptest.NewRecorder()
	middleware.ValidateInput[note.NoteRequest](valdtr)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}

	if len(valdtr.Validated) != 1 || valdtr.Validated[0] != want {
		t.Errorf("valdtr.Validated = %+v, want: [%+v]", valdtr.Validated, want)
	}
}
