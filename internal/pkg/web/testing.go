package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func AssertContentType(t *testing.T, res *http.Response) {
	t.Helper()

	gotContent := res.Header.Get(HeaderContentType)
	if !strings.HasPrefix(gotContent, MimeJSON) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", HeaderContentType, gotContent, MimeJSON)
	}
}

// DecodeJSONResponse decodes the body of res into T and fails the test on error.
func DecodeJSONResponse[T any](t *testing.T, res *http.Response) T {
	t.Helper()

	var body T
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode json response: %v", err)
	}

	return body
}
