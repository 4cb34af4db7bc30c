package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tesseract-club/arena/internal/api"
)

func TestDecodeOptionalJsonBody(t *testing.T) {
	type payload struct {
		Password string `json:"password"`
	}

	t.Run("empty body is not an error", func(t *testing.T) {
		var got payload
		if err := api.DecodeOptionalJsonBody(strings.NewReader(""), &got); err != nil {
			t.Fatalf("empty body rejected: %v", err)
		}
		if got.Password != "" {
			t.Errorf("empty body populated the payload: %+v", got)
		}
	})

	t.Run("missing request body is not an error", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/contests/abc/join", nil)
		var got payload
		if err := api.DecodeOptionalJsonBody(r.Body, &got); err != nil {
			t.Fatalf("bodyless request rejected: %v", err)
		}
	})

	t.Run("body with unknown length is decoded", func(t *testing.T) {
		// chunked transfer encoding leaves ContentLength at -1, the
		// payload still has to be read
		r := httptest.NewRequest(
			http.MethodPost,
			"/contests/abc/join",
			strings.NewReader(`{"password": "hunter22"}`),
		)
		r.ContentLength = -1

		var got payload
		if err := api.DecodeOptionalJsonBody(r.Body, &got); err != nil {
			t.Fatalf("chunked body rejected: %v", err)
		}
		if got.Password != "hunter22" {
			t.Errorf("password = %q, want hunter22", got.Password)
		}
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		var got payload
		err := api.DecodeOptionalJsonBody(strings.NewReader(`{"password":`), &got)
		if err == nil {
			t.Fatal("malformed body accepted")
		}
		if !strings.Contains(err.Error(), "invalid request payload") {
			t.Errorf("unexpected error message: %v", err)
		}
	})
}
