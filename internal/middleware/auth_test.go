package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot_reel/pkg/token"
)

func TestAuth(t *testing.T) {
	secret := []byte("secret")
	var gotID int
	var gotOK bool
	h := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
	}))

	tok, err := token.GenerateAccessToken(42, secret, time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodGet, "/reel/balance", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK || !gotOK || gotID != 42 {
		t.Errorf("Expected user 42 in context, got code=%d id=%d ok=%v", rec.Code, gotID, gotOK)
	}
}

func TestAuthRejects(t *testing.T) {
	h := Auth([]byte("secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler must not be called")
	}))

	other, err := token.GenerateAccessToken(1, []byte("other"), time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	for _, header := range []string{"", "Bearer ", "Basic abc", "Bearer " + other} {
		r := httptest.NewRequest(http.MethodGet, "/reel/balance", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%q: expected 401, got %d", header, rec.Code)
		}
	}
}
