package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateSessionSuccess(t *testing.T) {
	var gotAuth string
	var gotReq initializeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc",
				"access_code":       "abc",
				"reference":         "ref_1",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	session, err := c.CreateSession(context.Background(), 850000, "cust@unclefries.com", "https://example.com/api/paystack/webhook")
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if gotAuth != "Bearer sk_test_abc" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if gotReq.Amount != 850000 || gotReq.Email != "cust@unclefries.com" {
		t.Fatalf("unexpected initialize request: %+v", gotReq)
	}
	if session.AuthorizationURL != "https://checkout.paystack.com/abc" || session.Reference != "ref_1" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestCreateSessionFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"status":false,"message":"Invalid key"}`, http.StatusUnauthorized)
			},
		},
		{
			name: "rejected status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "message": "declined"})
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()
			client := NewClient(srv.URL, "sk_test_abc")
			if _, err := client.CreateSession(context.Background(), 1000, "a@b.c", "https://cb"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
