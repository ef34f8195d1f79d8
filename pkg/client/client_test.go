package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acryl-tech/acryl-go/pkg/tx"
)

func TestAddressBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/addresses/balance/3EJ9fQqT" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Errorf("user agent = %q, want %q", ua, userAgent)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"address":       "3EJ9fQqT",
			"confirmations": 0,
			"balance":       123456,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	b, err := c.AddressBalance("3EJ9fQqT")
	if err != nil {
		t.Fatalf("AddressBalance error: %v", err)
	}
	if b.Balance != 123456 {
		t.Errorf("balance = %d, want 123456", b.Balance)
	}
}

func TestAddressBalanceDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/addresses/balance/details/addr" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"address": "addr", "regular": 10, "generating": 5, "available": 8, "effective": 9,
		})
	}))
	defer srv.Close()

	d, err := New(srv.URL).AddressBalanceDetails("addr")
	if err != nil {
		t.Fatalf("AddressBalanceDetails error: %v", err)
	}
	if d.Regular != 10 || d.Effective != 9 {
		t.Errorf("details = %+v", d)
	}
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error":   199,
			"message": "invalid address",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).AddressBalance("junk")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Code != 199 || apiErr.Message != "invalid address" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).BlocksHeight()
	if err == nil {
		t.Fatal("expected an error for a 502 response")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("a non-JSON body should not decode into an APIError")
	}
}

func TestAPIKeyHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "secret" {
			t.Errorf("X-API-Key = %q, want secret", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"height": 1})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetAPIKey("secret")
	if _, err := c.BlocksHeight(); err != nil {
		t.Fatalf("BlocksHeight error: %v", err)
	}
}

func TestBlocksHeight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blocks/height" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"height": 424242})
	}))
	defer srv.Close()

	height, err := New(srv.URL).BlocksHeight()
	if err != nil {
		t.Fatalf("BlocksHeight error: %v", err)
	}
	if height != 424242 {
		t.Errorf("height = %d, want 424242", height)
	}
}

func TestResolveAlias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alias/by-alias/shop" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"address": "3EJ9fQqT"})
	}))
	defer srv.Close()

	address, err := New(srv.URL).ResolveAlias("shop")
	if err != nil {
		t.Fatalf("ResolveAlias error: %v", err)
	}
	if address != "3EJ9fQqT" {
		t.Errorf("address = %q", address)
	}
}

func TestBroadcast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/transactions/broadcast" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["signature"] != "sig" {
			t.Errorf("signature = %v, want sig", body["signature"])
		}

		body["id"] = "assigned-id"
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	result, err := New(srv.URL).Broadcast(tx.Signed{"signature": "sig", "amount": 1})
	if err != nil {
		t.Fatalf("Broadcast error: %v", err)
	}
	if result["id"] != "assigned-id" {
		t.Errorf("id = %v, want assigned-id", result["id"])
	}
}

func TestTypedBroadcastRoutes(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(c *Client) (tx.Signed, error)
	}{
		{"transfer", "/assets/broadcast/transfer", func(c *Client) (tx.Signed, error) {
			return c.BroadcastTransfer(tx.Signed{})
		}},
		{"issue", "/assets/broadcast/issue", func(c *Client) (tx.Signed, error) {
			return c.BroadcastIssue(tx.Signed{})
		}},
		{"reissue", "/assets/broadcast/reissue", func(c *Client) (tx.Signed, error) {
			return c.BroadcastReissue(tx.Signed{})
		}},
		{"burn", "/assets/broadcast/burn", func(c *Client) (tx.Signed, error) {
			return c.BroadcastBurn(tx.Signed{})
		}},
		{"lease", "/leasing/broadcast/lease", func(c *Client) (tx.Signed, error) {
			return c.BroadcastLease(tx.Signed{})
		}},
		{"lease cancel", "/leasing/broadcast/cancel", func(c *Client) (tx.Signed, error) {
			return c.BroadcastLeaseCancel(tx.Signed{})
		}},
		{"alias", "/alias/broadcast/create", func(c *Client) (tx.Signed, error) {
			return c.BroadcastAlias(tx.Signed{})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte("{}"))
			}))
			defer srv.Close()

			if _, err := tt.call(New(srv.URL)); err != nil {
				t.Fatalf("call error: %v", err)
			}
			if gotPath != tt.path {
				t.Errorf("path = %s, want %s", gotPath, tt.path)
			}
		})
	}
}

func TestUnconfirmedSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"size": 3})
	}))
	defer srv.Close()

	size, err := New(srv.URL).UnconfirmedSize()
	if err != nil {
		t.Fatalf("UnconfirmedSize error: %v", err)
	}
	if size != 3 {
		t.Errorf("size = %d, want 3", size)
	}
}

func TestAddressValidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"address": "a", "valid": true})
	}))
	defer srv.Close()

	valid, err := New(srv.URL).AddressValidate("a")
	if err != nil {
		t.Fatalf("AddressValidate error: %v", err)
	}
	if !valid {
		t.Error("valid = false, want true")
	}
}
