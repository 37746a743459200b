package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	// Test with nil config
	c := NewClient(nil)
	if c.config.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default base URL, got %s", c.config.BaseURL)
	}

	// Test with custom config
	c = NewClient(&Config{BaseURL: "https://api.example.com", Timeout: time.Second})
	if c.config.BaseURL != "https://api.example.com" {
		t.Errorf("expected custom base URL, got %s", c.config.BaseURL)
	}
	if c.client != http.DefaultClient {
		t.Error("expected default HTTP client when none given")
	}
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Email != "rina@example.com" {
			t.Errorf("unexpected email %s", req.Email)
		}

		json.NewEncoder(w).Encode(LoginResponse{Ok: true, Token: "jwt-token"})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL})
	resp, err := c.Login(context.Background(), "rina@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Errorf("unexpected token %s", resp.Token)
	}
	if c.config.Token != "jwt-token" {
		t.Error("expected token to be stored on the client")
	}

	// Missing credentials
	if _, err := c.Login(context.Background(), "", ""); err == nil {
		t.Error("expected error for missing credentials")
	}
}

func TestCheckIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/weddings/w-1/checkin" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer jwt-token" {
			t.Errorf("unexpected authorization header %q", got)
		}

		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["token"] != "abc123" {
			t.Errorf("unexpected token %s", req["token"])
		}

		json.NewEncoder(w).Encode(CheckinResponse{
			Ok:    true,
			Guest: &Guest{ID: "g-1", Name: "Jane Doe", Status: "checked_in"},
		})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL, Token: "jwt-token"})
	resp, err := c.CheckIn(context.Background(), "w-1", "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Guest == nil || resp.Guest.Status != "checked_in" {
		t.Errorf("unexpected guest %+v", resp.Guest)
	}
	if resp.AlreadyCheckedIn {
		t.Error("expected a fresh check-in")
	}

	if _, err := c.CheckIn(context.Background(), "w-1", ""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestCheckInRepeatScan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CheckinResponse{
			Ok:               true,
			Guest:            &Guest{ID: "g-1", Status: "checked_in"},
			AlreadyCheckedIn: true,
			Message:          "tamu sudah check-in sebelumnya",
		})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL, Token: "jwt-token"})
	resp, err := c.CheckIn(context.Background(), "w-1", "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.AlreadyCheckedIn {
		t.Error("expected already_checked_in to be set")
	}
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "wedding not found or unauthorized"})
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL, Token: "jwt-token"})
	_, err := c.ListGuests(context.Background(), "w-unknown")
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "wedding not found or unauthorized" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestExportGuestsCSV(t *testing.T) {
	const payload = "Nama,Kontak,Status,Link Undangan,QR Token\n\"Jane Doe\",\"\",\"pending\",\"http://localhost:3000/invite/rina-dan-budi?guest_id=g-1\",\"tok\""

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/weddings/w-1/guests/export" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(payload))
	}))
	defer server.Close()

	c := NewClient(&Config{BaseURL: server.URL, Token: "jwt-token"})
	csv, err := c.ExportGuestsCSV(context.Background(), "w-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if csv != payload {
		t.Errorf("unexpected csv payload:\n%s", csv)
	}
}
