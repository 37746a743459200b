// Package client is a small Go client for the tamumu HTTP API. It is
// meant for scanner apps and operator scripts that talk to the backend
// without going through the web dashboard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config represents the configuration for the tamumu client
type Config struct {
	// BaseURL is the base URL of the tamumu API
	BaseURL string
	// Token is the bearer token obtained from a login
	Token string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the tamumu API client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new tamumu client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// APIError represents an error returned by the API
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// Login authenticates and stores the returned bearer token on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	var resp LoginResponse
	err := c.post(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	c.config.Token = resp.Token
	return &resp, nil
}

// Wedding is a wedding as returned by the API
type Wedding struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	WeddingDate  *time.Time `json:"wedding_date"`
	Slug         string     `json:"slug"`
	Venue        *string    `json:"venue"`
	VenueAddress *string    `json:"venue_address"`
}

type weddingListResponse struct {
	Ok       bool      `json:"ok"`
	Weddings []Wedding `json:"weddings"`
}

// ListWeddings returns the weddings of the caller's organization
func (c *Client) ListWeddings(ctx context.Context) ([]Wedding, error) {
	var resp weddingListResponse
	if err := c.get(ctx, "/api/weddings", &resp); err != nil {
		return nil, err
	}
	return resp.Weddings, nil
}

// Guest is a guest as returned by the API
type Guest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Contact     *string    `json:"contact"`
	Status      string     `json:"status"`
	QRToken     string     `json:"qr_token"`
	RSVPAt      *time.Time `json:"rsvp_at"`
	CheckedInAt *time.Time `json:"checked_in_at"`
}

// CreateGuestRequest represents a guest creation request
type CreateGuestRequest struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact,omitempty"`
}

type guestResponse struct {
	Ok        bool   `json:"ok"`
	Guest     *Guest `json:"guest"`
	InviteURL string `json:"invite_url,omitempty"`
}

type guestListResponse struct {
	Ok     bool    `json:"ok"`
	Guests []Guest `json:"guests"`
}

// CreateGuest adds a guest to the wedding and returns it together with
// the invitation link.
func (c *Client) CreateGuest(ctx context.Context, weddingID string, req *CreateGuestRequest) (*Guest, string, error) {
	if req == nil {
		return nil, "", errors.New("request cannot be nil")
	}
	if weddingID == "" || req.Name == "" {
		return nil, "", errors.New("wedding id and guest name are required")
	}

	var resp guestResponse
	err := c.post(ctx, fmt.Sprintf("/api/weddings/%s/guests", weddingID), req, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.Guest, resp.InviteURL, nil
}

// ListGuests returns the wedding's guests in creation order
func (c *Client) ListGuests(ctx context.Context, weddingID string) ([]Guest, error) {
	if weddingID == "" {
		return nil, errors.New("wedding id is required")
	}

	var resp guestListResponse
	if err := c.get(ctx, fmt.Sprintf("/api/weddings/%s/guests", weddingID), &resp); err != nil {
		return nil, err
	}
	return resp.Guests, nil
}

// CheckinResponse represents the outcome of a QR scan
type CheckinResponse struct {
	Ok               bool   `json:"ok"`
	Guest            *Guest `json:"guest"`
	AlreadyCheckedIn bool   `json:"already_checked_in"`
	Message          string `json:"message,omitempty"`
}

// CheckIn submits a scanned QR token for the given wedding. A repeat
// scan is not an error; inspect AlreadyCheckedIn on the response.
func (c *Client) CheckIn(ctx context.Context, weddingID, token string) (*CheckinResponse, error) {
	if weddingID == "" || token == "" {
		return nil, errors.New("wedding id and token are required")
	}

	var resp CheckinResponse
	err := c.post(ctx, fmt.Sprintf("/api/weddings/%s/checkin", weddingID), map[string]string{"token": token}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportGuestsCSV downloads the wedding's guest list in CSV form
func (c *Client) ExportGuestsCSV(ctx context.Context, weddingID string) (string, error) {
	if weddingID == "" {
		return "", errors.New("wedding id is required")
	}

	body, err := c.raw(ctx, http.MethodGet, fmt.Sprintf("/api/weddings/%s/guests/export", weddingID), nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	body, err := c.raw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	body, err := c.raw(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) raw(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Fields = envelope.Fields
		}
		return nil, apiErr
	}

	return body, nil
}
