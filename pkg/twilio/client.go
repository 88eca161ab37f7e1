package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Twilio REST API root. SignalWire spaces expose the
// same resources under https://<space>/api/laml/2010-04-01.
const DefaultBaseURL = "https://api.twilio.com/2010-04-01"

// ErrNotConfigured is returned when account credentials are missing
var ErrNotConfigured = errors.New("twilio credentials not configured")

// APIError is the error body returned by the REST API.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
	MoreInfo   string `json:"more_info"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("twilio API error (%d, code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("twilio API error (%d): %s", e.StatusCode, e.Message)
}

// AvailableNumber is a purchasable number returned by a search.
type AvailableNumber struct {
	FriendlyName string `json:"friendly_name"`
	PhoneNumber  string `json:"phone_number"`
	Locality     string `json:"locality"`
	Region       string `json:"region"`
	PostalCode   string `json:"postal_code"`
	ISOCountry   string `json:"iso_country"`
}

// IncomingNumber is a number owned by the account.
type IncomingNumber struct {
	SID                 string `json:"sid"`
	PhoneNumber         string `json:"phone_number"`
	FriendlyName        string `json:"friendly_name"`
	VoiceApplicationSID string `json:"voice_application_sid"`
}

// Application is a voice application shared by purchased numbers.
type Application struct {
	SID          string `json:"sid"`
	FriendlyName string `json:"friendly_name"`
	VoiceURL     string `json:"voice_url"`
	VoiceMethod  string `json:"voice_method"`
}

// Client is a minimal Twilio REST client covering number provisioning.
type Client struct {
	accountSID string
	authToken  string
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root (SignalWire, test servers).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a new Twilio API client
func NewClient(accountSID, authToken string, opts ...Option) *Client {
	c := &Client{
		accountSID: accountSID,
		authToken:  authToken,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthToken returns the token used to sign webhook requests.
func (c *Client) AuthToken() string {
	return c.authToken
}

// SearchLocalNumbers lists purchasable local numbers in an area code.
func (c *Client) SearchLocalNumbers(ctx context.Context, country, areaCode string) ([]AvailableNumber, error) {
	if country == "" {
		country = "US"
	}
	query := url.Values{}
	query.Set("AreaCode", areaCode)
	query.Set("VoiceEnabled", "true")

	path := fmt.Sprintf("/Accounts/%s/AvailablePhoneNumbers/%s/Local.json?%s",
		c.accountSID, url.PathEscape(country), query.Encode())

	var page struct {
		AvailablePhoneNumbers []AvailableNumber `json:"available_phone_numbers"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return page.AvailablePhoneNumbers, nil
}

// PurchaseNumber buys phoneNumber and binds it to a voice application.
func (c *Client) PurchaseNumber(ctx context.Context, phoneNumber, voiceApplicationSID string) (*IncomingNumber, error) {
	form := url.Values{}
	form.Set("PhoneNumber", phoneNumber)
	if voiceApplicationSID != "" {
		form.Set("VoiceApplicationSid", voiceApplicationSID)
	}

	path := fmt.Sprintf("/Accounts/%s/IncomingPhoneNumbers.json", c.accountSID)

	var number IncomingNumber
	if err := c.do(ctx, http.MethodPost, path, form, &number); err != nil {
		return nil, err
	}
	return &number, nil
}

// GetApplication fetches a voice application by SID.
func (c *Client) GetApplication(ctx context.Context, applicationSID string) (*Application, error) {
	path := fmt.Sprintf("/Accounts/%s/Applications/%s.json", c.accountSID, url.PathEscape(applicationSID))

	var app Application
	if err := c.do(ctx, http.MethodGet, path, nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	if c.accountSID == "" || c.authToken == "" {
		return ErrNotConfigured
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ApplicationConsoleURL is the console page where the application's voice URL is edited.
func ApplicationConsoleURL(sid string) string {
	return "https://www.twilio.com/user/account/apps/" + url.PathEscape(sid)
}
