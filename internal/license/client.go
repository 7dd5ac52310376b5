package license

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/WojtekL7/claude-voice-assistant/internal/config"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

const defaultHTTPTimeout = 10 * time.Second

// APIError is a non-2xx response from the license server, carrying
// the server's own message when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("license server: %s (status %d)", e.Message, e.StatusCode)
}

// ActivationResult is the payload of a successful activation.
type ActivationResult struct {
	LicenseType string `json:"license_type"`
	ExpiryDate  string `json:"expiry_date"`
}

// ValidationResult is the payload of a key validation.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	ExpiryDate string `json:"expiry_date"`
}

type trialRequest struct {
	Email      string `json:"email"`
	DeviceID   string `json:"device_id"`
	Platform   string `json:"platform"`
	AppVersion string `json:"app_version"`
}

type activateRequest struct {
	LicenseKey string `json:"license_key"`
	DeviceID   string `json:"device_id"`
	Email      string `json:"email"`
	Platform   string `json:"platform"`
}

type validateRequest struct {
	LicenseKey string `json:"license_key"`
	DeviceID   string `json:"device_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client talks to the license server's REST endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithHTTPTimeout sets the per-request timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient builds a license server client for the given base URL.
func NewClient(baseURL string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartTrial registers a trial for this device. The caller decides
// what to do when the server is unreachable.
func (c *Client) StartTrial(ctx context.Context, email, deviceID string) error {
	req := trialRequest{
		Email:      email,
		DeviceID:   deviceID,
		Platform:   runtime.GOOS,
		AppVersion: config.AppVersion,
	}
	return c.post(ctx, "/license/trial", req, nil)
}

// Activate binds a license key to this device.
func (c *Client) Activate(ctx context.Context, key, deviceID, email string) (*ActivationResult, error) {
	req := activateRequest{
		LicenseKey: key,
		DeviceID:   deviceID,
		Email:      email,
		Platform:   runtime.GOOS,
	}
	var res ActivationResult
	if err := c.post(ctx, "/license/activate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate asks the server whether the key is still good for this
// device.
func (c *Client) Validate(ctx context.Context, key, deviceID string) (*ValidationResult, error) {
	req := validateRequest{
		LicenseKey: key,
		DeviceID:   deviceID,
	}
	var res ValidationResult
	if err := c.post(ctx, "/license/validate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("license POST %s", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("license server request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errResp errorResponse
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		c.log.Warn("license POST %s failed: %v", path, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}
