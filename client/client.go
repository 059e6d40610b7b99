// Package client talks to the payment gateway: it fetches capability
// documents, creates sources, and tokenizes cards, translating the gateway's
// status and body combinations into typed results and errors.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://api.omise.co"
	defaultVaultURL = "https://vault.omise.co"

	// apiVersion pins the gateway schema the decoders in this module
	// understand.
	apiVersion = "2019-05-29"

	// platformType identifies this client family to the gateway on every
	// create-source request.
	platformType = "API"

	publicKeyPrefix = "pkey_"
)

// Client is the gateway API client. It is safe for concurrent use.
type Client struct {
	publicKey  string
	baseURL    string
	vaultURL   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithVaultURL overrides the token vault URL.
func WithVaultURL(url string) Option {
	return func(c *Client) {
		c.vaultURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the structured logger the client writes request traces to.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a gateway client authenticated with a public key. The key
// must carry the public-key prefix; secret keys are rejected so they never
// leave the merchant's backend.
func NewClient(publicKey string, opts ...Option) (*Client, error) {
	if !strings.HasPrefix(publicKey, publicKeyPrefix) {
		return nil, fmt.Errorf("client: public key must start with %q", publicKeyPrefix)
	}
	c := &Client{
		publicKey: publicKey,
		baseURL:   defaultBaseURL,
		vaultURL:  defaultVaultURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.publicKey+":"))
}

// doRequest performs one gateway round trip and returns the raw status and
// body. A transport-level failure surfaces as UnexpectedError with
// KindNoResponse; interpreting the status and body is parseResponse's job.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, versioned bool) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", c.authorization())
	req.Header.Set("Content-Type", "application/json")
	if versioned {
		req.Header.Set("Omise-Version", apiVersion)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &UnexpectedError{Kind: KindNoResponse, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &UnexpectedError{Kind: KindNoResponse, Err: err}
	}

	c.logger.DebugContext(ctx, "gateway round trip",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
	)
	return resp.StatusCode, data, nil
}

// parseResponse interprets one gateway status and body pair. A 2xx body
// decodes into dst; a 4xx or 5xx body decodes into an APIError; every other
// combination is an UnexpectedError classifying what went wrong.
func parseResponse(status int, body []byte, dst any) error {
	hasBody := len(bytes.TrimSpace(body)) > 0

	switch {
	case status >= 200 && status < 300:
		if !hasBody {
			return &UnexpectedError{Kind: KindSuccessNoData, StatusCode: status}
		}
		if err := json.Unmarshal(body, dst); err != nil {
			return &UnexpectedError{Kind: KindSuccessInvalidData, StatusCode: status, Err: err}
		}
		return nil

	case status >= 400 && status < 600:
		if !hasBody {
			return &UnexpectedError{Kind: KindErrorNoData, StatusCode: status}
		}
		var apiErr struct {
			Object   string `json:"object"`
			Location string `json:"location"`
			Code     string `json:"code"`
			Message  string `json:"message"`
		}
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Object != "error" {
			return &UnexpectedError{Kind: KindErrorInvalidData, StatusCode: status, Err: err}
		}
		return &APIError{
			Location:   apiErr.Location,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			StatusCode: status,
		}

	default:
		return &UnexpectedError{Kind: KindUnrecognizedStatus, StatusCode: status}
	}
}
