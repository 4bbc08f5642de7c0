package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sporthub-client/internal/config"
	"sporthub-client/internal/session"

	"github.com/rs/zerolog"
)

// Envelope is the JSON wrapper every backend response uses. Behavior keys off
// Success, not off HTTP status.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client is the single point of HTTP egress. It attaches the bearer token
// from the session store when one exists, decodes the response envelope and
// rewrites every failure into an *APIError. It never retries, never queues
// and holds no business logic.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    session.Store
	log        zerolog.Logger
}

func New(cfg *config.API, sess session.Store, log zerolog.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		session: sess,
		log:     log.With().Str("component", "gateway").Logger(),
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.request(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.request(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.request(ctx, http.MethodDelete, path, nil, nil, nil)
}

// request dispatches one call and decodes the envelope's data into out (may
// be nil). Any failure comes back as *APIError.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// unauthenticated calls simply go out without a token
	if token, err := c.session.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// timeout and total connectivity loss surface identically;
		// credentials are never touched here
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed without response")
		return networkError()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError()
	}

	var env Envelope
	// non-envelope bodies (proxies, HTML error pages) are tolerated; the
	// status code alone decides the error kind then
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		// purge credentials before the caller sees the error; the caller
		// owns the re-login navigation, the gateway does not
		if err := c.session.Clear(ctx); err != nil {
			c.log.Error().Err(err).Msg("clear session after 401")
		}
		return normalize(resp.StatusCode, env.Message, raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalize(resp.StatusCode, env.Message, raw)
	}

	if !env.Success {
		return &APIError{
			Kind:    KindRequest,
			Message: messageOr(env.Message, MsgRequestFailed),
			Status:  resp.StatusCode,
			Payload: raw,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// ErrMissingID guards path construction; an empty id would otherwise hit a
// collection endpoint.
var ErrMissingID = errors.New("client: missing resource id")
