// Package gateway holds the HTTP clients for the upstream core API and the
// agent endpoint. The core API is authoritative for every business rule;
// these clients only move requests and map failures into the local taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client is a thin JSON client bound to one upstream base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// upstreamErrorBody is the core API's error payload shape.
type upstreamErrorBody struct {
	Detail string `json:"detail"`
}

// do performs one JSON round trip. The caller's bearer token, when present
// on the context, is forwarded untouched. A non-2xx response with a
// decodable detail payload becomes an UpstreamError carrying the message
// verbatim; everything else (unreachable host, malformed body) becomes a
// TransportError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody upstreamErrorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr != nil || errBody.Detail == "" {
			zap.L().Warn("gateway: undecodable upstream error",
				zap.String("path", path), zap.Int("status", resp.StatusCode))
			return &TransportError{Err: fmt.Errorf("upstream returned status %d", resp.StatusCode)}
		}
		return &UpstreamError{Status: resp.StatusCode, Detail: errBody.Detail}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode upstream response: %w", err)}
	}
	return nil
}
