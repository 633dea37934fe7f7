// Package backend is the typed client for the remote UniGuide REST API. All
// persistent state, authorization enforcement, and business logic live behind
// it; this package only decorates requests with the session's bearer token
// and maps responses onto Go values.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Client talks to the UniGuide backend at a fixed base URL over HTTP/JSON.
// The zero token value is a public (unauthenticated) client; use Authed to
// derive a client that sends a bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a public client for the backend at baseURL.
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{})
}

// NewWithHTTPClient creates a client using the supplied http.Client. Used by
// tests to point at an httptest server.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Authed returns a copy of the client that attaches
// "Authorization: Bearer <token>" to every request.
func (c *Client) Authed(token string) *Client {
	authed := *c
	authed.token = token
	return &authed
}

// TokenExpired reports whether a bearer token is a JWT whose exp claim has
// passed. The token is parsed without verification; the backend remains the
// authority on validity, this is only a fast path to the login redirect.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one backend call. The request carries ctx so an abandoned page
// request cancels its in-flight backend call. Failures are terminal for the
// user action: no retries, no backoff.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend %s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.send(req, method, path, out)
}

// doMultipart performs a multipart/form-data call (profile updates with an
// avatar upload).
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("backend %s %s: %w", method, path, err)
		}
	}
	if file != nil {
		part, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("backend %s %s: %w", method, path, err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("backend %s %s: %w", method, path, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.send(req, method, path, out)
}

func (c *Client) send(req *http.Request, method, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func apiError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope errorEnvelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
		if apiErr.Message == "" {
			apiErr.Message = envelope.Error
		}
	}
	return apiErr
}
