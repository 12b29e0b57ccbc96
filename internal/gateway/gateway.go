package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Gateway issues all network calls for the access layer and normalizes
// their outcomes. It holds no per-call state: the base URL and timeout are
// fixed at construction and a bearer credential is supplied per call.
type Gateway struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// New creates a Gateway for the given base URL. The logger is an optional
// diagnostics hook; pass nil to disable it.
func New(baseURL string, timeout time.Duration, log *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// ErrorEnvelope is the normalized {status, message} pair derived from a
// failed response body.
type ErrorEnvelope struct {
	Status  int
	Message string
}

// Envelope derives the caller-visible message for a failing HTTP status
// from the decoded response body. Precedence: an "errors" list is joined
// with ", "; otherwise a non-empty "message" field is used; otherwise the
// message is synthesized from the status.
func Envelope(status int, body any) ErrorEnvelope {
	if m, ok := body.(map[string]any); ok {
		if list, ok := m["errors"].([]any); ok {
			parts := make([]string, len(list))
			for i, e := range list {
				parts[i] = fmt.Sprint(e)
			}
			return ErrorEnvelope{Status: status, Message: strings.Join(parts, ", ")}
		}
		if msg, ok := m["message"].(string); ok && msg != "" {
			return ErrorEnvelope{Status: status, Message: msg}
		}
	}
	return ErrorEnvelope{Status: status, Message: fmt.Sprintf("Server error: %d", status)}
}

// Send issues one request and returns the raw JSON body of a successful
// response. Shape translation is the caller's responsibility; Send never
// unwraps envelopes. A credential, when given, is attached as a bearer
// token. Failures are returned as *ServerError, *MalformedResponseError,
// or the wrapped transport error. Send never retries.
func (g *Gateway) Send(ctx context.Context, method, path, credential string, body any) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if g.log != nil {
			g.log.Error("unparseable response body", "method", method, "path", path, "status", resp.StatusCode)
		}
		return nil, &MalformedResponseError{Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		env := Envelope(resp.StatusCode, parsed)
		if g.log != nil {
			g.log.Warn("server rejected request", "method", method, "path", path, "status", env.Status, "message", env.Message)
		}
		return nil, &ServerError{Status: env.Status, Message: env.Message}
	}

	if g.log != nil {
		g.log.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode)
	}
	return raw, nil
}
