package apiclient

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
	"unicode/utf8"

	"go.uber.org/zap"

	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/id"
	"incubator/internal/platform/logging"
	"incubator/internal/platform/metrics"
	"incubator/internal/platform/state"
)

const maxBodyBytes = 8 << 20

type Client struct {
	baseURL string
	http    *http.Client
	store   state.Store
	log     *zap.Logger
	metrics *metrics.Recorder
	ids     id.Generator
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = logging.OrNop(l) }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = m }
}

func WithIDGenerator(g id.Generator) Option {
	return func(c *Client) { c.ids = g }
}

// New returns a client for baseURL. store supplies the bearer token and is
// cleared wholesale when the backend answers 401.
func New(baseURL string, store state.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
		log:     zap.NewNop(),
		ids:     id.UUID{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Request struct {
	Method string
	// Endpoint is a low-cardinality label for logs and metrics,
	// e.g. "project.sessions".
	Endpoint string
	Path     string
	Query    url.Values
	Body     any
}

// Do performs req and returns the raw JSON payload. A 2xx answer with an
// empty body yields a nil payload and no error.
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = req.Path
	}
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	requestID := c.ids.New()
	httpReq.Header.Set("X-Request-ID", requestID)
	if c.store != nil {
		token, ok, err := c.store.Get(ctx, state.KeyAuthToken)
		if err != nil {
			return nil, err
		}
		if ok && token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := c.log.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", req.Path),
	)
	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.ObserveRequest(method, endpoint, 0, time.Since(started))
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
		}
		log.Warn("request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s %s: %w", apperrors.ErrTransport, method, req.Path, err)
	}
	defer resp.Body.Close()

	payload, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(started)
	c.metrics.ObserveRequest(method, endpoint, resp.StatusCode, elapsed)
	log.Debug("response received", zap.Int("status", resp.StatusCode), zap.Duration("duration", elapsed))
	if readErr != nil {
		return nil, fmt.Errorf("%w: read %s response: %w", apperrors.ErrTransport, endpoint, readErr)
	}

	contentType := resp.Header.Get("Content-Type")
	isJSON := isJSONContentType(contentType)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apperrors.APIError{
			Status:  resp.StatusCode,
			Method:  method,
			Path:    req.Path,
			Message: errorMessage(resp.StatusCode, payload, isJSON),
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.clearState(ctx, log)
		} else {
			log.Warn("request rejected", zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		}
		return nil, apiErr
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !isJSON {
		if contentType == "" {
			contentType = "no content-type"
		}
		return nil, fmt.Errorf("%w: expected JSON response but received %s: %s", apperrors.ErrShape, contentType, snippet(string(trimmed)))
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: %s returned malformed JSON", apperrors.ErrShape, endpoint)
	}
	return json.RawMessage(trimmed), nil
}

func (c *Client) clearState(ctx context.Context, log *zap.Logger) {
	if c.store == nil {
		return
	}
	// Use a detached context: the wipe must happen even if ctx is done.
	if err := c.store.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Error("clear local state after 401", zap.Error(err))
		return
	}
	log.Warn("unauthorized; local state cleared")
}

func isJSONContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "+json")
}

func errorMessage(status int, payload []byte, isJSON bool) string {
	fallback := fmt.Sprintf("API request failed with status %d %s", status, http.StatusText(status))
	text := strings.TrimSpace(string(payload))
	if isJSON {
		var body struct {
			Message any    `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(payload, &body); err != nil {
			return fallback
		}
		switch m := body.Message.(type) {
		case string:
			if m != "" {
				return m
			}
		case []any:
			parts := make([]string, 0, len(m))
			for _, item := range m {
				parts = append(parts, fmt.Sprint(item))
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
		if body.Error != "" {
			return body.Error
		}
		return fallback
	}
	if strings.Contains(strings.ToLower(text), "<html") {
		return fmt.Sprintf("received HTML response instead of JSON; possible wrong endpoint or server error (status %d)", status)
	}
	if text != "" {
		return snippet(text)
	}
	return fallback
}

func snippet(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

// Path formats a route, escaping every segment argument.
func Path(format string, segments ...string) string {
	args := make([]any, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(format, args...)
}
