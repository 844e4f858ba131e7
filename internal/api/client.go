package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ejovwogfreeman/gofroma2zafrica-sub001/internal/shared/apperr"
)

const (
	defaultFailureMsg     = "The request could not be completed."
	unreachableMsg        = "We couldn't reach GoFromA2zAfrica right now. Please try again."
	headerIdempotencyKey  = "X-Idempotency-Key"
	maxErrorBodyLogLength = 512
)

// Config configures the backend API client.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Retry applies to GET requests only: transport errors and 5xx
	// responses are retried with exponential backoff. Writes go out once;
	// callers that need write safety send an idempotency key.
	RetryMax  int
	RetryBase time.Duration

	Logger *slog.Logger
}

// Client issues exactly one logical request per operation against the
// backend API and decodes the {success, data, message, pagination} envelope.
type Client struct {
	baseURL   string
	hc        *http.Client
	logger    *slog.Logger
	retryMax  int
	retryBase time.Duration
	token     string
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	retryBase := cfg.RetryBase
	if retryBase <= 0 {
		retryBase = 200 * time.Millisecond
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		hc:        &http.Client{Timeout: timeout},
		logger:    logger,
		retryMax:  cfg.RetryMax,
		retryBase: retryBase,
	}
}

// WithToken returns a copy of the client that authenticates as the given
// session token. The zero token means anonymous.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Pagination *Pagination     `json:"pagination"`
}

// do performs one HTTP round trip and returns the decoded envelope data.
// GET requests retry on transport errors and 5xx; everything else is a
// single attempt.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, headers map[string]string) (json.RawMessage, *Pagination, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, apperr.Wrap(fmt.Errorf("encode request body: %w", err))
		}
		payload = b
	}

	attempt := func() (json.RawMessage, *Pagination, error) {
		return c.roundTrip(ctx, method, path, query, payload, headers)
	}

	if method != http.MethodGet || c.retryMax <= 0 {
		return attempt()
	}

	var data json.RawMessage
	var pg *Pagination
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryBase
	bo.MaxInterval = 5 * time.Second

	err := backoff.Retry(func() error {
		var err error
		data, pg, err = attempt()
		if err == nil {
			return nil
		}
		if retryable(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.retryMax)), ctx))
	if err != nil {
		return nil, nil, err
	}
	return data, pg, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, payload []byte, headers map[string]string) (json.RawMessage, *Pagination, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, nil, apperr.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "api_transport_error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("err", err),
		)
		return nil, nil, &apperr.AppError{Kind: apperr.Unavailable, PublicMsg: unreachableMsg, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, nil, &apperr.AppError{Kind: apperr.Unavailable, PublicMsg: unreachableMsg, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "api_bad_body",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(raw), maxErrorBodyLogLength)),
		)
		return nil, nil, &apperr.AppError{
			Kind:      apperr.Unavailable,
			PublicMsg: unreachableMsg,
			Err:       fmt.Errorf("decode %s %s (status %d): %w", method, path, resp.StatusCode, err),
		}
	}

	if !env.Success {
		return nil, nil, failureError(resp.StatusCode, env.Message, method, path)
	}

	return env.Data, env.Pagination, nil
}

// failureError maps a success:false envelope onto the apperr taxonomy.
// The payload message wins when present; the default stays deliberately
// generic so backend internals never leak into the page.
func failureError(status int, message, method, path string) *apperr.AppError {
	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = defaultFailureMsg
	}
	err := fmt.Errorf("%s %s: backend rejected request (status %d)", method, path, status)

	var kind apperr.Kind
	switch {
	case status == http.StatusNotFound:
		kind = apperr.NotFound
	case status == http.StatusUnauthorized:
		kind = apperr.Unauthorized
	case status == http.StatusForbidden:
		kind = apperr.Forbidden
	case status == http.StatusConflict:
		kind = apperr.Conflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = apperr.Invalid
	case status >= 500:
		kind = apperr.Unavailable
	default:
		kind = apperr.Internal
	}
	return &apperr.AppError{Kind: kind, PublicMsg: msg, Err: err}
}

func retryable(err error) bool {
	ae, ok := apperr.As(err)
	return ok && ae.Kind == apperr.Unavailable
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// get decodes a GET response body into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T
	data, _, err := c.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, apperr.Wrap(fmt.Errorf("decode %s payload: %w", path, err))
	}
	return out, nil
}

// getPaged decodes a GET response body into a []T plus the envelope's
// pagination. A missing pagination block means "no more pages".
func getPaged[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, Pagination, error) {
	data, pg, err := c.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return nil, Pagination{}, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, Pagination{}, apperr.Wrap(fmt.Errorf("decode %s payload: %w", path, err))
	}
	if pg == nil {
		return items, Pagination{HasMore: false}, nil
	}
	return items, *pg, nil
}

// send issues a write (POST/PATCH/PUT/DELETE) and decodes the payload into T.
func send[T any](ctx context.Context, c *Client, method, path string, body any, headers map[string]string) (T, error) {
	var out T
	data, _, err := c.do(ctx, method, path, nil, body, headers)
	if err != nil {
		return out, err
	}
	if len(data) == 0 || string(data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, apperr.Wrap(fmt.Errorf("decode %s payload: %w", path, err))
	}
	return out, nil
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", fmt.Sprintf("%d", o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", o.Limit))
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.SortBy != "" {
		q.Set("sortBy", o.SortBy)
	}
	if o.SortOrder != "" {
		q.Set("sortOrder", o.SortOrder)
	}
	return q
}
