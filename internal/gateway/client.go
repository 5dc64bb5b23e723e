package gateway

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/cinecatch/client-core/internal/metrics"
)

// DefaultTimeout bounds every backend request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// AuthFunc supplies the Authorization header value for a request, or ""
// for anonymous calls.  It is consulted per request so that a login or
// logout between two calls takes effect immediately.
type AuthFunc func(ctx context.Context) string

// Client is the thin HTTP wrapper every resource service is built on:
// base URL joining, per-request timeout, JSON encode/decode and the
// failure taxonomy of errors.go.  Requests are never retried.
type Client struct {
    baseURL string
    http    *http.Client
    timeout time.Duration
    auth    AuthFunc
}

// NewClient builds a Client.  A non-positive timeout falls back to
// DefaultTimeout; a nil auth func means all requests are anonymous.
func NewClient(baseURL string, timeout time.Duration, auth AuthFunc) *Client {
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    return &Client{
        baseURL: strings.TrimRight(baseURL, "/"),
        http:    &http.Client{},
        timeout: timeout,
        auth:    auth,
    }
}

func (c *Client) get(ctx context.Context, path string, out any) error {
    return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
    return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
    return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
    return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
    ctx, cancel := context.WithTimeout(ctx, c.timeout)
    defer cancel()

    var payload io.Reader
    if body != nil {
        raw, err := json.Marshal(body)
        if err != nil {
            return fmt.Errorf("encode request: %w", err)
        }
        payload = bytes.NewReader(raw)
    }

    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
    if err != nil {
        return fmt.Errorf("build request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")
    if c.auth != nil {
        if header := c.auth(ctx); header != "" {
            req.Header.Set("Authorization", header)
        }
    }

    resource := resourceLabel(path)
    start := time.Now()
    resp, err := c.http.Do(req)
    metrics.GatewayRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
    if err != nil {
        if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
            metrics.GatewayRequestsTotal.WithLabelValues(resource, "timeout").Inc()
            return fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
        }
        metrics.GatewayRequestsTotal.WithLabelValues(resource, "network_error").Inc()
        return fmt.Errorf("%w: %v", ErrNetwork, err)
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        io.Copy(io.Discard, resp.Body)
        metrics.GatewayRequestsTotal.WithLabelValues(resource, "http_error").Inc()
        return &HTTPError{Status: resp.StatusCode, Path: path}
    }

    if out != nil {
        if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
            metrics.GatewayRequestsTotal.WithLabelValues(resource, "decode_error").Inc()
            return fmt.Errorf("%w: %v", ErrDecode, err)
        }
    }
    metrics.GatewayRequestsTotal.WithLabelValues(resource, "ok").Inc()
    return nil
}

// resourceLabel keeps metric cardinality bounded: the first path segment
// after /api/, ids stripped by construction of the call sites.
func resourceLabel(path string) string {
    p := strings.TrimPrefix(path, "/api/")
    if i := strings.IndexAny(p, "/?"); i >= 0 {
        p = p[:i]
    }
    if p == "" {
        return "unknown"
    }
    return p
}
