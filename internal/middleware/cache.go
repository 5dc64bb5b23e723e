// Package middleware holds reusable HTTP middleware for the web shell.
package middleware

import (
    "bytes"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/cinecatch/client-core/internal/config"
    "github.com/cinecatch/client-core/internal/metrics"
)

// bodyCapture duplicates the response body up to a size limit while
// streaming it to the client, so a successful render can be cached.
type bodyCapture struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    limit  int
    over   bool
}

func (b *bodyCapture) WriteHeader(code int) {
    b.status = code
    b.ResponseWriter.WriteHeader(code)
}

func (b *bodyCapture) Write(p []byte) (int, error) {
    if !b.over {
        if b.buf.Len()+len(p) <= b.limit {
            b.buf.Write(p)
        } else {
            b.over = true
            b.buf.Reset()
        }
    }
    return b.ResponseWriter.Write(p)
}

type cachedResponse struct {
    Status      int    `json:"status"`
    ContentType string `json:"contentType"`
    Body        []byte `json:"body"`
}

func cacheKey(prefix string, c echo.Context) string {
    r := c.Request()
    sum := sha1.Sum([]byte(c.Path() + "?" + r.URL.RawQuery))
    return fmt.Sprintf("%s:%x", prefix, sum)
}

// ResponseCache caches successful GET responses of the screen routes in
// Redis for the configured TTL.  A nil client or disabled config yields a
// pass-through middleware, the app must run without Redis.  Authenticated
// screens (subscriptions, notifications, me) must not be registered
// behind this middleware; their responses are member-specific.
func ResponseCache(client *redis.Client, cfg config.CacheConfig) echo.MiddlewareFunc {
    enabled := cfg.Enabled && client != nil

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !enabled || c.Request().Method != http.MethodGet {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKey(cfg.Prefix, c)

            if raw, err := client.Get(ctx, key).Bytes(); err == nil {
                var cached cachedResponse
                if json.Unmarshal(raw, &cached) == nil {
                    metrics.CacheResultsTotal.WithLabelValues("hit").Inc()
                    return c.Blob(cached.Status, cached.ContentType, cached.Body)
                }
                // Unreadable entry: fall through and overwrite it.
                _ = client.Del(ctx, key).Err()
            }
            metrics.CacheResultsTotal.WithLabelValues("miss").Inc()

            cap := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = cap

            if err := next(c); err != nil {
                return err
            }

            if cap.status == http.StatusOK && !cap.over && cap.buf.Len() > 0 {
                entry := cachedResponse{
                    Status:      cap.status,
                    ContentType: c.Response().Header().Get(echo.HeaderContentType),
                    Body:        cap.buf.Bytes(),
                }
                if raw, err := json.Marshal(entry); err == nil {
                    _ = client.Set(ctx, key, raw, orSecond(cfg.TTL)).Err()
                }
            }
            return nil
        }
    }
}

func orSecond(d time.Duration) time.Duration {
    if d <= 0 {
        return time.Second
    }
    return d
}
