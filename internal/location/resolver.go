package location

import (
    "context"
    "errors"
    "sync"
    "time"

    "github.com/cinecatch/client-core/internal/metrics"
    "github.com/cinecatch/client-core/internal/model"
)

const (
    // DefaultTimeout bounds the geolocation wait; DefaultMaxAge keeps a
    // fix for reuse (the browser maximumAge analog).
    DefaultTimeout = 10 * time.Second
    DefaultMaxAge  = 5 * time.Minute
)

// Resolver turns a raw Provider into the contract the screens rely on:
// a bounded wait, an optional cached fix, and a guaranteed coordinate.
type Resolver struct {
    provider Provider
    timeout  time.Duration
    maxAge   time.Duration
    fallback model.Coordinate

    now func() time.Time

    mu    sync.Mutex
    fix   model.Coordinate
    fixAt time.Time
}

// NewResolver builds a Resolver.  A non-positive timeout or maxAge falls
// back to the defaults above; maxAge zero disables the fix cache.
func NewResolver(p Provider, timeout, maxAge time.Duration, fallback model.Coordinate) *Resolver {
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    if maxAge < 0 {
        maxAge = DefaultMaxAge
    }
    return &Resolver{
        provider: p,
        timeout:  timeout,
        maxAge:   maxAge,
        fallback: fallback,
        now:      time.Now,
    }
}

// Current returns the device coordinate or a typed failure.  A cached fix
// no older than maxAge is returned without consulting the provider.  The
// provider call is bounded by the configured timeout; expiry surfaces as
// ErrTimeout, it never leaves the caller waiting.
func (r *Resolver) Current(ctx context.Context) (model.Coordinate, error) {
    r.mu.Lock()
    if r.maxAge > 0 && !r.fixAt.IsZero() && r.now().Sub(r.fixAt) <= r.maxAge {
        fix := r.fix
        r.mu.Unlock()
        return fix, nil
    }
    r.mu.Unlock()

    ctx, cancel := context.WithTimeout(ctx, r.timeout)
    defer cancel()

    c, err := r.provider.Current(ctx)
    if err != nil {
        if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
            return model.Coordinate{}, ErrTimeout
        }
        return model.Coordinate{}, err
    }

    r.mu.Lock()
    r.fix = c
    r.fixAt = r.now()
    r.mu.Unlock()
    return c, nil
}

// Resolve is Current plus the fallback rule: on any failure it returns the
// configured default coordinate together with the localized reason so the
// screen can render immediately and show a notice instead of blocking.
func (r *Resolver) Resolve(ctx context.Context) (model.Coordinate, string) {
    c, err := r.Current(ctx)
    if err != nil {
        metrics.LocationFallbacksTotal.WithLabelValues(fallbackLabel(err)).Inc()
        return r.fallback, Reason(err)
    }
    return c, ""
}

func fallbackLabel(err error) string {
    switch {
    case errors.Is(err, ErrPermissionDenied):
        return "permission_denied"
    case errors.Is(err, ErrPositionUnavailable):
        return "position_unavailable"
    case errors.Is(err, ErrTimeout):
        return "timeout"
    case errors.Is(err, ErrUnsupported):
        return "unsupported"
    default:
        return "other"
    }
}

// Fallback exposes the configured default coordinate.
func (r *Resolver) Fallback() model.Coordinate {
    return r.fallback
}
