// Package location obtains the device's current coordinate.  The browser
// geolocation callback API is restated here as a blocking call: a Provider
// either returns a coordinate or one of the typed failures below, and the
// Resolver adds the timeout, fix-cache and fallback behavior around it.
package location

import (
    "context"
    "errors"

    "github.com/cinecatch/client-core/internal/model"
)

// Typed failures of a location request.  Handlers should translate these
// into the localized reason string via Reason and fall back to the
// configured default coordinate; none of them is fatal.
var (
    ErrPermissionDenied    = errors.New("location: permission denied")
    ErrPositionUnavailable = errors.New("location: position unavailable")
    ErrTimeout             = errors.New("location: request timed out")
    ErrUnsupported         = errors.New("location: not supported")
)

// Provider yields the current device coordinate.  Current blocks until the
// underlying source answers or ctx is done; it is never retried
// automatically, every call stands alone.
type Provider interface {
    Current(ctx context.Context) (model.Coordinate, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context) (model.Coordinate, error)

func (f ProviderFunc) Current(ctx context.Context) (model.Coordinate, error) {
    return f(ctx)
}

// Static returns a Provider that always reports the same coordinate.
func Static(c model.Coordinate) Provider {
    return ProviderFunc(func(context.Context) (model.Coordinate, error) {
        return c, nil
    })
}

// Unsupported returns a Provider for environments without any location
// capability.
func Unsupported() Provider {
    return ProviderFunc(func(context.Context) (model.Coordinate, error) {
        return model.Coordinate{}, ErrUnsupported
    })
}

// Reason maps a location failure to the user-facing message the screens
// display.  The generic message covers unclassified errors.
func Reason(err error) string {
    switch {
    case errors.Is(err, ErrPermissionDenied):
        return "위치 권한이 거부되었습니다."
    case errors.Is(err, ErrPositionUnavailable):
        return "위치 정보를 사용할 수 없습니다."
    case errors.Is(err, ErrTimeout):
        return "위치 요청 시간이 초과되었습니다."
    case errors.Is(err, ErrUnsupported):
        return "브라우저가 위치 서비스를 지원하지 않습니다."
    case err == nil:
        return ""
    default:
        return "위치를 가져올 수 없습니다."
    }
}
