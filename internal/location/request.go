package location

import (
    "context"
    "net/http"
    "strconv"

    "github.com/cinecatch/client-core/internal/model"
)

// FromRequest extracts the coordinate the web shell's frontend obtained
// from the browser geolocation API and sent along as query parameters.
//
//   lat, lng       – device coordinate in degrees
//   geo=denied     – the user rejected the permission prompt
//   geo=unsupported – the browser has no geolocation capability
//
// Missing or malformed parameters map to ErrPositionUnavailable.
func FromRequest(r *http.Request) (model.Coordinate, error) {
    q := r.URL.Query()

    switch q.Get("geo") {
    case "denied":
        return model.Coordinate{}, ErrPermissionDenied
    case "unsupported":
        return model.Coordinate{}, ErrUnsupported
    }

    latStr, lngStr := q.Get("lat"), q.Get("lng")
    if latStr == "" || lngStr == "" {
        return model.Coordinate{}, ErrPositionUnavailable
    }
    lat, err := strconv.ParseFloat(latStr, 64)
    if err != nil {
        return model.Coordinate{}, ErrPositionUnavailable
    }
    lng, err := strconv.ParseFloat(lngStr, 64)
    if err != nil {
        return model.Coordinate{}, ErrPositionUnavailable
    }
    if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
        return model.Coordinate{}, ErrPositionUnavailable
    }
    return model.Coordinate{Lat: lat, Lng: lng}, nil
}

// RequestProvider wraps FromRequest as a Provider so a per-request source
// can be composed with the Resolver.
func RequestProvider(r *http.Request) Provider {
    return ProviderFunc(func(context.Context) (model.Coordinate, error) {
        return FromRequest(r)
    })
}
