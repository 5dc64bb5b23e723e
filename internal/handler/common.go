// Package handler exposes the screen-facing HTTP surface of the client
// core.  Each handler does what its screen needs: resolve a location,
// fetch through the gateway, run the proximity pipeline and return JSON
// for the web shell to render.
package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/gateway"
    "github.com/cinecatch/client-core/internal/location"
    "github.com/cinecatch/client-core/internal/model"
)

// originOf resolves the reference coordinate for a screen: coordinates
// sent by the browser win, otherwise the resolver (fix cache, then
// fallback).  The second return is the localized notice to surface when
// the real device location could not be used; it is never an error — the
// screen renders around the fallback coordinate.
func originOf(c echo.Context, resolver *location.Resolver) (model.Coordinate, string) {
    coord, err := location.FromRequest(c.Request())
    if err == nil {
        return coord, ""
    }
    if errors.Is(err, location.ErrPermissionDenied) || errors.Is(err, location.ErrUnsupported) {
        // The browser already answered; asking the resolver again would
        // just re-prompt.  Fall back directly.
        return resolver.Fallback(), location.Reason(err)
    }
    return resolver.Resolve(c.Request().Context())
}

// radiusOf reads the ?radius= query parameter in kilometers.
func radiusOf(c echo.Context, def float64) float64 {
    if v := c.QueryParam("radius"); v != "" {
        if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
            return r
        }
    }
    return def
}

// gatewayError converts a backend failure into the screen's inline error
// response.  Remote failures are transient notices, never a crash.
func gatewayError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, gateway.ErrTimeout):
        return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "요청 시간이 초과되었습니다."})
    case errors.Is(err, gateway.ErrDecode):
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "서버 응답을 읽을 수 없습니다."})
    case errors.Is(err, gateway.ErrNetwork):
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "서버에 연결할 수 없습니다."})
    }
    if status := gateway.StatusOf(err); status != 0 {
        switch status {
        case http.StatusUnauthorized:
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "로그인이 필요합니다."})
        case http.StatusNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "찾을 수 없습니다."})
        default:
            return c.JSON(http.StatusBadGateway, echo.Map{"error": "요청을 처리하지 못했습니다."})
        }
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "알 수 없는 오류가 발생했습니다."})
}
