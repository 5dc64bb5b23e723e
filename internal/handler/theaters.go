package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/config"
    "github.com/cinecatch/client-core/internal/gateway"
    "github.com/cinecatch/client-core/internal/geo"
    "github.com/cinecatch/client-core/internal/location"
)

// TheaterHandler serves the theaters screen: the brand-filterable list
// and the map view ranked around the device location.
type TheaterHandler struct {
    Cfg       config.Config
    Theaters  gateway.TheaterService
    Locations *location.Resolver
}

func NewTheaterHandler(cfg config.Config, svc gateway.TheaterService, loc *location.Resolver) *TheaterHandler {
    return &TheaterHandler{Cfg: cfg, Theaters: svc, Locations: loc}
}

// List returns theaters within the requested radius of the device,
// nearest first.  ?brand= narrows to one chain; ?radius= overrides the
// default radius.  Theaters without a known coordinate never appear.
func (h *TheaterHandler) List(c echo.Context) error {
    origin, notice := originOf(c, h.Locations)
    radius := radiusOf(c, h.Cfg.DefaultRadiusKm)

    theaters, err := h.Theaters.All(c.Request().Context(), c.QueryParam("brand"))
    if err != nil {
        return gatewayError(c, err)
    }

    ranked := geo.RankTheaters(origin, radius, theaters)
    return c.JSON(http.StatusOK, echo.Map{
        "items":          ranked,
        "origin":         origin,
        "radiusKm":       radius,
        "locationNotice": notice,
    })
}

// Nearby proxies the backend's nearby search, then re-ranks locally: the
// server-side distance is display data only, membership and order are
// always recomputed from the resolved origin.
func (h *TheaterHandler) Nearby(c echo.Context) error {
    origin, notice := originOf(c, h.Locations)
    radius := radiusOf(c, h.Cfg.DefaultRadiusKm)

    theaters, err := h.Theaters.Nearby(c.Request().Context(), origin, radius)
    if err != nil {
        return gatewayError(c, err)
    }

    ranked := geo.RankTheaters(origin, radius, theaters)
    return c.JSON(http.StatusOK, echo.Map{
        "items":          ranked,
        "origin":         origin,
        "radiusKm":       radius,
        "locationNotice": notice,
    })
}

// Detail returns a single theater.  When the device location is known
// the calculated distance is attached for display.
func (h *TheaterHandler) Detail(c echo.Context) error {
    theater, err := h.Theaters.ByID(c.Request().Context(), c.Param("id"))
    if err != nil {
        return gatewayError(c, err)
    }

    origin, notice := originOf(c, h.Locations)
    if theater.Coord != nil {
        theater.CalculatedDistance = geo.DistanceKm(origin, *theater.Coord)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "theater":        theater,
        "locationNotice": notice,
    })
}
