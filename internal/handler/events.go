package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/config"
    "github.com/cinecatch/client-core/internal/gateway"
    "github.com/cinecatch/client-core/internal/geo"
    "github.com/cinecatch/client-core/internal/location"
)

// EventHandler serves the home and event screens.
type EventHandler struct {
    Cfg       config.Config
    Events    gateway.EventService
    Locations *location.Resolver
}

func NewEventHandler(cfg config.Config, svc gateway.EventService, loc *location.Resolver) *EventHandler {
    return &EventHandler{Cfg: cfg, Events: svc, Locations: loc}
}

// List returns all promotional events; ?movieTitle= switches to the
// title search the home screen's search box uses.
func (h *EventHandler) List(c echo.Context) error {
    ctx := c.Request().Context()

    if title := c.QueryParam("movieTitle"); title != "" {
        events, err := h.Events.SearchByMovieTitle(ctx, title)
        if err != nil {
            return gatewayError(c, err)
        }
        return c.JSON(http.StatusOK, echo.Map{"items": events})
    }

    events, err := h.Events.All(ctx)
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": events})
}

// Nearby is the home screen feed: events that are redeemable at some
// theater within the radius around the device.  Each event's availability
// records are ranked so the nearest theater leads, and events with no
// theater in range are dropped.
func (h *EventHandler) Nearby(c echo.Context) error {
    origin, notice := originOf(c, h.Locations)
    radius := radiusOf(c, h.Cfg.DefaultRadiusKm)

    events, err := h.Events.Nearby(c.Request().Context(), origin, radius)
    if err != nil {
        return gatewayError(c, err)
    }

    out := events[:0]
    for _, ev := range events {
        ev.Theaters = geo.RankAvailability(origin, radius, ev.Theaters)
        if len(ev.Theaters) > 0 {
            out = append(out, ev)
        }
    }

    return c.JSON(http.StatusOK, echo.Map{
        "items":          out,
        "origin":         origin,
        "radiusKm":       radius,
        "locationNotice": notice,
    })
}

// Detail returns one event with its availability records ranked around
// the device location.
func (h *EventHandler) Detail(c echo.Context) error {
    origin, notice := originOf(c, h.Locations)
    radius := radiusOf(c, h.Cfg.DefaultRadiusKm)

    event, err := h.Events.ByID(c.Request().Context(), c.Param("id"), &origin, radius)
    if err != nil {
        return gatewayError(c, err)
    }

    event.Theaters = geo.RankAvailability(origin, radius, event.Theaters)
    return c.JSON(http.StatusOK, echo.Map{
        "event":          event,
        "locationNotice": notice,
    })
}

// ByTheater lists the events running at one theater, for the theater
// detail screen.
func (h *EventHandler) ByTheater(c echo.Context) error {
    events, err := h.Events.ByTheater(c.Request().Context(), c.Param("id"))
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": events})
}
