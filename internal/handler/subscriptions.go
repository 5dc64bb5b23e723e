package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/gateway"
)

// SubscriptionHandler serves the "my theaters" screen.  Subscriptions
// carry denormalized theater fields so the list renders without a second
// round trip.
type SubscriptionHandler struct {
    Subscriptions gateway.SubscriptionService
    Favorites     gateway.FavoriteService
}

func NewSubscriptionHandler(s gateway.SubscriptionService, f gateway.FavoriteService) *SubscriptionHandler {
    return &SubscriptionHandler{Subscriptions: s, Favorites: f}
}

func (h *SubscriptionHandler) List(c echo.Context) error {
    subs, err := h.Subscriptions.List(c.Request().Context())
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": subs})
}

// TheaterIDs returns only the subscribed theater ids, for marking the
// bell icon on the theaters screen.
func (h *SubscriptionHandler) TheaterIDs(c echo.Context) error {
    ids, err := h.Subscriptions.TheaterIDs(c.Request().Context())
    if err != nil {
        return gatewayError(c, err)
    }
    if ids == nil {
        ids = []string{}
    }
    return c.JSON(http.StatusOK, echo.Map{"theaterIds": ids})
}

func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
    var req struct {
        TheaterID string `json:"theaterId"`
    }
    if err := c.Bind(&req); err != nil || req.TheaterID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "theaterId required"})
    }

    sub, err := h.Subscriptions.Subscribe(c.Request().Context(), req.TheaterID)
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
    id := c.Param("theaterId")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "theaterId required"})
    }
    if err := h.Subscriptions.Unsubscribe(c.Request().Context(), id); err != nil {
        return gatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// ----- favorites -----

// FavoriteEventIDs returns the ids of events the member bookmarked.
func (h *SubscriptionHandler) FavoriteEventIDs(c echo.Context) error {
    ids, err := h.Favorites.EventIDs(c.Request().Context())
    if err != nil {
        return gatewayError(c, err)
    }
    if ids == nil {
        ids = []string{}
    }
    return c.JSON(http.StatusOK, echo.Map{"eventIds": ids})
}

func (h *SubscriptionHandler) AddFavorite(c echo.Context) error {
    var req struct {
        EventID string `json:"eventId"`
    }
    if err := c.Bind(&req); err != nil || req.EventID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "eventId required"})
    }
    if err := h.Favorites.Add(c.Request().Context(), req.EventID); err != nil {
        return gatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

func (h *SubscriptionHandler) RemoveFavorite(c echo.Context) error {
    id := c.Param("eventId")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "eventId required"})
    }
    if err := h.Favorites.Remove(c.Request().Context(), id); err != nil {
        return gatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
