package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/gateway"
)

// NotificationHandler serves the notification inbox plus the push
// settings on the my-page screen.
type NotificationHandler struct {
    Notifications gateway.NotificationService
    Members       gateway.MemberService
}

func NewNotificationHandler(n gateway.NotificationService, m gateway.MemberService) *NotificationHandler {
    return &NotificationHandler{Notifications: n, Members: m}
}

func (h *NotificationHandler) List(c echo.Context) error {
    items, err := h.Notifications.List(c.Request().Context())
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
    }
    if err := h.Notifications.MarkRead(c.Request().Context(), id); err != nil {
        return gatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// UnreadCount backs the badge on the bell icon.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
    count, err := h.Notifications.UnreadCount(c.Request().Context())
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// Settings reports whether push notifications are enabled for the member.
func (h *NotificationHandler) Settings(c echo.Context) error {
    enabled, err := h.Members.NotificationSettings(c.Request().Context())
    if err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"enabled": enabled})
}

func (h *NotificationHandler) UpdateSettings(c echo.Context) error {
    var req struct {
        Enabled bool `json:"enabled"`
    }
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := h.Members.UpdateNotificationSettings(c.Request().Context(), req.Enabled); err != nil {
        return gatewayError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"enabled": req.Enabled})
}

// RegisterFCMToken forwards the device push token to the backend.
func (h *NotificationHandler) RegisterFCMToken(c echo.Context) error {
    var req struct {
        Token string `json:"token"`
    }
    if err := c.Bind(&req); err != nil || req.Token == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
    }
    if err := h.Members.RegisterFCMToken(c.Request().Context(), req.Token); err != nil {
        return gatewayError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
