package router // package router defines how HTTP routes are registered for the web shell

import (
    "github.com/labstack/echo/v4"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "github.com/redis/go-redis/v9"

    "github.com/cinecatch/client-core/internal/config"
    "github.com/cinecatch/client-core/internal/handler"
    "github.com/cinecatch/client-core/internal/middleware"
)

// RegisterRoutes registers the operational endpoints on the provided Echo
// instance: the health check used by load balancers and the Prometheus
// scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
    e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth registers the auth screen's routes.  Signup and login do
// not require a session; /v1/me reads the stored one and answers 401
// when it is absent or expired.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    g := e.Group("/v1/auth")
    g.POST("/signup", a.Signup)
    g.POST("/login", a.Login)
    g.POST("/logout", a.Logout)

    e.GET("/v1/me", a.Me)
}

// RegisterPublic registers the browse screens: events, theaters and the
// proximity feeds.  These need no session, so their responses can sit
// behind the shared response cache.  The cache middleware is built from
// the given Redis client; a nil client degrades to pass-through.
func RegisterPublic(e *echo.Echo, t *handler.TheaterHandler, ev *handler.EventHandler, rdb *redis.Client, cfg config.CacheConfig) {
    g := e.Group("/v1", middleware.ResponseCache(rdb, cfg))

    g.GET("/events", ev.List)
    g.GET("/events/nearby", ev.Nearby)
    g.GET("/events/:id", ev.Detail)

    g.GET("/theaters", t.List)
    g.GET("/theaters/nearby", t.Nearby)
    g.GET("/theaters/:id", t.Detail)
    g.GET("/theaters/:id/events", ev.ByTheater)
}

// RegisterMember registers the member-specific screens: theater
// subscriptions, favorite events, the notification inbox and push
// settings.  Responses here vary per member and are never cached.
func RegisterMember(e *echo.Echo, s *handler.SubscriptionHandler, n *handler.NotificationHandler) {
    g := e.Group("/v1")

    g.GET("/subscriptions", s.List)
    g.GET("/subscriptions/theater-ids", s.TheaterIDs)
    g.POST("/subscriptions", s.Subscribe)
    g.DELETE("/subscriptions/:theaterId", s.Unsubscribe)

    g.GET("/favorites/event-ids", s.FavoriteEventIDs)
    g.POST("/favorites", s.AddFavorite)
    g.DELETE("/favorites/:eventId", s.RemoveFavorite)

    g.GET("/notifications", n.List)
    g.PUT("/notifications/:id/read", n.MarkRead)
    g.GET("/notifications/unread-count", n.UnreadCount)
    g.GET("/notification-settings", n.Settings)
    g.PUT("/notification-settings", n.UpdateSettings)
    g.POST("/fcm-token", n.RegisterFCMToken)
}
