package main // Entry point package

import (
    "log"

    "github.com/labstack/echo/v4"

    "github.com/cinecatch/client-core/internal/config"
    "github.com/cinecatch/client-core/internal/gateway"
    "github.com/cinecatch/client-core/internal/handler"
    "github.com/cinecatch/client-core/internal/location"
    "github.com/cinecatch/client-core/internal/router"
    "github.com/cinecatch/client-core/internal/session"
)

func main() {
    cfg := config.Load() // Load environment config

    // Redis backs the session record and the response cache.  When it is
    // unreachable the shell still runs: sessions fall back to process
    // memory and the cache middleware passes through.
    rdb := config.NewRedisClient()
    var kv session.KV
    if rdb != nil {
        kv = session.NewRedisKV(rdb)
    } else {
        log.Println("redis unavailable, sessions are in-memory only")
        kv = session.NewMemoryKV()
    }
    store := session.NewStore(kv, cfg.SessionKey)

    api := gateway.New(gateway.Options{
        BaseURL:     cfg.APIBaseURL,
        Timeout:     cfg.APITimeout,
        Auth:        store.AuthorizationHeader,
        UseFixtures: cfg.UseFixtures,
    })
    if cfg.UseFixtures {
        log.Println("serving fixture dataset, backend calls disabled")
    }

    // The server has no geolocation hardware of its own; coordinates
    // arrive as query parameters from the browser.  The resolver covers
    // requests that carry none.
    resolver := location.NewResolver(
        location.Unsupported(),
        cfg.LocationTimeout,
        cfg.LocationMaxAge,
        cfg.DefaultCoord,
    )

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(api.Members, store))
    router.RegisterPublic(e,
        handler.NewTheaterHandler(cfg, api.Theaters, resolver),
        handler.NewEventHandler(cfg, api.Events, resolver),
        rdb, cfg.Cache,
    )
    router.RegisterMember(e,
        handler.NewSubscriptionHandler(api.Subscriptions, api.Favorites),
        handler.NewNotificationHandler(api.Notifications, api.Members),
    )

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
