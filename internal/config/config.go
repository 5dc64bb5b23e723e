// Package config loads application configuration from environment
// variables.  Every value has a usable default, so the process starts with
// no environment at all; a .env file is merged in when present.
package config

import (
    "os"
    "strconv"
    "time"

    "github.com/joho/godotenv"

    "github.com/cinecatch/client-core/internal/model"
)

// Config holds all runtime settings of the client core.
type Config struct {
    Env  string // application environment label ("dev", "prod")
    Port string // HTTP port the web shell listens on

    APIBaseURL string        // Cine Catch backend base URL
    APITimeout time.Duration // per-request backend timeout

    LocationTimeout time.Duration    // geolocation wait bound
    LocationMaxAge  time.Duration    // cached fix max age
    DefaultCoord    model.Coordinate // fallback when location fails
    DefaultRadiusKm float64          // nearby radius when none given

    SessionKey  string // storage key of the auth session record
    UseFixtures bool   // serve the canned dataset instead of the backend

    Cache CacheConfig
}

// Load reads the environment (after a best-effort .env merge) into a
// Config.  Defaults: backend on localhost:8080, 10 s timeouts, 5 min fix
// cache, Seoul City Hall as the fallback coordinate, 5 km radius.
func Load() Config {
    _ = godotenv.Load()

    return Config{
        Env:  getenv("APP_ENV", "dev"),
        Port: getenv("APP_PORT", "3000"),

        APIBaseURL: getenv("API_BASE_URL", "http://localhost:8080"),
        APITimeout: envMillis("API_TIMEOUT_MS", 10000),

        LocationTimeout: envMillis("LOCATION_TIMEOUT_MS", 10000),
        LocationMaxAge:  envMillis("LOCATION_MAX_AGE_MS", 300000),
        DefaultCoord: model.Coordinate{
            Lat: envFloat("DEFAULT_LAT", 37.5665),
            Lng: envFloat("DEFAULT_LNG", 126.9780),
        },
        DefaultRadiusKm: envFloat("DEFAULT_RADIUS_KM", 5),

        SessionKey:  getenv("SESSION_KEY", "cinecatch_auth"),
        UseFixtures: envBool("USE_FIXTURES", false),

        Cache: LoadCacheConfig(),
    }
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envBool(key string, def bool) bool {
    switch os.Getenv(key) {
    case "1", "true", "TRUE", "True", "yes", "on":
        return true
    case "0", "false", "FALSE", "False", "no", "off":
        return false
    }
    return def
}

func envFloat(key string, def float64) float64 {
    if v := os.Getenv(key); v != "" {
        if f, err := strconv.ParseFloat(v, 64); err == nil {
            return f
        }
    }
    return def
}

// envMillis reads an integer millisecond value.
func envMillis(key string, defMs int) time.Duration {
    ms := defMs
    if v := os.Getenv(key); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            ms = n
        }
    }
    return time.Duration(ms) * time.Millisecond
}
