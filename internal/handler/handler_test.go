package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/cinecatch/client-core/internal/config"
    "github.com/cinecatch/client-core/internal/gateway"
    "github.com/cinecatch/client-core/internal/location"
    "github.com/cinecatch/client-core/internal/model"
    "github.com/cinecatch/client-core/internal/session"
)

var cityHall = model.Coordinate{Lat: 37.5665, Lng: 126.9780}

func testConfig() config.Config {
    return config.Config{DefaultCoord: cityHall, DefaultRadiusKm: 5}
}

func testResolver() *location.Resolver {
    return location.NewResolver(location.Unsupported(), 0, 0, cityHall)
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
    t.Helper()
    req := httptest.NewRequest(method, target, strings.NewReader(body))
    if body != "" {
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func TestTheaterListRankedFromBrowserCoords(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewTheaterHandler(testConfig(), api.Theaters, testResolver())

    e := echo.New()
    e.GET("/v1/theaters", h.List)

    rec := doJSON(t, e, http.MethodGet, "/v1/theaters?lat=37.5665&lng=126.9780", "")
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Items          []model.Theater `json:"items"`
        RadiusKm       float64         `json:"radiusKm"`
        LocationNotice string          `json:"locationNotice"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

    // Within 5 km of City Hall only Myeongdong and Yongsan qualify; the
    // theater without a coordinate never appears.
    require.Len(t, resp.Items, 2)
    assert.Equal(t, "t1", resp.Items[0].ID)
    assert.Equal(t, "t2", resp.Items[1].ID)
    assert.Less(t, resp.Items[0].CalculatedDistance, resp.Items[1].CalculatedDistance)
    assert.Empty(t, resp.LocationNotice)
    assert.Equal(t, 5.0, resp.RadiusKm)
}

func TestTheaterListDeniedFallsBackWithNotice(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewTheaterHandler(testConfig(), api.Theaters, testResolver())

    e := echo.New()
    e.GET("/v1/theaters", h.List)

    rec := doJSON(t, e, http.MethodGet, "/v1/theaters?geo=denied", "")
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Origin         model.Coordinate `json:"origin"`
        LocationNotice string           `json:"locationNotice"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, cityHall, resp.Origin)
    assert.Equal(t, "위치 권한이 거부되었습니다.", resp.LocationNotice)
}

func TestTheaterDetailNotFound(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewTheaterHandler(testConfig(), api.Theaters, testResolver())

    e := echo.New()
    e.GET("/v1/theaters/:id", h.Detail)

    rec := doJSON(t, e, http.MethodGet, "/v1/theaters/nope", "")
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "찾을 수 없습니다")
}

func TestEventsNearbyDropsOutOfRange(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewEventHandler(testConfig(), api.Events, testResolver())

    e := echo.New()
    e.GET("/v1/events/nearby", h.Nearby)

    rec := doJSON(t, e, http.MethodGet, "/v1/events/nearby?lat=37.5665&lng=126.9780", "")
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Items []model.MovieEvent `json:"items"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

    // e3 runs only at Seongsu (~7 km out) and is dropped; e1 keeps only
    // its in-range theater record.
    require.Len(t, resp.Items, 2)
    for _, ev := range resp.Items {
        assert.NotEqual(t, "e3", ev.ID)
    }
    assert.Equal(t, "e1", resp.Items[0].ID)
    require.Len(t, resp.Items[0].Theaters, 1)
    assert.Equal(t, "t1", resp.Items[0].Theaters[0].TheaterID)
}

func TestEventListSearchByTitle(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewEventHandler(testConfig(), api.Events, testResolver())

    e := echo.New()
    e.GET("/v1/events", h.List)

    rec := doJSON(t, e, http.MethodGet, "/v1/events?movieTitle="+url.QueryEscape("웡카"), "")
    require.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Items []model.MovieEvent `json:"items"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    require.Len(t, resp.Items, 1)
    assert.Equal(t, "e3", resp.Items[0].ID)
}

func TestAuthLoginMeLogoutFlow(t *testing.T) {
    api := gateway.NewFixtureAPI()
    store := session.NewStore(session.NewMemoryKV(), "")
    h := NewAuthHandler(api.Members, store)

    e := echo.New()
    e.POST("/v1/auth/login", h.Login)
    e.POST("/v1/auth/logout", h.Logout)
    e.GET("/v1/me", h.Me)

    rec := doJSON(t, e, http.MethodGet, "/v1/me", "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)

    rec = doJSON(t, e, http.MethodPost, "/v1/auth/login", `{"email":"USER@example.com","password":"pw"}`)
    require.Equal(t, http.StatusOK, rec.Code)

    rec = doJSON(t, e, http.MethodGet, "/v1/me", "")
    require.Equal(t, http.StatusOK, rec.Code)
    var me sessionResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
    assert.Equal(t, "user@example.com", me.Email)
    assert.Equal(t, "Bearer", me.GrantType)

    rec = doJSON(t, e, http.MethodPost, "/v1/auth/logout", "")
    assert.Equal(t, http.StatusNoContent, rec.Code)

    rec = doJSON(t, e, http.MethodGet, "/v1/me", "")
    assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthLoginValidation(t *testing.T) {
    api := gateway.NewFixtureAPI()
    store := session.NewStore(session.NewMemoryKV(), "")
    h := NewAuthHandler(api.Members, store)

    e := echo.New()
    e.POST("/v1/auth/login", h.Login)

    rec := doJSON(t, e, http.MethodPost, "/v1/auth/login", `{"email":"","password":"pw"}`)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewSubscriptionHandler(api.Subscriptions, api.Favorites)

    e := echo.New()
    e.GET("/v1/subscriptions/theater-ids", h.TheaterIDs)
    e.POST("/v1/subscriptions", h.Subscribe)
    e.DELETE("/v1/subscriptions/:theaterId", h.Unsubscribe)

    rec := doJSON(t, e, http.MethodPost, "/v1/subscriptions", `{"theaterId":"t1"}`)
    require.Equal(t, http.StatusCreated, rec.Code)

    var sub model.Subscription
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
    assert.Equal(t, "t1", sub.TheaterID)
    assert.Equal(t, "CGV 명동", sub.TheaterName)

    rec = doJSON(t, e, http.MethodGet, "/v1/subscriptions/theater-ids", "")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"t1"`)

    rec = doJSON(t, e, http.MethodDelete, "/v1/subscriptions/t1", "")
    assert.Equal(t, http.StatusNoContent, rec.Code)

    rec = doJSON(t, e, http.MethodDelete, "/v1/subscriptions/t1", "")
    assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationSettingsRoundTrip(t *testing.T) {
    api := gateway.NewFixtureAPI()
    h := NewNotificationHandler(api.Notifications, api.Members)

    e := echo.New()
    e.GET("/v1/notification-settings", h.Settings)
    e.PUT("/v1/notification-settings", h.UpdateSettings)
    e.GET("/v1/notifications/unread-count", h.UnreadCount)

    rec := doJSON(t, e, http.MethodPut, "/v1/notification-settings", `{"enabled":false}`)
    require.Equal(t, http.StatusOK, rec.Code)

    rec = doJSON(t, e, http.MethodGet, "/v1/notification-settings", "")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"enabled":false}`, rec.Body.String())

    rec = doJSON(t, e, http.MethodGet, "/v1/notifications/unread-count", "")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"count":1}`, rec.Body.String())
}
