package gateway

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/cinecatch/client-core/internal/model"
)

func TestTheaterClientMapsResponse(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/api/theaters", r.URL.Path)
        assert.Equal(t, "CGV", r.URL.Query().Get("brand"))
        w.Header().Set("Content-Type", "application/json")
        w.Write([]byte(`[
            {"id":"t1","name":"CGV 명동","brand":"CGV","address":"서울 중구","latitude":37.5651,"longitude":126.9895},
            {"id":"t9","name":"주소만 아는 극장","brand":"CGV","address":"서울 어딘가","latitude":null,"longitude":null}
        ]`))
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL})
    got, err := api.Theaters.All(context.Background(), "CGV")
    require.NoError(t, err)
    require.Len(t, got, 2)
    require.NotNil(t, got[0].Coord)
    assert.Equal(t, model.Coordinate{Lat: 37.5651, Lng: 126.9895}, *got[0].Coord)
    assert.Nil(t, got[1].Coord)
}

func TestClientSendsAuthorizationHeader(t *testing.T) {
    var gotHeader string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotHeader = r.Header.Get("Authorization")
        w.Write([]byte(`[]`))
    }))
    defer srv.Close()

    auth := func(context.Context) string { return "Bearer abc" }
    api := New(Options{BaseURL: srv.URL, Auth: auth})
    _, err := api.Subscriptions.List(context.Background())
    require.NoError(t, err)
    assert.Equal(t, "Bearer abc", gotHeader)
}

func TestClientAnonymousWithoutSession(t *testing.T) {
    var sawHeader bool
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        _, sawHeader = r.Header["Authorization"]
        w.Write([]byte(`[]`))
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL, Auth: func(context.Context) string { return "" }})
    _, err := api.Theaters.All(context.Background(), "")
    require.NoError(t, err)
    assert.False(t, sawHeader)
}

func TestClientHTTPError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "nope", http.StatusUnauthorized)
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL})
    _, err := api.Subscriptions.List(context.Background())
    require.Error(t, err)
    assert.Equal(t, http.StatusUnauthorized, StatusOf(err))

    var he *HTTPError
    require.ErrorAs(t, err, &he)
    assert.Equal(t, "/api/subscriptions", he.Path)
}

func TestClientTimeout(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        <-r.Context().Done()
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL, Timeout: 30 * time.Millisecond})
    start := time.Now()
    _, err := api.Theaters.All(context.Background(), "")
    assert.ErrorIs(t, err, ErrTimeout)
    assert.Less(t, time.Since(start), 5*time.Second, "timeout must abort deterministically")
}

func TestClientDecodeError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"definitely":`))
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL})
    _, err := api.Theaters.All(context.Background(), "")
    assert.ErrorIs(t, err, ErrDecode)
}

func TestClientNetworkError(t *testing.T) {
    // Closed port: connection refused before any status line.
    api := New(Options{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
    _, err := api.Theaters.All(context.Background(), "")
    assert.ErrorIs(t, err, ErrNetwork)
}

func TestMemberLogin(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Write([]byte(`{"grantType":"Bearer","accessToken":"abc","accessTokenExpiresIn":4102444800000}`))
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL})
    sess, err := api.Members.Login(context.Background(), "user@example.com", "pw")
    require.NoError(t, err)
    assert.Equal(t, "Bearer", sess.GrantType)
    assert.Equal(t, "abc", sess.AccessToken)
    assert.Equal(t, int64(4102444800000), sess.AccessTokenExpiresIn)
    assert.Equal(t, "user@example.com", sess.Email)
    assert.True(t, sess.IsValid())
}

func TestMemberLoginExpiryFallbackFromToken(t *testing.T) {
    exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
    tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "m1", "exp": exp.Unix()})
    signed, err := tok.SignedString([]byte("backend-secret"))
    require.NoError(t, err)

    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        resp, _ := json.Marshal(map[string]any{"grantType": "Bearer", "accessToken": signed})
        w.Write(resp)
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL})
    sess, err := api.Members.Login(context.Background(), "user@example.com", "pw")
    require.NoError(t, err)
    assert.Equal(t, exp.UnixMilli(), sess.AccessTokenExpiresIn,
        "missing accessTokenExpiresIn is recovered from the token's exp claim")
}

func TestNotificationUnreadCount(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/api/notifications/unread-count", r.URL.Path)
        w.Write([]byte(`{"count":3}`))
    }))
    defer srv.Close()

    api := New(Options{BaseURL: srv.URL})
    n, err := api.Notifications.UnreadCount(context.Background())
    require.NoError(t, err)
    assert.Equal(t, 3, n)
}
