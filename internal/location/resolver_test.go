package location

import (
    "context"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/cinecatch/client-core/internal/model"
)

var cityHall = model.Coordinate{Lat: 37.5665, Lng: 126.9780}

func TestResolverReturnsProviderFix(t *testing.T) {
    r := NewResolver(Static(cityHall), time.Second, 0, model.Coordinate{})
    got, err := r.Current(context.Background())
    require.NoError(t, err)
    assert.Equal(t, cityHall, got)
}

func TestResolverTimeout(t *testing.T) {
    slow := ProviderFunc(func(ctx context.Context) (model.Coordinate, error) {
        <-ctx.Done()
        return model.Coordinate{}, ctx.Err()
    })
    r := NewResolver(slow, 20*time.Millisecond, 0, cityHall)

    _, err := r.Current(context.Background())
    assert.ErrorIs(t, err, ErrTimeout)

    got, notice := r.Resolve(context.Background())
    assert.Equal(t, cityHall, got, "fallback coordinate on timeout")
    assert.Equal(t, "위치 요청 시간이 초과되었습니다.", notice)
}

func TestResolverFallbackOnDenied(t *testing.T) {
    denied := ProviderFunc(func(context.Context) (model.Coordinate, error) {
        return model.Coordinate{}, ErrPermissionDenied
    })
    r := NewResolver(denied, time.Second, 0, cityHall)

    got, notice := r.Resolve(context.Background())
    assert.Equal(t, cityHall, got)
    assert.Equal(t, "위치 권한이 거부되었습니다.", notice)
}

func TestResolverCachesFixWithinMaxAge(t *testing.T) {
    calls := 0
    p := ProviderFunc(func(context.Context) (model.Coordinate, error) {
        calls++
        return cityHall, nil
    })
    r := NewResolver(p, time.Second, 5*time.Minute, model.Coordinate{})

    now := time.Unix(1_700_000_000, 0)
    r.now = func() time.Time { return now }

    _, err := r.Current(context.Background())
    require.NoError(t, err)
    _, err = r.Current(context.Background())
    require.NoError(t, err)
    assert.Equal(t, 1, calls, "second call must be served from the fix cache")

    // Age the fix past maxAge; the provider must be consulted again.
    now = now.Add(5*time.Minute + time.Second)
    _, err = r.Current(context.Background())
    require.NoError(t, err)
    assert.Equal(t, 2, calls)
}

func TestResolverFailureNotCached(t *testing.T) {
    calls := 0
    p := ProviderFunc(func(context.Context) (model.Coordinate, error) {
        calls++
        return model.Coordinate{}, ErrPositionUnavailable
    })
    r := NewResolver(p, time.Second, 5*time.Minute, cityHall)

    _, err := r.Current(context.Background())
    assert.ErrorIs(t, err, ErrPositionUnavailable)
    _, err = r.Current(context.Background())
    assert.ErrorIs(t, err, ErrPositionUnavailable)
    assert.Equal(t, 2, calls, "failures are never cached, each call stands alone")
}

func TestFromRequest(t *testing.T) {
    cases := []struct {
        name    string
        url     string
        want    model.Coordinate
        wantErr error
    }{
        {"valid", "/v1/theaters?lat=37.5665&lng=126.9780", cityHall, nil},
        {"denied", "/v1/theaters?geo=denied", model.Coordinate{}, ErrPermissionDenied},
        {"unsupported", "/v1/theaters?geo=unsupported", model.Coordinate{}, ErrUnsupported},
        {"missing", "/v1/theaters", model.Coordinate{}, ErrPositionUnavailable},
        {"malformed", "/v1/theaters?lat=abc&lng=126.9", model.Coordinate{}, ErrPositionUnavailable},
        {"out of range", "/v1/theaters?lat=91&lng=0", model.Coordinate{}, ErrPositionUnavailable},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            req := httptest.NewRequest("GET", tc.url, nil)
            got, err := FromRequest(req)
            if tc.wantErr != nil {
                assert.ErrorIs(t, err, tc.wantErr)
                return
            }
            require.NoError(t, err)
            assert.Equal(t, tc.want, got)
        })
    }
}

func TestReasonGeneric(t *testing.T) {
    assert.Equal(t, "위치를 가져올 수 없습니다.", Reason(assert.AnError))
    assert.Equal(t, "", Reason(nil))
}
