package gateway

import (
    "context"
    "net/http"
    "sort"
    "sync"
    "time"

    "github.com/cinecatch/client-core/internal/model"
    "github.com/cinecatch/client-core/internal/session"
)

// Fixture implementations of the resource services: a small canned
// dataset for development without a running backend.  Selected through
// Options.UseFixtures, never by a package-level flag.

func fixtureCoord(lat, lng float64) *model.Coordinate {
    return &model.Coordinate{Lat: lat, Lng: lng}
}

var fixtureTheaters = []model.Theater{
    {ID: "t1", Name: "CGV 명동", Brand: "CGV", Address: "서울 중구 명동길 14", Coord: fixtureCoord(37.5651, 126.9895)},
    {ID: "t2", Name: "CGV 용산아이파크몰", Brand: "CGV", Address: "서울 용산구 한강대로23길 55", Coord: fixtureCoord(37.5298, 126.9648)},
    {ID: "t3", Name: "메가박스 성수", Brand: "메가박스", Address: "서울 성동구 왕십리로 50", Coord: fixtureCoord(37.5446, 127.0559)},
    {ID: "t4", Name: "롯데시네마 월드타워", Brand: "롯데시네마", Address: "서울 송파구 올림픽로 300", Coord: fixtureCoord(37.5126, 127.1025)},
    {ID: "t5", Name: "씨네큐 신도림", Brand: "씨네큐", Address: "서울 구로구 새말로 97", Coord: nil},
}

var fixtureEvents = []model.MovieEvent{
    {
        ID: "e1", Title: "파묘", PosterURL: defaultPosterURL,
        Category: model.CategoryGoods, Available: true,
        Description: "오리지널 티켓 증정", Date: "3/1 ~ 3/14", Time: "",
        Theaters: []model.TheaterAvailability{
            {TheaterID: "t1", TheaterName: "CGV 명동", Address: "서울 중구 명동길 14", Coord: fixtureCoord(37.5651, 126.9895), Status: model.AvailabilityAvailable, RawStatus: "보유"},
            {TheaterID: "t4", TheaterName: "롯데시네마 월드타워", Address: "서울 송파구 올림픽로 300", Coord: fixtureCoord(37.5126, 127.1025), Status: model.AvailabilityClosed, RawStatus: "마감"},
        },
    },
    {
        ID: "e2", Title: "듄: 파트2", PosterURL: defaultPosterURL,
        Category: model.CategoryGV, Available: true,
        Description: "감독 GV 시사회", Date: "3/8 ~ 3/8", Time: "19:30 시작",
        Theaters: []model.TheaterAvailability{
            {TheaterID: "t2", TheaterName: "CGV 용산아이파크몰", Address: "서울 용산구 한강대로23길 55", Coord: fixtureCoord(37.5298, 126.9648), Status: model.AvailabilityAvailable, RawStatus: "신청 가능"},
        },
    },
    {
        ID: "e3", Title: "웡카", PosterURL: defaultPosterURL,
        Category: model.CategoryCoupon, Available: false,
        Description: "콤보 할인 쿠폰", Date: "날짜 미정", Time: "",
        Theaters: []model.TheaterAvailability{
            {TheaterID: "t3", TheaterName: "메가박스 성수", Address: "서울 성동구 왕십리로 50", Coord: fixtureCoord(37.5446, 127.0559), Status: model.AvailabilityNeedsConfirmation, RawStatus: "문의 요망"},
        },
    },
}

// NewFixtureAPI returns an API backed by the canned dataset.  Mutating
// services (subscriptions, favorites, session-ish member state) keep
// their state in memory so screens behave end to end.
func NewFixtureAPI() *API {
    return &API{
        Theaters:      &fixtureTheaterService{},
        Events:        &fixtureEventService{},
        Subscriptions: &fixtureSubscriptionService{subs: map[string]model.Subscription{}},
        Favorites:     &fixtureFavoriteService{ids: map[string]bool{}},
        Members:       &fixtureMemberService{enabled: true},
        Notifications: &fixtureNotificationService{},
    }
}

type fixtureTheaterService struct{}

func (f *fixtureTheaterService) All(_ context.Context, brand string) ([]model.Theater, error) {
    out := make([]model.Theater, 0, len(fixtureTheaters))
    for _, t := range fixtureTheaters {
        if brand == "" || t.Brand == brand {
            out = append(out, t)
        }
    }
    return out, nil
}

func (f *fixtureTheaterService) Nearby(ctx context.Context, _ model.Coordinate, _ float64) ([]model.Theater, error) {
    // The real nearby filtering happens in the ranking pipeline; the
    // fixture backend just returns everything it has.
    return f.All(ctx, "")
}

func (f *fixtureTheaterService) ByID(_ context.Context, id string) (model.Theater, error) {
    for _, t := range fixtureTheaters {
        if t.ID == id {
            return t, nil
        }
    }
    return model.Theater{}, &HTTPError{Status: http.StatusNotFound, Path: "/api/theaters/" + id}
}

type fixtureEventService struct{}

func (f *fixtureEventService) All(context.Context) ([]model.MovieEvent, error) {
    return append([]model.MovieEvent(nil), fixtureEvents...), nil
}

func (f *fixtureEventService) SearchByMovieTitle(_ context.Context, movieTitle string) ([]model.MovieEvent, error) {
    var out []model.MovieEvent
    for _, e := range fixtureEvents {
        if movieTitle == "" || e.Title == movieTitle {
            out = append(out, e)
        }
    }
    return out, nil
}

func (f *fixtureEventService) Nearby(ctx context.Context, _ model.Coordinate, _ float64) ([]model.MovieEvent, error) {
    return f.All(ctx)
}

func (f *fixtureEventService) ByID(_ context.Context, id string, _ *model.Coordinate, _ float64) (model.MovieEvent, error) {
    for _, e := range fixtureEvents {
        if e.ID == id {
            return e, nil
        }
    }
    return model.MovieEvent{}, &HTTPError{Status: http.StatusNotFound, Path: "/api/events/" + id}
}

func (f *fixtureEventService) ByTheater(_ context.Context, theaterID string) ([]model.MovieEvent, error) {
    var out []model.MovieEvent
    for _, e := range fixtureEvents {
        for _, rec := range e.Theaters {
            if rec.TheaterID == theaterID {
                out = append(out, e)
                break
            }
        }
    }
    return out, nil
}

type fixtureSubscriptionService struct {
    mu   sync.Mutex
    subs map[string]model.Subscription
}

func (f *fixtureSubscriptionService) List(context.Context) ([]model.Subscription, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    out := make([]model.Subscription, 0, len(f.subs))
    for _, s := range f.subs {
        out = append(out, s)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].SubscribedAt.Before(out[j].SubscribedAt) })
    return out, nil
}

func (f *fixtureSubscriptionService) TheaterIDs(context.Context) ([]string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    ids := make([]string, 0, len(f.subs))
    for id := range f.subs {
        ids = append(ids, id)
    }
    sort.Strings(ids)
    return ids, nil
}

func (f *fixtureSubscriptionService) Subscribe(ctx context.Context, theaterID string) (model.Subscription, error) {
    th, err := (&fixtureTheaterService{}).ByID(ctx, theaterID)
    if err != nil {
        return model.Subscription{}, err
    }
    f.mu.Lock()
    defer f.mu.Unlock()
    sub := model.Subscription{
        ID:           "sub-" + theaterID,
        TheaterID:    th.ID,
        TheaterName:  th.Name,
        Brand:        th.Brand,
        Address:      th.Address,
        Coord:        th.Coord,
        SubscribedAt: time.Now(),
    }
    f.subs[theaterID] = sub
    return sub, nil
}

func (f *fixtureSubscriptionService) Unsubscribe(_ context.Context, theaterID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    if _, ok := f.subs[theaterID]; !ok {
        return &HTTPError{Status: http.StatusNotFound, Path: "/api/subscriptions/" + theaterID}
    }
    delete(f.subs, theaterID)
    return nil
}

type fixtureFavoriteService struct {
    mu  sync.Mutex
    ids map[string]bool
}

func (f *fixtureFavoriteService) EventIDs(context.Context) ([]string, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    out := make([]string, 0, len(f.ids))
    for id := range f.ids {
        out = append(out, id)
    }
    sort.Strings(out)
    return out, nil
}

func (f *fixtureFavoriteService) Add(_ context.Context, eventID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.ids[eventID] = true
    return nil
}

func (f *fixtureFavoriteService) Remove(_ context.Context, eventID string) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    delete(f.ids, eventID)
    return nil
}

type fixtureMemberService struct {
    mu      sync.Mutex
    enabled bool
}

func (f *fixtureMemberService) Signup(context.Context, string, string, string) error { return nil }

func (f *fixtureMemberService) Login(_ context.Context, email, _ string) (session.AuthSession, error) {
    return session.AuthSession{
        GrantType:            "Bearer",
        AccessToken:          "fixture-token",
        AccessTokenExpiresIn: time.Now().Add(time.Hour).UnixMilli(),
        Email:                email,
    }, nil
}

func (f *fixtureMemberService) RegisterFCMToken(context.Context, string) error { return nil }

func (f *fixtureMemberService) NotificationSettings(context.Context) (bool, error) {
    f.mu.Lock()
    defer f.mu.Unlock()
    return f.enabled, nil
}

func (f *fixtureMemberService) UpdateNotificationSettings(_ context.Context, enabled bool) error {
    f.mu.Lock()
    defer f.mu.Unlock()
    f.enabled = enabled
    return nil
}

type fixtureNotificationService struct{}

func (f *fixtureNotificationService) List(context.Context) ([]model.Notification, error) {
    return []model.Notification{
        {ID: "n1", Title: "구독 알림", Body: "CGV 명동에 새 굿즈 이벤트가 등록되었습니다.", IsRead: false, CreatedAt: time.Now().Add(-2 * time.Hour)},
        {ID: "n2", Title: "구독 알림", Body: "메가박스 성수 쿠폰 이벤트가 곧 마감됩니다.", IsRead: true, CreatedAt: time.Now().Add(-26 * time.Hour)},
    }, nil
}

func (f *fixtureNotificationService) MarkRead(context.Context, string) error { return nil }

func (f *fixtureNotificationService) UnreadCount(context.Context) (int, error) { return 1, nil }
