package gateway

import (
    "context"
    "time"

    "github.com/cinecatch/client-core/internal/model"
    "github.com/cinecatch/client-core/internal/session"
)

// Per-resource service interfaces, one per backend resource.  Screens
// depend on these, not on the HTTP client, so the fixture implementations
// can stand in.

type TheaterService interface {
    All(ctx context.Context, brand string) ([]model.Theater, error)
    Nearby(ctx context.Context, origin model.Coordinate, radiusKm float64) ([]model.Theater, error)
    ByID(ctx context.Context, id string) (model.Theater, error)
}

type EventService interface {
    All(ctx context.Context) ([]model.MovieEvent, error)
    SearchByMovieTitle(ctx context.Context, movieTitle string) ([]model.MovieEvent, error)
    Nearby(ctx context.Context, origin model.Coordinate, radiusKm float64) ([]model.MovieEvent, error)
    ByID(ctx context.Context, id string, origin *model.Coordinate, radiusKm float64) (model.MovieEvent, error)
    ByTheater(ctx context.Context, theaterID string) ([]model.MovieEvent, error)
}

type SubscriptionService interface {
    List(ctx context.Context) ([]model.Subscription, error)
    TheaterIDs(ctx context.Context) ([]string, error)
    Subscribe(ctx context.Context, theaterID string) (model.Subscription, error)
    Unsubscribe(ctx context.Context, theaterID string) error
}

type FavoriteService interface {
    EventIDs(ctx context.Context) ([]string, error)
    Add(ctx context.Context, eventID string) error
    Remove(ctx context.Context, eventID string) error
}

type MemberService interface {
    Signup(ctx context.Context, email, password, nickname string) error
    Login(ctx context.Context, email, password string) (session.AuthSession, error)
    RegisterFCMToken(ctx context.Context, token string) error
    NotificationSettings(ctx context.Context) (bool, error)
    UpdateNotificationSettings(ctx context.Context, enabled bool) error
}

type NotificationService interface {
    List(ctx context.Context) ([]model.Notification, error)
    MarkRead(ctx context.Context, id string) error
    UnreadCount(ctx context.Context) (int, error)
}

// API bundles one service per backend resource.
type API struct {
    Theaters      TheaterService
    Events        EventService
    Subscriptions SubscriptionService
    Favorites     FavoriteService
    Members       MemberService
    Notifications NotificationService
}

// Options configures gateway construction.  UseFixtures is an explicit
// parameter rather than a package-level flag: when set, New returns the
// canned dataset instead of an HTTP-backed API.
type Options struct {
    BaseURL     string
    Timeout     time.Duration
    Auth        AuthFunc
    UseFixtures bool
}

// New builds the gateway API from Options.
func New(opts Options) *API {
    if opts.UseFixtures {
        return NewFixtureAPI()
    }
    c := NewClient(opts.BaseURL, opts.Timeout, opts.Auth)
    return &API{
        Theaters:      &theaterClient{c},
        Events:        &eventClient{c},
        Subscriptions: &subscriptionClient{c},
        Favorites:     &favoriteClient{c},
        Members:       &memberClient{c},
        Notifications: &notificationClient{c},
    }
}
