package gateway

import (
    "time"

    "github.com/cinecatch/client-core/internal/model"
)

// Backend DTO shapes.  Nullable columns are pointers; mapping decides the
// domain default, never the JSON decoder.

type theaterDTO struct {
    ID        string   `json:"id"`
    Name      string   `json:"name"`
    Brand     string   `json:"brand"`
    Address   string   `json:"address"`
    Latitude  *float64 `json:"latitude"`
    Longitude *float64 `json:"longitude"`
    // Distance is only populated by the nearby endpoint and is display
    // fallback data at best; ranking always recomputes it client-side.
    Distance *float64 `json:"distance"`
}

type theaterInventoryDTO struct {
    TheaterID   *string  `json:"theaterId"`
    TheaterName string   `json:"theaterName"`
    Address     *string  `json:"address"`
    Latitude    *float64 `json:"latitude"`
    Longitude   *float64 `json:"longitude"`
    Status      string   `json:"status"`
}

type eventDTO struct {
    EventID    string                `json:"eventId"`
    MovieTitle string                `json:"movieTitle"`
    GoodsTitle string                `json:"goodsTitle"`
    ImageURL   *string               `json:"imageUrl"`
    StartAt    *string               `json:"startAt"`
    EndAt      *string               `json:"endAt"`
    Theaters   []theaterInventoryDTO `json:"theaters"`
}

type theaterEventDTO struct {
    EventID    string  `json:"eventId"`
    Title      string  `json:"title"`
    MovieTitle string  `json:"movieTitle"`
    Type       string  `json:"type"`
    Status     string  `json:"status"`
    ImageURL   *string `json:"imageUrl"`
    StartAt    string  `json:"startAt"`
    EndAt      string  `json:"endAt"`
}

type subscriptionDTO struct {
    ID           string   `json:"id"`
    TheaterID    string   `json:"theaterId"`
    TheaterName  string   `json:"theaterName"`
    Brand        string   `json:"brand"`
    Address      string   `json:"address"`
    Latitude     *float64 `json:"latitude"`
    Longitude    *float64 `json:"longitude"`
    SubscribedAt string   `json:"subscribedAt"`
}

type tokenDTO struct {
    GrantType            string `json:"grantType"`
    AccessToken          string `json:"accessToken"`
    AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
}

type notificationDTO struct {
    ID        string `json:"id"`
    Title     string `json:"title"`
    Body      string `json:"body"`
    IsRead    bool   `json:"isRead"`
    CreatedAt string `json:"createdAt"`
}

// coordOf builds a Coordinate only when both components are present.  A
// half-known or absent position is an unknown coordinate, never (0,0).
func coordOf(lat, lng *float64) *model.Coordinate {
    if lat == nil || lng == nil {
        return nil
    }
    return &model.Coordinate{Lat: *lat, Lng: *lng}
}

func mapTheater(d theaterDTO) model.Theater {
    t := model.Theater{
        ID:      d.ID,
        Name:    d.Name,
        Brand:   d.Brand,
        Address: d.Address,
        Coord:   coordOf(d.Latitude, d.Longitude),
    }
    if d.Distance != nil {
        t.CalculatedDistance = *d.Distance
    }
    return t
}

func mapTheaters(ds []theaterDTO) []model.Theater {
    out := make([]model.Theater, 0, len(ds))
    for _, d := range ds {
        out = append(out, mapTheater(d))
    }
    return out
}

func mapEvent(d eventDTO) model.MovieEvent {
    theaters := make([]model.TheaterAvailability, 0, len(d.Theaters))
    available := false
    for _, inv := range d.Theaters {
        rec := mapInventory(inv)
        if rec.Status == model.AvailabilityAvailable {
            available = true
        }
        theaters = append(theaters, rec)
    }

    poster := defaultPosterURL
    if d.ImageURL != nil && *d.ImageURL != "" {
        poster = *d.ImageURL
    }

    return model.MovieEvent{
        ID:          d.EventID,
        Title:       d.MovieTitle,
        PosterURL:   poster,
        Category:    classifyCategory(d.GoodsTitle),
        Available:   available,
        Theaters:    theaters,
        Description: d.GoodsTitle,
        Date:        formatEventDate(d.StartAt, d.EndAt),
        Time:        formatEventTime(d.StartAt),
    }
}

func mapEvents(ds []eventDTO) []model.MovieEvent {
    out := make([]model.MovieEvent, 0, len(ds))
    for _, d := range ds {
        out = append(out, mapEvent(d))
    }
    return out
}

func mapInventory(d theaterInventoryDTO) model.TheaterAvailability {
    rec := model.TheaterAvailability{
        TheaterName: d.TheaterName,
        Coord:       coordOf(d.Latitude, d.Longitude),
        Status:      classifyAvailability(d.Status),
        RawStatus:   d.Status,
    }
    if d.TheaterID != nil {
        rec.TheaterID = *d.TheaterID
    }
    if d.Address != nil {
        rec.Address = *d.Address
    }
    return rec
}

func mapSubscription(d subscriptionDTO) model.Subscription {
    return model.Subscription{
        ID:           d.ID,
        TheaterID:    d.TheaterID,
        TheaterName:  d.TheaterName,
        Brand:        d.Brand,
        Address:      d.Address,
        Coord:        coordOf(d.Latitude, d.Longitude),
        SubscribedAt: parseBackendTime(d.SubscribedAt),
    }
}

func mapNotification(d notificationDTO) model.Notification {
    return model.Notification{
        ID:        d.ID,
        Title:     d.Title,
        Body:      d.Body,
        IsRead:    d.IsRead,
        CreatedAt: parseBackendTime(d.CreatedAt),
    }
}

// parseBackendTime accepts the backend's two timestamp renderings: RFC3339
// and the zone-less LocalDateTime form.  Unparseable input maps to the
// zero time rather than an error; timestamps here are display data.
func parseBackendTime(s string) time.Time {
    if s == "" {
        return time.Time{}
    }
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t
    }
    if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
        return t
    }
    return time.Time{}
}
