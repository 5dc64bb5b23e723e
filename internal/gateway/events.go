package gateway

import (
    "context"
    "fmt"
    "net/url"

    "github.com/cinecatch/client-core/internal/model"
)

type eventClient struct{ c *Client }

func (e *eventClient) All(ctx context.Context) ([]model.MovieEvent, error) {
    var dtos []eventDTO
    if err := e.c.get(ctx, "/api/events", &dtos); err != nil {
        return nil, err
    }
    return mapEvents(dtos), nil
}

func (e *eventClient) SearchByMovieTitle(ctx context.Context, movieTitle string) ([]model.MovieEvent, error) {
    var dtos []eventDTO
    path := "/api/events?movieTitle=" + url.QueryEscape(movieTitle)
    if err := e.c.get(ctx, path, &dtos); err != nil {
        return nil, err
    }
    return mapEvents(dtos), nil
}

func (e *eventClient) Nearby(ctx context.Context, origin model.Coordinate, radiusKm float64) ([]model.MovieEvent, error) {
    q := url.Values{}
    q.Set("lat", fmt.Sprintf("%g", origin.Lat))
    q.Set("lng", fmt.Sprintf("%g", origin.Lng))
    if radiusKm > 0 {
        q.Set("radius", fmt.Sprintf("%g", radiusKm))
    }
    var dtos []eventDTO
    if err := e.c.get(ctx, "/api/events/nearby?"+q.Encode(), &dtos); err != nil {
        return nil, err
    }
    return mapEvents(dtos), nil
}

func (e *eventClient) ByID(ctx context.Context, id string, origin *model.Coordinate, radiusKm float64) (model.MovieEvent, error) {
    path := "/api/events/" + url.PathEscape(id)
    if origin != nil {
        q := url.Values{}
        q.Set("lat", fmt.Sprintf("%g", origin.Lat))
        q.Set("lng", fmt.Sprintf("%g", origin.Lng))
        if radiusKm > 0 {
            q.Set("radius", fmt.Sprintf("%g", radiusKm))
        }
        path += "?" + q.Encode()
    }
    var dto eventDTO
    if err := e.c.get(ctx, path, &dto); err != nil {
        return model.MovieEvent{}, err
    }
    return mapEvent(dto), nil
}

func (e *eventClient) ByTheater(ctx context.Context, theaterID string) ([]model.MovieEvent, error) {
    var dtos []theaterEventDTO
    if err := e.c.get(ctx, "/api/events/theater/"+url.PathEscape(theaterID), &dtos); err != nil {
        return nil, err
    }
    out := make([]model.MovieEvent, 0, len(dtos))
    for _, d := range dtos {
        poster := defaultPosterURL
        if d.ImageURL != nil && *d.ImageURL != "" {
            poster = *d.ImageURL
        }
        startAt, endAt := d.StartAt, d.EndAt
        out = append(out, model.MovieEvent{
            ID:          d.EventID,
            Title:       d.MovieTitle,
            PosterURL:   poster,
            Category:    classifyCategory(d.Title),
            Available:   classifyAvailability(d.Status) == model.AvailabilityAvailable,
            Description: d.Title,
            Date:        formatEventDate(&startAt, &endAt),
            Time:        formatEventTime(&startAt),
        })
    }
    return out, nil
}
