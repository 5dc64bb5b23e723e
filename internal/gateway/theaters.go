package gateway

import (
    "context"
    "fmt"
    "net/url"

    "github.com/cinecatch/client-core/internal/model"
)

type theaterClient struct{ c *Client }

func (t *theaterClient) All(ctx context.Context, brand string) ([]model.Theater, error) {
    path := "/api/theaters"
    if brand != "" {
        path += "?brand=" + url.QueryEscape(brand)
    }
    var dtos []theaterDTO
    if err := t.c.get(ctx, path, &dtos); err != nil {
        return nil, err
    }
    return mapTheaters(dtos), nil
}

func (t *theaterClient) Nearby(ctx context.Context, origin model.Coordinate, radiusKm float64) ([]model.Theater, error) {
    q := url.Values{}
    q.Set("lat", fmt.Sprintf("%g", origin.Lat))
    q.Set("lng", fmt.Sprintf("%g", origin.Lng))
    if radiusKm > 0 {
        q.Set("radius", fmt.Sprintf("%g", radiusKm))
    }
    var dtos []theaterDTO
    if err := t.c.get(ctx, "/api/theaters/nearby?"+q.Encode(), &dtos); err != nil {
        return nil, err
    }
    return mapTheaters(dtos), nil
}

func (t *theaterClient) ByID(ctx context.Context, id string) (model.Theater, error) {
    var dto theaterDTO
    if err := t.c.get(ctx, "/api/theaters/"+url.PathEscape(id), &dto); err != nil {
        return model.Theater{}, err
    }
    return mapTheater(dto), nil
}
