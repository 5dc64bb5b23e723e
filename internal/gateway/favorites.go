package gateway

import (
    "context"
    "net/url"
)

type favoriteClient struct{ c *Client }

func (f *favoriteClient) EventIDs(ctx context.Context) ([]string, error) {
    var ids []string
    if err := f.c.get(ctx, "/api/favorites/event-ids", &ids); err != nil {
        return nil, err
    }
    return ids, nil
}

func (f *favoriteClient) Add(ctx context.Context, eventID string) error {
    return f.c.post(ctx, "/api/favorites/"+url.PathEscape(eventID), struct{}{}, nil)
}

func (f *favoriteClient) Remove(ctx context.Context, eventID string) error {
    return f.c.delete(ctx, "/api/favorites/"+url.PathEscape(eventID))
}
