package gateway

import (
    "context"
    "net/url"

    "github.com/cinecatch/client-core/internal/model"
)

type subscriptionClient struct{ c *Client }

func (s *subscriptionClient) List(ctx context.Context) ([]model.Subscription, error) {
    var dtos []subscriptionDTO
    if err := s.c.get(ctx, "/api/subscriptions", &dtos); err != nil {
        return nil, err
    }
    out := make([]model.Subscription, 0, len(dtos))
    for _, d := range dtos {
        out = append(out, mapSubscription(d))
    }
    return out, nil
}

func (s *subscriptionClient) TheaterIDs(ctx context.Context) ([]string, error) {
    var ids []string
    if err := s.c.get(ctx, "/api/subscriptions/theater-ids", &ids); err != nil {
        return nil, err
    }
    return ids, nil
}

func (s *subscriptionClient) Subscribe(ctx context.Context, theaterID string) (model.Subscription, error) {
    var dto subscriptionDTO
    body := map[string]string{"theaterId": theaterID}
    if err := s.c.post(ctx, "/api/subscriptions", body, &dto); err != nil {
        return model.Subscription{}, err
    }
    return mapSubscription(dto), nil
}

func (s *subscriptionClient) Unsubscribe(ctx context.Context, theaterID string) error {
    return s.c.delete(ctx, "/api/subscriptions/"+url.PathEscape(theaterID))
}
