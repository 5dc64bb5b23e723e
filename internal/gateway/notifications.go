package gateway

import (
    "context"
    "net/url"

    "github.com/cinecatch/client-core/internal/model"
)

type notificationClient struct{ c *Client }

func (n *notificationClient) List(ctx context.Context) ([]model.Notification, error) {
    var dtos []notificationDTO
    if err := n.c.get(ctx, "/api/notifications", &dtos); err != nil {
        return nil, err
    }
    out := make([]model.Notification, 0, len(dtos))
    for _, d := range dtos {
        out = append(out, mapNotification(d))
    }
    return out, nil
}

func (n *notificationClient) MarkRead(ctx context.Context, id string) error {
    return n.c.put(ctx, "/api/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (n *notificationClient) UnreadCount(ctx context.Context) (int, error) {
    var resp struct {
        Count int `json:"count"`
    }
    if err := n.c.get(ctx, "/api/notifications/unread-count", &resp); err != nil {
        return 0, err
    }
    return resp.Count, nil
}
