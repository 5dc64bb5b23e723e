package model

import "time"

// Notification is one entry of the member's notification history.
type Notification struct {
    ID        string    `json:"id"`
    Title     string    `json:"title"`
    Body      string    `json:"body"`
    IsRead    bool      `json:"isRead"`
    CreatedAt time.Time `json:"createdAt"`
}
