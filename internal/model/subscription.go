package model

import "time"

// Subscription marks that the logged-in member receives notifications for
// a theater.  Theater display fields are denormalized by the backend so
// the subscriptions screen renders without extra lookups.
//
// Lifecycle: created by an explicit subscribe call, destroyed by an
// explicit unsubscribe call.  There is no implicit expiry.
type Subscription struct {
    ID           string      `json:"id"`
    TheaterID    string      `json:"theaterId"`
    TheaterName  string      `json:"theaterName"`
    Brand        string      `json:"brand"`
    Address      string      `json:"address"`
    Coord        *Coordinate `json:"coord,omitempty"`
    SubscribedAt time.Time   `json:"subscribedAt"`
}
