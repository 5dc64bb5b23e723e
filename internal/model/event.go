package model

// EventCategory classifies a promotional event.
type EventCategory string

const (
    CategoryGoods  EventCategory = "Goods"  // goods giveaway
    CategoryCoupon EventCategory = "Coupon" // discount / coupon promotion
    CategoryGV     EventCategory = "GV"     // guest-visit screening (Q&A session)
)

// Availability describes whether an event can still be redeemed at a
// particular theater.  Status text from the backend is free-form crawler
// output, so anything we cannot positively classify is reported as
// AvailabilityNeedsConfirmation rather than asserted as available.
type Availability string

const (
    AvailabilityAvailable         Availability = "AVAILABLE"
    AvailabilityClosed            Availability = "CLOSED"
    AvailabilityNeedsConfirmation Availability = "NEEDS_CONFIRMATION"
)

// TheaterAvailability is one per-theater record of a MovieEvent.
// Coord is nil when the backend has no position for the theater.
type TheaterAvailability struct {
    TheaterID          string       `json:"theaterId"`
    TheaterName        string       `json:"theaterName"`
    Address            string       `json:"address"`
    Coord              *Coordinate  `json:"coord,omitempty"`
    Status             Availability `json:"status"`
    RawStatus          string       `json:"rawStatus"`
    CalculatedDistance float64      `json:"calculatedDistance"`
}

// MovieEvent is a promotional event attached to a movie.
// Date and Time are human-readable display strings ("M/D ~ M/D",
// "HH:MM 시작"); parsing them back is not supported.
type MovieEvent struct {
    ID          string                `json:"id"`
    Title       string                `json:"title"`
    PosterURL   string                `json:"posterUrl"`
    Category    EventCategory         `json:"category"`
    Available   bool                  `json:"available"`
    Theaters    []TheaterAvailability `json:"theaters"`
    Description string                `json:"description"`
    Date        string                `json:"date"`
    Time        string                `json:"time"`
}
