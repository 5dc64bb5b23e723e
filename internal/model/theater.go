package model

// Theater represents a movie theatre venue as shown to the user.
// A theater may have no known coordinate (the crawler could not geocode
// its address); such theaters must never be presented as "nearby".
//
// Fields:
//  ID                 – opaque backend identifier.
//  Name               – display name, e.g. "CGV 용산아이파크몰".
//  Brand              – brand label, e.g. "CGV", "메가박스".
//  Address            – free-form street address.
//  Coord              – geographic position, nil when unknown.
//  CalculatedDistance – kilometers from the ranking origin.  Attached by
//                       geo.RankTheaters only; never persisted and never
//                       taken from the backend as-is.
type Theater struct {
    ID                 string      `json:"id"`
    Name               string      `json:"name"`
    Brand              string      `json:"brand"`
    Address            string      `json:"address"`
    Coord              *Coordinate `json:"coord,omitempty"`
    CalculatedDistance float64     `json:"calculatedDistance"`
}
