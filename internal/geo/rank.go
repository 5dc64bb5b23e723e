package geo

import (
    "math"
    "sort"

    "github.com/cinecatch/client-core/internal/model"
)

// RankTheaters annotates every theater with its distance from origin,
// drops entries beyond radiusKm and returns the rest sorted nearest-first.
//
// Theaters without a known coordinate get distance +Inf so they can never
// pass a finite radius filter: "location unknown" must not look "nearby".
// The sort is stable, so theaters at equal distance keep their input order.
// The input slice is not modified.
func RankTheaters(origin model.Coordinate, radiusKm float64, theaters []model.Theater) []model.Theater {
    out := make([]model.Theater, 0, len(theaters))
    for _, t := range theaters {
        if t.Coord != nil {
            t.CalculatedDistance = DistanceKm(origin, *t.Coord)
        } else {
            t.CalculatedDistance = math.Inf(1)
        }
        if t.CalculatedDistance <= radiusKm {
            out = append(out, t)
        }
    }
    sort.SliceStable(out, func(i, j int) bool {
        return out[i].CalculatedDistance < out[j].CalculatedDistance
    })
    return out
}

// RankAvailability applies the same annotate/filter/sort policy to the
// per-theater availability records of an event detail screen.
func RankAvailability(origin model.Coordinate, radiusKm float64, records []model.TheaterAvailability) []model.TheaterAvailability {
    out := make([]model.TheaterAvailability, 0, len(records))
    for _, r := range records {
        if r.Coord != nil {
            r.CalculatedDistance = DistanceKm(origin, *r.Coord)
        } else {
            r.CalculatedDistance = math.Inf(1)
        }
        if r.CalculatedDistance <= radiusKm {
            out = append(out, r)
        }
    }
    sort.SliceStable(out, func(i, j int) bool {
        return out[i].CalculatedDistance < out[j].CalculatedDistance
    })
    return out
}
