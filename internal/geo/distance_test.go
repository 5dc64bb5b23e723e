package geo

import (
    "math"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/cinecatch/client-core/internal/model"
)

var (
    seoulCityHall = model.Coordinate{Lat: 37.5665, Lng: 126.9780}
    myeongdong    = model.Coordinate{Lat: 37.5651, Lng: 126.9895}
)

func TestDistanceKmIdentity(t *testing.T) {
    points := []model.Coordinate{
        seoulCityHall,
        {Lat: 0, Lng: 0},
        {Lat: -33.8688, Lng: 151.2093},
        {Lat: 90, Lng: 0},
        {Lat: -90, Lng: 180},
    }
    for _, p := range points {
        assert.InDelta(t, 0, DistanceKm(p, p), 1e-9)
    }
}

func TestDistanceKmSymmetric(t *testing.T) {
    pairs := [][2]model.Coordinate{
        {seoulCityHall, myeongdong},
        {{Lat: 51.5074, Lng: -0.1278}, {Lat: 40.7128, Lng: -74.0060}},
        {{Lat: -90, Lng: 0}, {Lat: 90, Lng: 0}},
        {{Lat: 10, Lng: 179.9}, {Lat: 10, Lng: -179.9}},
    }
    for _, pair := range pairs {
        assert.Equal(t, DistanceKm(pair[0], pair[1]), DistanceKm(pair[1], pair[0]))
    }
}

func TestDistanceKmSeoulFixture(t *testing.T) {
    // City Hall to Myeongdong Station is roughly one kilometer.
    d := DistanceKm(seoulCityHall, myeongdong)
    assert.Greater(t, d, 1.0)
    assert.Less(t, d, 1.1)
}

func TestDistanceKmNeverNegativeOrNaN(t *testing.T) {
    extremes := []model.Coordinate{
        {Lat: 90, Lng: 180}, {Lat: -90, Lng: -180},
        {Lat: 0, Lng: 0}, {Lat: 45, Lng: 90}, {Lat: -45, Lng: -90},
    }
    for _, a := range extremes {
        for _, b := range extremes {
            d := DistanceKm(a, b)
            assert.False(t, math.IsNaN(d), "NaN for %+v %+v", a, b)
            assert.GreaterOrEqual(t, d, 0.0)
        }
    }
}

func TestDistanceKmAntipodal(t *testing.T) {
    // Half the Earth's circumference, just over 20000 km.
    d := DistanceKm(model.Coordinate{Lat: 0, Lng: 0}, model.Coordinate{Lat: 0, Lng: 180})
    assert.InDelta(t, math.Pi*earthRadiusKm, d, 1.0)
}
