package geodesy

import (
	"fmt"
	"math"
)

// Destination returns the point reached from 'from' travelling 'distance'
// meters along the initial bearing (degrees, 0 = north, clockwise) on the
// great circle. Near the poles the bearing degenerates but the formula stays
// total, so no special case is needed.
func Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	if err := from.Check(); err != nil {
		return LatLon{}, err
	}
	if !finite(bearing) || !finite(distance) {
		return LatLon{}, fmt.Errorf("bearing and distance must be finite : %f, %f", bearing, distance)
	}
	if distance < 0 {
		return LatLon{}, fmt.Errorf("distance must be >= 0 : %f", distance)
	}

	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(wrap360(bearing))

	δ := distance / R

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: toDegrees(φ2), Lon: NormalizeLon(toDegrees(λ2))}, nil
}

// Antipode returns the diametrically opposite point : latitude flips sign,
// longitude shifts by 180 then normalizes.
func Antipode(p LatLon) (LatLon, error) {
	if err := p.Check(); err != nil {
		return LatLon{}, err
	}
	return LatLon{Lat: -p.Lat, Lon: NormalizeLon(p.Lon + 180.0)}, nil
}

// DistanceTo computes the great circle distance in meters between two points
// with the haversine formula.
func DistanceTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * δ
}
