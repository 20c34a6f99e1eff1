package geodesy

import (
	"fmt"
	"math"
)

const π = math.Pi

// R is the mean Earth radius in meters.
const R = 6371e3

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// NormalizeLon maps any longitude to [-180, 180). math.Mod keeps the sign of
// the dividend, so negative inputs need the extra +360 to get a true modulo.
func NormalizeLon(lon float64) float64 {
	l := math.Mod(lon+180.0, 360.0)
	if l < 0 {
		l += 360.0
	}
	return l - 180.0
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Check rejects latitudes outside [-90, 90] and non finite coordinates.
// Longitude is not range-checked, it gets normalized wherever it matters.
func (p LatLon) Check() error {
	if !finite(p.Lat) || !finite(p.Lon) {
		return fmt.Errorf("coordinates must be finite : {%f,%f}", p.Lat, p.Lon)
	}
	if p.Lat < -90.0 || p.Lat > 90.0 {
		return fmt.Errorf("latitude out of range [-90,90] : %f", p.Lat)
	}
	return nil
}
