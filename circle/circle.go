package circle

import (
	"fmt"
	"math"

	"github.com/a-bouts/globe-server/geodesy"
)

// Point counts used by the clients : a coarse ring while the user drags the
// radius slider, a finer one for the final globe render.
const (
	PreviewPoints = 72
	RenderPoints  = 128
)

type Circle struct {
	Center geodesy.LatLon `json:"center"`
	Radius float64        `json:"radius"`
}

// Ring is a closed polygon boundary : first and last points are identical.
// Interior longitudes may fall outside [-180,180) after seam unwrapping.
type Ring []geodesy.LatLon

// Coords returns the ring as GeoJSON-ordered [lon, lat] pairs.
func (r Ring) Coords() [][]float64 {
	coords := make([][]float64, len(r))
	for i, p := range r {
		coords[i] = []float64{p.Lon, p.Lat}
	}
	return coords
}

func (c Circle) Check() error {
	if err := c.Center.Check(); err != nil {
		return err
	}
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("radius must be finite : %f", c.Radius)
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius must be >= 0 : %f", c.Radius)
	}
	return nil
}

// Polygon traces the geodesic circle of c as a closed ring of nPoints+1
// points, one per bearing step of 360/nPoints degrees.
//
// Each point longitude is normalized first, then unwrapped against the
// previous point : a jump over 180 degrees means the ring crossed the ±180
// meridian and the new point is shifted by a full turn so the sequence stays
// continuous for the polygon renderer. Circles around a pole come out as
// valid small rings without any special case.
func (c Circle) Polygon(nPoints int) (Ring, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	if nPoints < 3 {
		return nil, fmt.Errorf("need at least 3 points : %d", nPoints)
	}

	ring := make(Ring, 0, nPoints+1)
	step := 360.0 / float64(nPoints)

	for i := 0; i <= nPoints; i++ {
		p, err := geodesy.Destination(c.Center, float64(i)*step, c.Radius)
		if err != nil {
			return nil, err
		}

		if i > 0 {
			prev := ring[i-1].Lon
			if p.Lon-prev > 180.0 {
				p.Lon -= 360.0
			} else if p.Lon-prev < -180.0 {
				p.Lon += 360.0
			}
		}

		ring = append(ring, p)
	}

	return ring, nil
}
