package circle

import (
	"math"
	"testing"

	"github.com/a-bouts/globe-server/geodesy"
)

func TestPolygonClosure(t *testing.T) {
	c := Circle{Center: geodesy.LatLon{Lat: 48.8566, Lon: 2.3522}, Radius: 50000}
	ring, err := c.Polygon(PreviewPoints)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring) != PreviewPoints+1 {
		t.Errorf("len(ring) = %d; want %d", len(ring), PreviewPoints+1)
	}
	first := ring[0]
	last := ring[len(ring)-1]
	if first.Lat != last.Lat || first.Lon != last.Lon {
		t.Errorf("ring not closed : {%f,%f} != {%f,%f}", first.Lat, first.Lon, last.Lat, last.Lon)
	}
}

func TestPolygonRadius(t *testing.T) {
	center := geodesy.LatLon{Lat: 48.8566, Lon: 2.3522}
	c := Circle{Center: center, Radius: 500000}
	ring, err := c.Polygon(PreviewPoints)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range ring {
		d := geodesy.DistanceTo(center, geodesy.LatLon{Lat: p.Lat, Lon: geodesy.NormalizeLon(p.Lon)})
		if math.Abs(d-c.Radius)/c.Radius > 1e-3 {
			t.Errorf("point %d at %f m from center; want %f", i, d, c.Radius)
		}
	}
}

func TestPolygonSeam(t *testing.T) {
	c := Circle{Center: geodesy.LatLon{Lat: 0, Lon: 179}, Radius: 500000}
	ring, err := c.Polygon(PreviewPoints)
	if err != nil {
		t.Fatal(err)
	}

	crossed := false
	for i := 1; i < len(ring); i++ {
		d := ring[i].Lon - ring[i-1].Lon
		if math.Abs(d) > 180.0 {
			t.Errorf("jump of %f degrees between points %d and %d", d, i-1, i)
		}
		if ring[i].Lon >= 180.0 {
			crossed = true
		}
	}
	if !crossed {
		t.Errorf("expected unwrapped longitudes beyond 180 for a circle over the seam")
	}
}

func TestPolygonPole(t *testing.T) {
	c := Circle{Center: geodesy.LatLon{Lat: 90, Lon: 0}, Radius: 100000}
	ring, err := c.Polygon(8)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring) != 9 {
		t.Errorf("len(ring) = %d; want 9", len(ring))
	}
	for i, p := range ring {
		if p.Lat >= 90.0 {
			t.Errorf("point %d latitude %f; want < 90", i, p.Lat)
		}
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
			t.Errorf("point %d not finite : {%f,%f}", i, p.Lat, p.Lon)
		}
	}
}

func TestPolygonInvalid(t *testing.T) {
	if _, err := (Circle{Center: geodesy.LatLon{Lat: 0, Lon: 0}, Radius: -1}).Polygon(72); err == nil {
		t.Errorf("radius -1 : want error")
	}
	if _, err := (Circle{Center: geodesy.LatLon{Lat: 95, Lon: 0}, Radius: 1000}).Polygon(72); err == nil {
		t.Errorf("latitude 95 : want error")
	}
	if _, err := (Circle{Center: geodesy.LatLon{Lat: 0, Lon: 0}, Radius: math.NaN()}).Polygon(72); err == nil {
		t.Errorf("radius NaN : want error")
	}
	if _, err := (Circle{Center: geodesy.LatLon{Lat: 0, Lon: 0}, Radius: 1000}).Polygon(2); err == nil {
		t.Errorf("2 points : want error")
	}
}

func TestRingCoords(t *testing.T) {
	ring := Ring{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}
	coords := ring.Coords()
	if coords[0][0] != 2.0 || coords[0][1] != 1.0 {
		t.Errorf("Coords()[0] = %v; want [lon lat] = [2 1]", coords[0])
	}
	if coords[1][0] != 4.0 || coords[1][1] != 3.0 {
		t.Errorf("Coords()[1] = %v; want [lon lat] = [4 3]", coords[1])
	}
}
