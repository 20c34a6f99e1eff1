package session

import (
	"testing"
	"time"

	"github.com/a-bouts/globe-server/circle"
	"github.com/a-bouts/globe-server/geodesy"
)

func TestSetGet(t *testing.T) {
	s := &Sessions{ttl: time.Minute, selections: map[string]Selection{}}

	c := circle.Circle{Center: geodesy.LatLon{Lat: 34, Lon: -6}, Radius: 50000}
	s.Set("abc", c)

	got, ok := s.Get("abc")
	if !ok {
		t.Fatal("Get(abc) not found")
	}
	if got != c {
		t.Errorf("Get(abc) = %v; want %v", got, c)
	}

	if _, ok := s.Get("nope"); ok {
		t.Errorf("Get(nope) found; want miss")
	}
}

func TestSweep(t *testing.T) {
	s := &Sessions{ttl: 10 * time.Millisecond, selections: map[string]Selection{}}

	s.Set("old", circle.Circle{Center: geodesy.LatLon{Lat: 20, Lon: 0}, Radius: 100})
	time.Sleep(20 * time.Millisecond)
	s.Set("new", circle.Circle{Center: geodesy.LatLon{Lat: 21, Lon: 1}, Radius: 200})

	s.Sweep()

	if _, ok := s.Get("old"); ok {
		t.Errorf("old session survived the sweep")
	}
	if _, ok := s.Get("new"); !ok {
		t.Errorf("new session expired")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d; want 1", s.Len())
	}
}
