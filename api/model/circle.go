package model

import (
	"github.com/a-bouts/globe-server/circle"
	"github.com/a-bouts/globe-server/geodesy"
)

type CircleRequest struct {
	Session   string         `json:"session"`
	Center    geodesy.LatLon `json:"center"`
	Radius    float64        `json:"radius"`
	NPoints   int            `json:"nPoints"`
	Antipodal bool           `json:"antipodal"`
}

type CircleResponse struct {
	Center    geodesy.LatLon `json:"center"`
	Radius    float64        `json:"radius"`
	Antipodal bool           `json:"antipodal"`
	Ring      [][]float64    `json:"ring"`
}

type PointResponse struct {
	Point geodesy.LatLon `json:"point"`
}

func (r CircleRequest) Circle() circle.Circle {
	return circle.Circle{Center: r.Center, Radius: r.Radius}
}
