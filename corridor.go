package main

import (
	"cmp"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

//go:embed data/corridors.json
var corridorData []byte

// Corridor is a hand-authored list of waypoints approximating a geographic
// feature routes are expected to follow, e.g. a coastline.
type Corridor struct {
	Name      string     `json:"name"`
	Margin    float64    `json:"margin"`
	Waypoints []GeoPoint `json:"waypoints"`
}

func LoadCorridors(data []byte) ([]Corridor, error) {
	var corridors []Corridor
	if err := json.Unmarshal(data, &corridors); err != nil {
		return nil, fmt.Errorf("parse corridors: %w", err)
	}
	for _, c := range corridors {
		for i, wp := range c.Waypoints {
			if !wp.Valid() {
				return nil, fmt.Errorf("corridor %s: waypoint %d out of range", c.Name, i)
			}
		}
	}
	return corridors, nil
}

// Covers reports whether both points fall inside the corridor's bounding box
// grown by its margin.
func (c Corridor) Covers(a, b GeoPoint) bool {
	if len(c.Waypoints) == 0 {
		return false
	}
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, wp := range c.Waypoints {
		minLat, maxLat = min(minLat, wp.Latitude), max(maxLat, wp.Latitude)
		minLon, maxLon = min(minLon, wp.Longitude), max(maxLon, wp.Longitude)
	}
	inside := func(p GeoPoint) bool {
		return p.Latitude >= minLat-c.Margin && p.Latitude <= maxLat+c.Margin &&
			p.Longitude >= minLon-c.Margin && p.Longitude <= maxLon+c.Margin
	}
	return inside(a) && inside(b)
}

// Between returns the waypoints strictly between the two latitudes, ordered
// in the direction of travel from origin to destination.
func (c Corridor) Between(origin, destination GeoPoint) []GeoPoint {
	lo := min(origin.Latitude, destination.Latitude)
	hi := max(origin.Latitude, destination.Latitude)

	var pts []GeoPoint
	for _, wp := range c.Waypoints {
		if wp.Latitude > lo && wp.Latitude < hi {
			pts = append(pts, wp)
		}
	}

	northbound := destination.Latitude > origin.Latitude
	slices.SortStableFunc(pts, func(a, b GeoPoint) int {
		if northbound {
			return cmp.Compare(a.Latitude, b.Latitude)
		}
		return cmp.Compare(b.Latitude, a.Latitude)
	})
	return pts
}

func (c Corridor) Route(origin, destination GeoPoint) Route {
	mid := c.Between(origin, destination)
	route := make(Route, 0, len(mid)+2)
	route = append(route, origin)
	route = append(route, mid...)
	return append(route, destination)
}
