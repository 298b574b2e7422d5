package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCorridors(t *testing.T) {
	corridors := testCorridors(t)
	assert.Equal(t, "vietnam-coast", corridors[0].Name)
	assert.Len(t, corridors[0].Waypoints, 16)

	_, err := LoadCorridors([]byte(`not json`))
	assert.Error(t, err)

	_, err = LoadCorridors([]byte(`[{"name":"bad","waypoints":[{"latitude":95,"longitude":0}]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestCorridorCovers(t *testing.T) {
	c := Corridor{
		Name:   "box",
		Margin: 1,
		Waypoints: []GeoPoint{
			{Latitude: 10, Longitude: 100},
			{Latitude: 20, Longitude: 102},
		},
	}

	tests := []struct {
		name string
		a, b GeoPoint
		want bool
	}{
		{"both inside", GeoPoint{12, 101}, GeoPoint{18, 101}, true},
		{"inside margin", GeoPoint{9.5, 99.5}, GeoPoint{20.5, 102.5}, true},
		{"one outside", GeoPoint{12, 101}, GeoPoint{25, 101}, false},
		{"west of margin", GeoPoint{12, 98.9}, GeoPoint{18, 101}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Covers(tt.a, tt.b))
		})
	}

	assert.False(t, Corridor{Margin: 10}.Covers(GeoPoint{}, GeoPoint{}))
}

func TestCorridorBetween(t *testing.T) {
	// Waypoints deliberately out of order.
	c := Corridor{Waypoints: []GeoPoint{
		{Latitude: 15, Longitude: 1},
		{Latitude: 11, Longitude: 2},
		{Latitude: 19, Longitude: 3},
		{Latitude: 10, Longitude: 4},
		{Latitude: 20, Longitude: 5},
	}}
	south := GeoPoint{Latitude: 10, Longitude: 0}
	north := GeoPoint{Latitude: 20, Longitude: 0}

	t.Run("northbound", func(t *testing.T) {
		got := c.Between(south, north)
		assert.Equal(t, []GeoPoint{{11, 2}, {15, 1}, {19, 3}}, got)
	})

	t.Run("southbound", func(t *testing.T) {
		got := c.Between(north, south)
		assert.Equal(t, []GeoPoint{{19, 3}, {15, 1}, {11, 2}}, got)
	})

	t.Run("bounds are exclusive", func(t *testing.T) {
		got := c.Between(GeoPoint{Latitude: 11}, GeoPoint{Latitude: 15})
		assert.Empty(t, got)
	})

	t.Run("route wraps endpoints", func(t *testing.T) {
		route := c.Route(south, north)
		require.Len(t, route, 5)
		assert.Equal(t, south, route[0])
		assert.Equal(t, north, route[4])
	})
}
