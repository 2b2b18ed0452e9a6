package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_HasSteps(t *testing.T) {
	t.Run("no segments", func(t *testing.T) {
		r := &Route{}
		assert.False(t, r.HasSteps())
	})

	t.Run("segments without steps", func(t *testing.T) {
		r := &Route{Segments: []RouteSegment{{Duration: 10}}}
		assert.False(t, r.HasSteps())
	})

	t.Run("segment with steps", func(t *testing.T) {
		r := &Route{Segments: []RouteSegment{
			{Duration: 10},
			{Duration: 20, Steps: []RouteStep{{Duration: 20, WayPoints: [2]int{0, 3}}}},
		}}
		assert.True(t, r.HasSteps())
	})
}

func TestCoordinate_Equal(t *testing.T) {
	a := Coordinate{Lat: 59.9139, Lon: 10.7522}
	assert.True(t, a.Equal(Coordinate{Lat: 59.9139, Lon: 10.7522}))
	assert.False(t, a.Equal(Coordinate{Lat: 59.9139, Lon: 10.7523}))
}
