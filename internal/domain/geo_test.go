package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_QueryString(t *testing.T) {
	b := Bounds{
		SW: NewGeoPoint(57.74, 21.74),
		NE: NewGeoPoint(59.69, 28.31),
	}
	assert.Equal(t, "sw=57.74,21.74&ne=59.69,28.31", b.QueryString())
}

func TestWorldBounds(t *testing.T) {
	assert.Equal(t, "sw=-90,-90&ne=90,90", WorldBounds.QueryString())
}

func TestGeoPoint_ZeroValue(t *testing.T) {
	var p GeoPoint
	assert.Equal(t, "0,0", p.QueryValue())
}
