package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			point2:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Bengaluru to Mysuru",
			point1:    GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
			point2:    GeoPoint{Latitude: 12.2958, Longitude: 76.6394},
			expected:  127.0,
			tolerance: 3.0,
		},
		{
			name:      "One degree of latitude",
			point1:    GeoPoint{Latitude: 0, Longitude: 0},
			point2:    GeoPoint{Latitude: 1, Longitude: 0},
			expected:  111.19,
			tolerance: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
			assert.InDelta(t, got, CalculateDistance(tt.point2, tt.point1), 1e-9)
		})
	}
}

func TestEncodeDecodeLocation(t *testing.T) {
	point := GeoPoint{Latitude: 12.9716, Longitude: 77.5946}

	hash := EncodeLocation(point, DefaultGeohashPrecision)
	assert.Len(t, hash, int(DefaultGeohashPrecision))

	center := DecodeGeohash(hash)
	assert.Less(t, CalculateDistance(point, center), 1.0)
}
