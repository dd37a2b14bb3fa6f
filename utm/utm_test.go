package utm

import (
	"errors"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/coordconv"
)

func TestFromLatLon(t *testing.T) {
	tests := []struct {
		lat, lon float64
		zone     string
		easting  float64
		northing float64
	}{
		{0, 0, "31N", 166021.443, 0},
		{0, 3, "31N", 500000, 0},
		{48.8583, 2.2945, "31U", 448251.898, 5411943.794},
		{-33.8688, 151.2093, "56H", 334368.634, 6250948.345},
	}
	for _, tt := range tests {
		c, err := FromLatLon(tt.lat, tt.lon)
		require.NoError(t, err)
		assert.Equal(t, tt.zone, c.Zone.String())
		assert.InDelta(t, tt.easting, c.Easting, 0.01, "easting of (%f,%f)", tt.lat, tt.lon)
		assert.InDelta(t, tt.northing, c.Northing, 0.01, "northing of (%f,%f)", tt.lat, tt.lon)
	}
}

func TestZoneExceptions(t *testing.T) {
	z := zoneFor(60, 5)
	assert.Equal(t, 32, z.Number, "south-west Norway")

	z = zoneFor(78, 8)
	assert.Equal(t, 31, z.Number, "Svalbard west")

	z = zoneFor(78, 20)
	assert.Equal(t, 33, z.Number, "Svalbard 34X folded into 33X")

	z = zoneFor(10, 180)
	assert.Equal(t, 1, z.Number)
}

func TestMatchesConverterZone(t *testing.T) {
	for _, c := range [][2]float64{{52.5, 13.4}, {-33.8688, 151.2093}, {60, 5}, {78, 20}, {-45, -70}} {
		got, err := FromLatLon(c[0], c[1])
		require.NoError(t, err)
		want, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(c[0], c[1]), 0)
		require.NoError(t, err)
		assert.Equal(t, want.Zone, got.Zone.Number, "zone of (%f,%f)", c[0], c[1])
		assert.InDelta(t, want.Easting, got.Easting, 1e-6)
		assert.InDelta(t, want.Northing, got.Northing, 1e-6)
	}
}

func TestRoundTrip(t *testing.T) {
	for lat := -79.5; lat < 84; lat += 3.7 {
		for lon := -179.5; lon < 180; lon += 7.3 {
			c, err := FromLatLon(lat, lon)
			require.NoError(t, err)
			lat2, lon2, err := ToLatLon(c)
			require.NoError(t, err)
			assert.InDelta(t, lat, lat2, 1e-7, "latitude round trip at (%f,%f)", lat, lon)
			assert.InDelta(t, lon, lon2, 1e-7, "longitude round trip at (%f,%f)", lat, lon)
		}
	}
}

func TestFromLatLonOutsideLimits(t *testing.T) {
	for _, lat := range []float64{-85, 84.5, 90} {
		_, err := FromLatLon(lat, 0)
		var pe *ProjectionError
		assert.True(t, errors.As(err, &pe), "latitude %f", lat)
	}
}

func TestParseZone(t *testing.T) {
	z, err := ParseZone("32u")
	require.NoError(t, err)
	assert.Equal(t, Zone{Number: 32, Band: 'U'}, z)
	assert.True(t, z.North())

	z, err = ParseZone("56H")
	require.NoError(t, err)
	assert.False(t, z.North())

	for _, s := range []string{"", "U", "32", "61N", "0N", "32I", "32UU", "3x2"} {
		_, err := ParseZone(s)
		var pe *ProjectionError
		assert.True(t, errors.As(err, &pe), "zone %q", s)
	}
}

func TestToLatLonInvalid(t *testing.T) {
	bad := []Coord{
		{Zone: Zone{Number: 0, Band: 'N'}, Easting: 500000, Northing: 0},
		{Zone: Zone{Number: 31, Band: 'O'}, Easting: 500000, Northing: 0},
		{Zone: Zone{Number: 31, Band: 'N'}, Easting: -5, Northing: 0},
		{Zone: Zone{Number: 31, Band: 'N'}, Easting: 500000, Northing: 10000001},
	}
	for _, c := range bad {
		_, _, err := ToLatLon(c)
		var pe *ProjectionError
		assert.True(t, errors.As(err, &pe), "coord %v", c)
	}
}
