package planerect

import "github.com/golang/geo/s2"

// LatLng returns the point as an s2.LatLng.
func (g GeodeticPoint) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.Latitude, g.Longitude)
}

// GeodeticFromLatLng converts an s2.LatLng to a GeodeticPoint.
func GeodeticFromLatLng(ll s2.LatLng) GeodeticPoint {
	return GeodeticPoint{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}
}
