package planerect

import "errors"

// ZoneCoord is a coordinate in one of the 19 zones of Japan's plane
// rectangular coordinate system.
type ZoneCoord struct {
	Zone int
	X    float64
	Y    float64
}

// PlaneRectangular is a converter for Japan's plane rectangular coordinate
// system, holding one projector per zone.
type PlaneRectangular struct {
	ellipsoid  Ellipsoid
	projectors [zoneCount + 1]*Projector
}

const zoneCount = 19

// zoneOrigins are the zone origins of the JGD2000/JGD2011 public notice,
// indexed by zone number.
var zoneOrigins = [zoneCount + 1]Origin{
	1:  {33, 129 + 30.0/60},
	2:  {33, 131},
	3:  {36, 132 + 10.0/60},
	4:  {33, 133 + 30.0/60},
	5:  {36, 134 + 20.0/60},
	6:  {36, 136},
	7:  {36, 137 + 10.0/60},
	8:  {36, 138 + 30.0/60},
	9:  {36, 139 + 50.0/60},
	10: {40, 140 + 50.0/60},
	11: {44, 140 + 15.0/60},
	12: {44, 142 + 15.0/60},
	13: {44, 144 + 15.0/60},
	14: {26, 142},
	15: {26, 127 + 30.0/60},
	16: {26, 124},
	17: {26, 131},
	18: {20, 136},
	19: {26, 154},
}

var errZoneOutOfRange = errors.New("zone out of range")

// ZoneOrigin returns the origin of a plane rectangular zone, 1 through 19.
func ZoneOrigin(zone int) (Origin, error) {
	if zone < 1 || zone > zoneCount {
		return Origin{}, errZoneOutOfRange
	}
	return zoneOrigins[zone], nil
}

// NewPlaneRectangular constructs a plane rectangular converter for the
// given ellipsoid.
func NewPlaneRectangular(e Ellipsoid) (*PlaneRectangular, error) {
	r := &PlaneRectangular{ellipsoid: e}
	for zone := 1; zone <= zoneCount; zone++ {
		var err error
		r.projectors[zone], err = NewProjector(e, zoneOrigins[zone])
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Projector returns the projector of a zone.
func (r *PlaneRectangular) Projector(zone int) (*Projector, error) {
	if zone < 1 || zone > zoneCount {
		return nil, errZoneOutOfRange
	}
	return r.projectors[zone], nil
}

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to plane rectangular coordinates of the given zone. The zone is not
// derived from the point; zone boundaries follow prefectures.
func (r *PlaneRectangular) ConvertFromGeodetic(geodeticCoordinates GeodeticPoint, zone int) (ZoneCoord, error) {
	p, err := r.Projector(zone)
	if err != nil {
		return ZoneCoord{}, err
	}
	pt := p.ConvertFromGeodetic(geodeticCoordinates)
	return ZoneCoord{Zone: zone, X: pt.X, Y: pt.Y}, nil
}

// ConvertToGeodetic converts plane rectangular coordinates to geodetic
// (latitude and longitude) coordinates.
func (r *PlaneRectangular) ConvertToGeodetic(zoneCoordinates ZoneCoord) (GeodeticPoint, error) {
	p, err := r.Projector(zoneCoordinates.Zone)
	if err != nil {
		return GeodeticPoint{}, err
	}
	return p.ConvertToGeodetic(PlanarPoint{X: zoneCoordinates.X, Y: zoneCoordinates.Y}), nil
}
