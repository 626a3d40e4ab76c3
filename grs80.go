package planerect

import "fmt"

// GRS80 is the GRS80 ellipsoid with the 0.9999 scale factor used by Japan's
// plane rectangular coordinate system.
var GRS80 Ellipsoid

// DefaultPlaneRectangular is a GRS80 based plane rectangular converter.
var DefaultPlaneRectangular *PlaneRectangular

func init() {
	const semiMajorAxis = 6378137.0
	const inverseFlattening = 298.257222101
	const scaleFactor = 0.9999
	var err error
	GRS80, err = NewEllipsoid(semiMajorAxis, inverseFlattening, scaleFactor)
	if err != nil {
		panic(fmt.Sprintf("error constructing GRS80 ellipsoid: %s", err))
	}
	DefaultPlaneRectangular, err = NewPlaneRectangular(GRS80)
	if err != nil {
		panic(fmt.Sprintf("error constructing GRS80 plane rectangular converter: %s", err))
	}
}
