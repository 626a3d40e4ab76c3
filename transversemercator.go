package planerect

import (
	"math"

	"github.com/golang/geo/s1"
)

// GeodeticPoint is a point on the ellipsoid in decimal degrees.
type GeodeticPoint struct {
	Latitude  float64
	Longitude float64
}

// PlanarPoint is a point on the projected plane in meters, relative to the
// origin it was projected with. X grows north, Y grows east.
type PlanarPoint struct {
	X float64
	Y float64
}

// Origin is the geodetic point that maps to X = 0, Y = 0. Its longitude is
// the central meridian of the projection.
type Origin struct {
	Latitude  float64
	Longitude float64
}

// Projector provides conversions between geodetic coordinates (latitude and
// longitude) and Gauss-Krüger plane coordinates (x and y) about a fixed
// origin. A Projector is immutable and safe for concurrent use.
type Projector struct {
	ellipsoid Ellipsoid
	origin    Origin

	n      float64
	eps    float64 // 2√n/(1+n), the first eccentricity
	aCoeff [6]float64
	alpha  [planeTerms]float64
	beta   [planeTerms]float64
	delta  [latitudeTerms]float64

	originLong  float64 // central meridian in radians
	radius      float64 // Ā, scaled rectifying radius
	meridianArc float64 // S̄, scaled meridian arc from the equator to the origin
}

// NewProjector constructs a Projector for the given ellipsoid and origin.
func NewProjector(e Ellipsoid, o Origin) (*Projector, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	p := &Projector{
		ellipsoid: e,
		origin:    o,
		n:         e.N(),
	}
	p.eps = 2 * math.Sqrt(p.n) / (1 + p.n)
	p.aCoeff = meridianCoefficients(p.n)
	p.alpha = alphaCoefficients(p.n)
	p.beta = betaCoefficients(p.n)
	p.delta = deltaCoefficients(p.n)

	originLat := radians(o.Latitude)
	p.originLong = radians(o.Longitude)

	scaled := (e.scaleFactor * e.semiMajorAxis) / (1 + p.n)
	p.radius = scaled * p.aCoeff[0]
	p.meridianArc = scaled * (p.aCoeff[0]*originLat + sinSeries(originLat, p.aCoeff[1:]))
	return p, nil
}

// Ellipsoid returns the ellipsoid the projector was built with.
func (p *Projector) Ellipsoid() Ellipsoid { return p.ellipsoid }

// Origin returns the projection origin.
func (p *Projector) Origin() Origin { return p.origin }

// ConvertFromGeodetic converts geodetic (latitude and longitude) coordinates
// to plane coordinates. Accuracy degrades smoothly with distance from the
// origin; no point is rejected.
func (p *Projector) ConvertFromGeodetic(geodeticCoordinates GeodeticPoint) PlanarPoint {
	latitude := radians(geodeticCoordinates.Latitude)
	longitude := radians(geodeticCoordinates.Longitude)

	cosLam := math.Cos(longitude - p.originLong)
	sinLam := math.Sin(longitude - p.originLong)

	//  Ellipsoid to sphere
	//  --------- -- ------

	// tangent of the conformal latitude
	sinPhi := math.Sin(latitude)
	t := math.Sinh(math.Atanh(sinPhi) - p.eps*math.Atanh(p.eps*sinPhi))
	tBar := math.Sqrt(1 + t*t)

	//  Sphere to first plane
	//  ------ -- ----- -----
	xi := math.Atan(t / cosLam)
	eta := math.Atanh(sinLam / tBar)

	var s2kxi, c2kxi, s2keta, c2keta [planeTerms]float64
	computeTrigSeries(xi, s2kxi[:], c2kxi[:])
	computeHyperbolicSeries(eta, s2keta[:], c2keta[:])

	//  First plane to second plane
	xStar := 0.0
	yStar := 0.0
	for k := 0; k < planeTerms; k++ {
		xStar += p.alpha[k] * (s2kxi[k] * c2keta[k])
		yStar += p.alpha[k] * (c2kxi[k] * s2keta[k])
	}

	return PlanarPoint{
		X: p.radius*(xi+xStar) - p.meridianArc,
		Y: p.radius * (eta + yStar),
	}
}

// ConvertToGeodetic converts plane coordinates to geodetic (latitude and
// longitude) coordinates. It is the inverse of ConvertFromGeodetic.
func (p *Projector) ConvertToGeodetic(planeCoordinates PlanarPoint) GeodeticPoint {
	//  Undo the meridian arc offset and the radius
	xi := (planeCoordinates.X + p.meridianArc) / p.radius
	eta := planeCoordinates.Y / p.radius

	var s2kxi, c2kxi, s2keta, c2keta [planeTerms]float64
	computeTrigSeries(xi, s2kxi[:], c2kxi[:])
	computeHyperbolicSeries(eta, s2keta[:], c2keta[:])

	//  Second plane to first plane
	//  ------ ----- -- ----- -----
	xiSum := 0.0
	etaSum := 0.0
	for k := 0; k < planeTerms; k++ {
		xiSum += p.beta[k] * (s2kxi[k] * c2keta[k])
		etaSum += p.beta[k] * (c2kxi[k] * s2keta[k])
	}
	xi2 := xi - xiSum
	eta2 := eta - etaSum

	//  First plane to sphere to ellipsoid
	//  ----- ----- -- ------ -- ---------
	chi := math.Asin(math.Sin(xi2) / math.Cosh(eta2))
	latitude := chi + sinSeries(chi, p.delta[:])
	longitude := p.originLong + math.Atan(math.Sinh(eta2)/math.Cos(xi2))

	return GeodeticPoint{
		Latitude:  degrees(latitude),
		Longitude: degrees(longitude),
	}
}

// Forward projects a geodetic point onto the GRS80 plane about origin.
func Forward(g GeodeticPoint, origin Origin) PlanarPoint {
	p, _ := NewProjector(GRS80, origin)
	return p.ConvertFromGeodetic(g)
}

// Inverse maps a GRS80 plane point about origin back to latitude and
// longitude.
func Inverse(pt PlanarPoint, origin Origin) GeodeticPoint {
	p, _ := NewProjector(GRS80, origin)
	return p.ConvertToGeodetic(pt)
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}
