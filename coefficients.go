package planerect

// Series coefficients of the Gauss-Krüger projection as polynomials in
// Helmert's n. They depend only on the shape of the ellipsoid.
//
//	A      meridian arc length (rectifying latitude scale), A0..A5
//	alpha  conformal latitude to the projected plane, orders 1..5
//	beta   projected plane back to conformal latitude, orders 1..5
//	delta  conformal latitude to geodetic latitude, orders 1..6
//
// Element k-1 of the alpha, beta and delta arrays is the coefficient of
// the sin(2kx) term.

const (
	planeTerms    = 5
	latitudeTerms = 6
)

func meridianCoefficients(n float64) [6]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	var a [6]float64
	a[0] = 1 + n2/4.0 + n4/64.0
	a[1] = -(3.0 / 2) * (n - n3/8.0 - n5/64.0)
	a[2] = (15.0 / 16) * (n2 - n4/4.0)
	a[3] = -(35.0 / 48) * (n3 - (5.0/16)*n5)
	a[4] = (315.0 / 512) * n4
	a[5] = -(693.0 / 1280) * n5
	return a
}

func alphaCoefficients(n float64) [planeTerms]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	var a [planeTerms]float64
	a[0] = (1.0/2)*n - (2.0/3)*n2 + (5.0/16)*n3 + (41.0/180)*n4 - (127.0/288)*n5
	a[1] = (13.0/48)*n2 - (3.0/5)*n3 + (557.0/1440)*n4 + (281.0/630)*n5
	a[2] = (61.0/240)*n3 - (103.0/140)*n4 + (15061.0/26880)*n5
	a[3] = (49561.0/161280)*n4 - (179.0/168)*n5
	a[4] = (34729.0 / 80640) * n5
	return a
}

func betaCoefficients(n float64) [planeTerms]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	var b [planeTerms]float64
	b[0] = (1.0/2)*n - (2.0/3)*n2 + (37.0/96)*n3 - (1.0/360)*n4 - (81.0/512)*n5
	b[1] = (1.0/48)*n2 + (1.0/15)*n3 - (437.0/1440)*n4 + (46.0/105)*n5
	b[2] = (17.0/480)*n3 - (37.0/840)*n4 - (209.0/4480)*n5
	b[3] = (4397.0/161280)*n4 - (11.0/504)*n5
	b[4] = (4583.0 / 161280) * n5
	return b
}

func deltaCoefficients(n float64) [latitudeTerms]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n

	var d [latitudeTerms]float64
	d[0] = 2.0*n - (2.0/3)*n2 - 2.0*n3 + (116.0/45)*n4 + (26.0/45)*n5 - (2854.0/675)*n6
	d[1] = (7.0/3)*n2 - (8.0/5)*n3 - (227.0/45)*n4 + (2704.0/315)*n5 + (2323.0/945)*n6
	d[2] = (56.0/15)*n3 - (136.0/35)*n4 - (1262.0/105)*n5 + (73814.0/2835)*n6
	d[3] = (4279.0/630)*n4 - (332.0/35)*n5 - (399572.0/14175)*n6
	d[4] = (4174.0/315)*n5 - (144838.0/6237)*n6
	d[5] = (601676.0 / 22275) * n6
	return d
}
