package planerect_test

import (
	"fmt"

	"github.com/tzneal/planerect"
)

func ExampleForward() {
	origin, _ := planerect.ZoneOrigin(9)
	pt := planerect.Forward(planerect.GeodeticPoint{Latitude: 36.103774791666666, Longitude: 140.08785504166664}, origin)
	fmt.Printf("x=%.4f y=%.4f\n", pt.X, pt.Y)
	// Output: x=11543.6883 y=22916.2436
}

func ExampleInverse() {
	origin, _ := planerect.ZoneOrigin(9)
	g := planerect.Inverse(planerect.PlanarPoint{X: 11543.6883, Y: 22916.2436}, origin)
	fmt.Printf("%.9f %.9f\n", g.Latitude, g.Longitude)
	fmt.Println(planerect.FormatDMS(g.Latitude, 3), planerect.FormatDMS(g.Longitude, 3))
	// Output:
	// 36.103774791 140.087855042
	// 36°06'13.589" 140°05'16.278"
}

func ExamplePlaneRectangular_ConvertFromGeodetic() {
	zc, _ := planerect.DefaultPlaneRectangular.ConvertFromGeodetic(planerect.GeodeticPoint{Latitude: 43.068661, Longitude: 141.350755}, 12)
	fmt.Printf("zone %d x=%.3f y=%.3f\n", zc.Zone, zc.X, zc.Y)
	// Output: zone 12 x=-103071.879 y=-73236.493
}
