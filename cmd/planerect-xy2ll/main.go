/* Plane rectangular to Latitude / Longitude conversion */
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tzneal/planerect"
	"github.com/tzneal/planerect/internal/cli"
)

func main() {
	var flags cli.Flags
	flags.Register(pflag.CommandLine)
	var dms = pflag.Bool("dms", false, "Also print degrees, minutes and seconds.")
	pflag.Usage = usage
	pflag.Parse()

	if flags.Help {
		usage()
		return
	}

	logger := cli.NewLogger(os.Stderr, "planerect-xy2ll", flags.Verbose)

	projector, err := flags.Projector()
	if err != nil {
		logger.Fatal("invalid options", "err", err)
	}
	logger.Debug("projecting", "ellipsoid", projector.Ellipsoid(), "origin", projector.Origin())

	var points []planerect.PlanarPoint
	switch pflag.NArg() {
	case 2:
		pair, err := cli.ParsePair(pflag.Arg(0), pflag.Arg(1))
		if err != nil {
			logger.Fatal("invalid coordinates", "err", err)
		}
		points = append(points, planerect.PlanarPoint{X: pair[0], Y: pair[1]})
	case 0:
		pairs, err := cli.ReadPairs(os.Stdin)
		if err != nil {
			logger.Fatal("error reading input", "err", err)
		}
		for _, pair := range pairs {
			points = append(points, planerect.PlanarPoint{X: pair[0], Y: pair[1]})
		}
		logger.Debug("read input", "points", len(points))
	default:
		usage()
		os.Exit(1)
	}

	geo, err := projector.ConvertToGeodeticBatch(context.Background(), points)
	if err != nil {
		logger.Fatal("conversion failed", "err", err)
	}
	for _, g := range geo {
		if *dms {
			fmt.Printf("latitude = %.9f (%s), longitude = %.9f (%s)\n",
				g.Latitude, planerect.FormatDMS(g.Latitude, 5), g.Longitude, planerect.FormatDMS(g.Longitude, 5))
		} else {
			fmt.Printf("latitude = %.9f, longitude = %.9f\n", g.Latitude, g.Longitude)
		}
	}
}

func usage() {
	fmt.Println("Plane rectangular to Latitude / Longitude conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\tplanerect-xy2ll  [options]  x  y")
	fmt.Println("\tplanerect-xy2ll  [options]  < points.txt")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tx is the northing from the origin in meters")
	fmt.Println("\ty is the easting from the origin in meters")
	fmt.Println("\tWithout arguments one \"x y\" pair is read per line.")
	fmt.Println("\tPut -- before the values when the first one is negative.")
	fmt.Println("")
	fmt.Println("Options:")
	pflag.PrintDefaults()
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("\tplanerect-xy2ll -z 9 11543.6883 22916.2436")
	fmt.Println("\tplanerect-xy2ll --origin-lat 36 --origin-lon 139.8333333333 --dms 0 0")
}
