/* Latitude / Longitude to plane rectangular conversion */
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
	pflag.Usage = usage
	pflag.Parse()

	if flags.Help {
		usage()
		return
	}

	logger := cli.NewLogger(os.Stderr, "planerect-ll2xy", flags.Verbose)

	projector, err := flags.Projector()
	if err != nil {
		logger.Fatal("invalid options", "err", err)
	}
	logger.Debug("projecting", "ellipsoid", projector.Ellipsoid(), "origin", projector.Origin())

	var points []planerect.GeodeticPoint
	switch pflag.NArg() {
	case 2:
		pair, err := cli.ParsePair(pflag.Arg(0), pflag.Arg(1))
		if err != nil {
			logger.Fatal("invalid coordinates", "err", err)
		}
		points = append(points, planerect.GeodeticPoint{Latitude: pair[0], Longitude: pair[1]})
	case 0:
		pairs, err := cli.ReadPairs(os.Stdin)
		if err != nil {
			logger.Fatal("error reading input", "err", err)
		}
		for _, pair := range pairs {
			points = append(points, planerect.GeodeticPoint{Latitude: pair[0], Longitude: pair[1]})
		}
		logger.Debug("read input", "points", len(points))
	default:
		usage()
		os.Exit(1)
	}

	planar, err := projector.ConvertFromGeodeticBatch(context.Background(), points)
	if err != nil {
		logger.Fatal("conversion failed", "err", err)
	}
	for _, pt := range planar {
		fmt.Printf("x = %.4f, y = %.4f\n", pt.X, pt.Y)
	}
}

func usage() {
	fmt.Println("Latitude / Longitude to plane rectangular conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\tplanerect-ll2xy  [options]  latitude  longitude")
	fmt.Println("\tplanerect-ll2xy  [options]  < points.txt")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\tLatitude and longitude are in decimal degrees.")
	fmt.Println("\t   Use negative for south or west.")
	fmt.Println("\tWithout arguments one \"latitude longitude\" pair is read per line.")
	fmt.Println("\tPut -- before the values when the first one is negative.")
	fmt.Println("")
	fmt.Println("Options:")
	pflag.PrintDefaults()
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("\tplanerect-ll2xy -z 9 36.103774791666666 140.08785504166664")
}
