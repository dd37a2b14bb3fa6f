package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-tools/angle"
	"github.com/a-bouts/geo-tools/latlon"
)

type app struct {
	cfg latlon.Config
	out io.Writer
	log *log.Logger
}

type command struct {
	name  string
	args  string
	nargs int
	help  string
	run   func(a *app, args []string) error
}

var commandList []command

func init() {
	commandList = []command{
		{"convert", "<coordinate/location>", 1, "Converts the given coordinate or location to the specified output form.", (*app).convert},
		{"distance", "<location 1> <location 2>", 2, "Computes the approximate distance in meters between two locations.", (*app).distance},
		{"track-length", "[-circle] <path>", -1, "Computes the approximate length of a track given by a file of trackpoints separated by new lines.", (*app).trackLength},
		{"bearing", "<location 1> <location 2>", 2, "Computes the approximate initial bearing East of true North along the shortest path.", (*app).bearing},
		{"final-bearing", "<location 1> <location 2>", 2, "Computes the approximate final bearing East of true North along the shortest path.", (*app).finalBearing},
		{"midpoint", "<location 1> <location 2>", 2, "Computes the approximate midpoint between the given locations.", (*app).midpoint},
		{"destination", "<start> <distance> <bearing>", 3, "Calculates the destination point given distance and bearing from the start point.", (*app).destination},
		{"gmaps-link", "<path>", 1, "Generates a Google Maps link for all locations given by a file of locations separated by new lines.", (*app).mapsLink},
		{"version", "", 0, "Shows the version of this application.", (*app).version},
		{"help", "", 0, "Shows this help.", nil},
	}
}

func (a *app) dispatch(name string, args []string) error {
	for _, c := range commandList {
		if c.name != name || c.run == nil {
			continue
		}
		if c.nargs >= 0 && len(args) != c.nargs {
			return fmt.Errorf("%s expects %d argument(s): %s", c.name, c.nargs, c.args)
		}
		return c.run(a, args)
	}
	return fmt.Errorf("unknown command %q, see -help for available commands", name)
}

func (a *app) printLocation(p latlon.LatLon) error {
	s, err := a.cfg.FormatLocation(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, s)
	return nil
}

func (a *app) locations(s1, s2 string) (latlon.LatLon, latlon.LatLon, error) {
	p, err := a.cfg.ParseLocation(s1)
	if err != nil {
		return p, p, err
	}
	q, err := a.cfg.ParseLocation(s2)
	return p, q, err
}

func formatDistance(d float64) string {
	if d > 1000 {
		return fmt.Sprintf("%.3f km", d/1000)
	}
	return fmt.Sprintf("%.2f m", d)
}

func (a *app) convert(args []string) error {
	s := args[0]
	if a.cfg.InputSystem == latlon.LatitudeLongitude && !strings.ContainsAny(s, ",NE") {
		v, err := a.cfg.ParseAngle(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, a.cfg.FormatAngle(v))
		return nil
	}
	p, err := a.cfg.ParseLocation(s)
	if err != nil {
		return err
	}
	return a.printLocation(p)
}

func (a *app) distance(args []string) error {
	p, q, err := a.locations(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, formatDistance(a.cfg.Geodesy().DistanceTo(p, q)))
	return nil
}

func (a *app) bearing(args []string) error {
	p, q, err := a.locations(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.cfg.FormatAngle(a.cfg.Geodesy().InitialBearingTo(p, q)))
	return nil
}

func (a *app) finalBearing(args []string) error {
	p, q, err := a.locations(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.cfg.FormatAngle(a.cfg.Geodesy().FinalBearingTo(p, q)))
	return nil
}

func (a *app) midpoint(args []string) error {
	p, q, err := a.locations(args[0], args[1])
	if err != nil {
		return err
	}
	return a.printLocation(a.cfg.Geodesy().Midpoint(p, q))
}

func (a *app) destination(args []string) error {
	start, err := a.cfg.ParseLocation(args[0])
	if err != nil {
		return err
	}
	distance, err := strconv.ParseFloat(args[1], 64)
	if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return &angle.ParseError{Input: args[1], Token: args[1], Expected: "a distance in meters"}
	}
	bearing, err := a.cfg.ParseAngle(args[2])
	if err != nil {
		return err
	}
	return a.printLocation(a.cfg.Geodesy().Destination(start, distance, bearing))
}

func (a *app) trackLength(args []string) error {
	circle := false
	var paths []string
	for _, arg := range args {
		if arg == "-circle" || arg == "--circle" {
			circle = true
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) != 1 {
		return fmt.Errorf("track-length expects one path: [-circle] <path>")
	}

	points, err := readLocations(a.cfg, paths[0])
	if err != nil {
		return err
	}
	a.log.Debugf("Read %d trackpoints from %s (circle: %t)", len(points), paths[0], circle)

	d := latlon.TrackLengthOn(a.cfg.Geodesy(), points, circle)
	fmt.Fprintf(a.out, "%s (%d trackpoints)\n", formatDistance(d), len(points))
	return nil
}

func (a *app) mapsLink(args []string) error {
	points, err := readLocations(a.cfg, args[0])
	if err != nil {
		return err
	}
	a.log.Debugf("Read %d locations from %s", len(points), args[0])

	link, err := latlon.MapsLink(points)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, link)
	return nil
}

func (a *app) version([]string) error {
	fmt.Fprintln(a.out, version)
	return nil
}
