package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-tools/angle"
	"github.com/a-bouts/geo-tools/latlon"
	"github.com/a-bouts/geo-tools/utm"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Unable to load .env: %v", err)
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geo-tools", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inputMeasure = fs.String("input-angular-measure", "degree", "angular measure of provided angles (degree or radian)")
		outputForm   = fs.String("output-angle-form", "degrees", "output form for angles (degrees, minutes, seconds or radians)")
		inputSystem  = fs.String("input-location-system", "latitude&longitude", "geographic system of provided locations (latitude&longitude or UTM-WGS84)")
		outputSystem = fs.String("output-location-system", "latitude&longitude", "geographic system used to display locations (latitude&longitude or UTM-WGS84)")
		model        = fs.String("model", "spherical", "earth model for geodesic computations (spherical or ellipsoidal)")
		debug        = fs.Bool("debug", false, "enable debug logging")
		cpuprofile   = fs.String("cpuprofile", "", "write a CPU profile into this directory")
		_            = fs.String("config", "", "config file (optional)")
	)
	fs.Usage = func() { usage(fs) }

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("GEO_TOOLS"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Unable to parse arguments. %v\nSee -help for available commands.\n", err)
		return 2
	}

	logger := newLogger(stderr, *debug)

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.Quiet).Stop()
	}

	cfg, err := buildConfig(*inputMeasure, *outputForm, *inputSystem, *outputSystem, *model)
	if err != nil {
		fmt.Fprintf(stderr, "%v, see -help.\n", err)
		return 2
	}
	logger.Debugf("Input %s in %s, output %s, angle form %s",
		cfg.InputSystem, measureName(cfg.InputMeasure), cfg.OutputSystem, formName(cfg.OutputForm))

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "No arguments given. See -help for available commands.")
		return 2
	}

	a := &app{cfg: cfg, out: stdout, log: logger}
	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "help" {
		fs.SetOutput(stdout)
		usage(fs)
		return 0
	}
	if err := a.dispatch(name, rest); err != nil {
		var pe *angle.ParseError
		var re *angle.RangeError
		var proj *utm.ProjectionError
		if errors.As(err, &pe) || errors.As(err, &re) || errors.As(err, &proj) {
			fmt.Fprintf(stderr, "The provided locations/coordinates couldn't be parsed correctly. %v\n\n", err)
			printFormatInfo(stderr)
			return 1
		}
		logger.Error(err)
		return 1
	}
	return 0
}

func buildConfig(inputMeasure, outputForm, inputSystem, outputSystem, model string) (latlon.Config, error) {
	var cfg latlon.Config
	var err error
	if cfg.InputMeasure, err = angle.ParseMeasure(inputMeasure); err != nil {
		return cfg, err
	}
	if cfg.OutputForm, err = angle.ParseForm(outputForm); err != nil {
		return cfg, err
	}
	if cfg.InputSystem, err = latlon.ParseSystem(inputSystem); err != nil {
		return cfg, err
	}
	if cfg.OutputSystem, err = latlon.ParseSystem(outputSystem); err != nil {
		return cfg, err
	}
	if cfg.Model, err = latlon.ParseModel(model); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func measureName(m angle.Measure) string {
	if m == angle.Radian {
		return "radian"
	}
	return "degree"
}

func formName(f angle.Form) string {
	return [...]string{"degrees", "minutes", "seconds", "radians"}[f]
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: geo-tools [flags] <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commandList {
		fmt.Fprintf(w, "  %-50s %s\n", c.name+" "+c.args, c.help)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	printFormatInfo(w)
}

func printFormatInfo(w io.Writer) {
	fmt.Fprint(w, `To provide a location/trackpoint, use the following form:
latitude,longitude

Use one of the following forms to specify angles, if you use -input-angular-measure degree:
[+-]DDD.DDDDD
[+-]DDD:MM.MMMMM
[+-]DDD:MM:SS.SSSSS
D indicates degrees, M indicates minutes of arc, and S indicates seconds of arc (1 minute = 1/60th of a degree, 1 second = 1/3600th of a degree).
You can use the following form where R indicates radians, if you use -input-angular-measure radian:
[+-]RRR.RRRRR

With -input-location-system UTM-WGS84 locations are given as:
zone easting northing (e.g. 32U 389000 5819000)
`)
}
