// Command mule finds the path of least energetic barrier on a potential of
// mean force.
//
// Usage:
//
//	mule [-env .env] config.ini
//
// config.ini:
//
//	[mule]
//	directory           = ./ref.pmf
//	lowerboundary       = -20, 0        // omit all three for NAMD pmf files
//	upperboundary       =  20, 3
//	width               = 0.2, 0.1
//	initial             = -20, 1.0
//	end                 =  20, 1.0
//	pbc                 =   0, 0
//	writeExploredPoints =   0
//	target              =  20, 1.0, 0.1, 0.0   // point then force constants, repeatable
//
// Results go to <prefix>.traj and <prefix>.energy, where prefix is the pmf
// path without its extension unless "output" is set.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/config"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/logger"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/runner"
)

const banner = "MUltidimensional Least Energy finder (MULE) v0.20"

var errNoConfig = errors.New("a config file must be provided")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit; it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mule", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "optional dotenv file with MULE_LOG_* settings")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mule [flags] config.ini\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fmt.Fprintf(stdout, "%s\n\n", banner)

	if fs.NArg() < 1 || fs.Arg(0) == "" {
		fmt.Fprintf(stderr, "Error, %v\n", errNoConfig)
		fs.Usage()
		return 1
	}

	lc, err := config.LoadLogConfig(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error, %v\n", err)
		return 1
	}
	out, err := logger.Select(lc.Output, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error, %v\n", err)
		return 1
	}
	log, err := logger.NewWithWriter(out, lc)
	if err != nil {
		fmt.Fprintf(stderr, "Error, %v\n", err)
		return 1
	}
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	if err = execute(fs.Arg(0), log); err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}

	return 0
}

// execute loads the configuration, runs the search and logs the outcome.
func execute(path string, log zerolog.Logger) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.Info().
		Str("config", path).
		Floats64("initial", cfg.Initial).
		Floats64("end", cfg.End).
		Bools("pbc", cfg.PBC).
		Msg("configuration loaded")

	sum, err := runner.Run(cfg, log)
	if err != nil {
		return err
	}

	log.Info().Strs("files", sum.Written).Float64("barrier", sum.Barrier).Int("points", sum.PathLength).
		Msgf("finished, see %s.traj and %s.energy for the results", sum.Prefix, sum.Prefix)
	log.Info().Int("explored", sum.Explored).Msgf("a total of %d points have been explored", sum.Explored)

	return nil
}
