// Package runner executes one configured search: it loads the surface,
// runs the path finder and writes the reports.
package runner

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/config"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/internal/report"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pathfind"
	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pmf"
)

// Summary describes a finished run.
type Summary struct {
	Prefix     string   // output prefix
	Written    []string // files written, in order
	PathLength int      // points on the trajectory
	Explored   int      // closed grid points
	Barrier    float64  // highest energy on the trajectory
}

// Run performs the search described by cfg, which must be valid.
// Any error aborts the run; files written before it are left in place.
func Run(cfg *config.Config, log zerolog.Logger) (*Summary, error) {
	surface, err := loadSurface(cfg, log)
	if err != nil {
		return nil, err
	}

	finder, err := pathfind.New(surface, cfg.Initial, cfg.End, cfg.PBC,
		pathfind.WithBarrierThreshold(cfg.BarrierThreshold),
		pathfind.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	h := pathfind.Heuristic(pathfind.ZeroHeuristic)
	if points, forces := cfg.Targets(); len(points) > 0 {
		if err = finder.SetTargets(points, forces); err != nil {
			return nil, err
		}
		for i := range points {
			log.Info().Floats64("point", points[i]).Floats64("force", forces[i]).Msg("target")
		}
		h = finder.ManhattanPotential()
	}
	if err = finder.Run(h); err != nil {
		return nil, err
	}

	path, err := finder.Path()
	if err != nil {
		return nil, err
	}
	explored, err := finder.ExploredCount()
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Prefix:     cfg.OutputPrefix(),
		PathLength: path.Len(),
		Explored:   explored,
		Barrier:    path.Barrier(),
	}
	files := report.FilesFor(sum.Prefix)

	if err = report.SaveTrajectory(files, path); err != nil {
		return nil, err
	}
	sum.Written = append(sum.Written, files.Traj, files.Energy)

	if cfg.WriteExploredPoints {
		points, err := finder.Explored()
		if err != nil {
			return nil, err
		}
		if err = report.SaveExplored(files.Explored, points); err != nil {
			return nil, err
		}
		sum.Written = append(sum.Written, files.Explored)
	}
	if cfg.PlotProfile {
		if err = report.SaveProfile(files.Profile, path); err != nil {
			return nil, err
		}
		sum.Written = append(sum.Written, files.Profile)
	}
	if cfg.PlotSurface {
		if err = report.SaveSurface(files.Surface, surface, path); err != nil {
			return nil, err
		}
		sum.Written = append(sum.Written, files.Surface)
	}

	return sum, nil
}

// loadSurface reads the grid in the format the configuration selects.
func loadSurface(cfg *config.Config, log zerolog.Logger) (*pmf.Surface[float64], error) {
	tol := pmf.WithTolerance(cfg.Tolerance)

	if !cfg.ExplicitBounds() {
		log.Info().Str("file", cfg.Directory).Msg("reading NAMD PMF file; boundaries and width come from its header")
		s, err := pmf.LoadNAMD[float64](cfg.Directory, tol)
		if err != nil {
			return nil, fmt.Errorf("runner: %w", err)
		}
		return s, nil
	}

	log.Info().
		Str("file", cfg.Directory).
		Floats64("lowerboundary", cfg.LowerBoundary).
		Floats64("upperboundary", cfg.UpperBoundary).
		Floats64("width", cfg.Width).
		Msg("reading plain PMF file")
	s, err := pmf.LoadPlain[float64](cfg.Directory, cfg.LowerBoundary, cfg.Width, cfg.UpperBoundary, tol)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	return s, nil
}
