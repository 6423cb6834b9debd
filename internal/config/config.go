// Package config loads and validates the mule run configuration.
//
// The primary format is INI with a [mule] section (keys are case
// insensitive); YAML with the same keys under "mule:" is accepted for
// .yaml and .yml files. List values in INI are comma separated and may carry
// a trailing "//" comment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fhh2626/Multidimensional-lowest-energy--Mule/pmf"
)

// Sentinel errors; all of them are configuration errors.
var (
	ErrMissingField      = errors.New("config: missing mandatory field")
	ErrLengthMismatch    = errors.New("config: vector lengths differ")
	ErrPartialBounds     = errors.New("config: lowerboundary, upperboundary and width must be given together")
	ErrBadTargets        = errors.New("config: target list must hold whole (point, force constant) groups")
	ErrInvalidValue      = errors.New("config: invalid value")
	ErrUnsupportedFormat = errors.New("config: unsupported config file format")
)

// Section is the INI section and the YAML root key.
const Section = "mule"

// Config is one run of the path finder.
type Config struct {
	Directory string // grid file path

	// Explicit bounds; all empty selects the self-describing format.
	LowerBoundary []float64
	UpperBoundary []float64
	Width         []float64

	Initial             []float64
	End                 []float64
	PBC                 []bool
	WriteExploredPoints bool

	// Target is the flattened (point, force constants) list, 2·D values per target.
	Target []float64

	Output           string  // output prefix override
	Tolerance        float64 // bin-edge tolerance ε
	BarrierThreshold float64 // cells at or above are impassable
	PlotProfile      bool
	PlotSurface      bool
}

// Default returns a Config holding only the defaults.
func Default() Config {
	return Config{
		Tolerance:        pmf.DefaultTolerance,
		BarrierThreshold: math.Inf(1),
	}
}

// Load reads and validates the configuration at path. The format follows
// the extension: .yaml/.yml for YAML, anything else for INI.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".json", ".toml", ".xml":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	default:
		cfg, err = ParseINI(data)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Dims is the number of reaction coordinates, taken from Initial.
func (c *Config) Dims() int { return len(c.Initial) }

// ExplicitBounds reports whether the plain format with explicit bounds is used.
func (c *Config) ExplicitBounds() bool {
	return len(c.LowerBoundary) > 0 || len(c.UpperBoundary) > 0 || len(c.Width) > 0
}

// Validate checks mandatory fields and vector lengths.
func (c *Config) Validate() error {
	if c.Directory == "" {
		return fmt.Errorf("%w: directory", ErrMissingField)
	}
	for _, f := range []struct {
		name string
		n    int
	}{{"initial", len(c.Initial)}, {"end", len(c.End)}, {"pbc", len(c.PBC)}} {
		if f.n == 0 {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	dim := c.Dims()
	if len(c.End) != dim || len(c.PBC) != dim {
		return fmt.Errorf("%w: initial=%d end=%d pbc=%d", ErrLengthMismatch, dim, len(c.End), len(c.PBC))
	}

	if c.ExplicitBounds() {
		if len(c.LowerBoundary) == 0 || len(c.UpperBoundary) == 0 || len(c.Width) == 0 {
			return ErrPartialBounds
		}
		if len(c.LowerBoundary) != dim || len(c.UpperBoundary) != dim || len(c.Width) != dim {
			return fmt.Errorf("%w: lowerboundary=%d upperboundary=%d width=%d, want %d",
				ErrLengthMismatch, len(c.LowerBoundary), len(c.UpperBoundary), len(c.Width), dim)
		}
	}

	if len(c.Target)%(2*dim) != 0 {
		return fmt.Errorf("%w: %d values is not a multiple of %d", ErrBadTargets, len(c.Target), 2*dim)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance %g must be positive", ErrInvalidValue, c.Tolerance)
	}
	if math.IsNaN(c.BarrierThreshold) {
		return fmt.Errorf("%w: barrierThreshold is NaN", ErrInvalidValue)
	}

	return nil
}

// Targets splits the flattened target list into points and force constants.
// Call after Validate.
func (c *Config) Targets() (points, forces [][]float64) {
	dim := c.Dims()
	if dim == 0 {
		return nil, nil
	}
	for k := 0; k+2*dim <= len(c.Target); k += 2 * dim {
		points = append(points, c.Target[k:k+dim])
		forces = append(forces, c.Target[k+dim:k+2*dim])
	}

	return points, forces
}

// OutputPrefix is Output when set, otherwise Directory without its final
// extension.
func (c *Config) OutputPrefix() string {
	if c.Output != "" {
		return c.Output
	}

	return strings.TrimSuffix(c.Directory, filepath.Ext(c.Directory))
}
