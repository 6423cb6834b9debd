package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDocument mirrors the INI keys under a "mule" root.
type yamlDocument struct {
	Mule *struct {
		Directory           string    `yaml:"directory"`
		LowerBoundary       []float64 `yaml:"lowerboundary"`
		UpperBoundary       []float64 `yaml:"upperboundary"`
		Width               []float64 `yaml:"width"`
		Initial             []float64 `yaml:"initial"`
		End                 []float64 `yaml:"end"`
		PBC                 []int     `yaml:"pbc"`
		WriteExploredPoints bool      `yaml:"writeExploredPoints"`
		Target              []float64 `yaml:"target"`
		Output              string    `yaml:"output"`
		Tolerance           *float64  `yaml:"tolerance"`
		BarrierThreshold    *float64  `yaml:"barrierThreshold"`
		PlotProfile         bool      `yaml:"plotProfile"`
		PlotSurface         bool      `yaml:"plotSurface"`
	} `yaml:"mule"`
}

// ParseYAML decodes a YAML document with a "mule" root. It does not validate.
func ParseYAML(data []byte) (*Config, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if doc.Mule == nil {
		return nil, fmt.Errorf("%w: %s root", ErrMissingField, Section)
	}
	m := doc.Mule

	cfg := Default()
	cfg.Directory = m.Directory
	cfg.LowerBoundary = m.LowerBoundary
	cfg.UpperBoundary = m.UpperBoundary
	cfg.Width = m.Width
	cfg.Initial = m.Initial
	cfg.End = m.End
	cfg.WriteExploredPoints = m.WriteExploredPoints
	cfg.Target = m.Target
	cfg.Output = m.Output
	cfg.PlotProfile = m.PlotProfile
	cfg.PlotSurface = m.PlotSurface
	if m.Tolerance != nil {
		cfg.Tolerance = *m.Tolerance
	}
	if m.BarrierThreshold != nil {
		cfg.BarrierThreshold = *m.BarrierThreshold
	}
	if len(m.PBC) > 0 {
		cfg.PBC = make([]bool, len(m.PBC))
		for i, v := range m.PBC {
			cfg.PBC[i] = v != 0
		}
	}

	return &cfg, nil
}
