package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ParseINI decodes the [mule] section of an INI document. It does not validate.
func ParseINI(data []byte) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, fmt.Errorf("%w: [%s] section", ErrMissingField, Section)
	}

	cfg := Default()
	cfg.Directory = stripComment(sec.Key("directory").String())
	cfg.Output = stripComment(sec.Key("output").String())

	floatLists := []struct {
		key string
		dst *[]float64
	}{
		{"lowerboundary", &cfg.LowerBoundary},
		{"upperboundary", &cfg.UpperBoundary},
		{"width", &cfg.Width},
		{"initial", &cfg.Initial},
		{"end", &cfg.End},
		{"target", &cfg.Target},
	}
	for _, fl := range floatLists {
		if *fl.dst, err = parseFloats(sec.Key(fl.key).String()); err != nil {
			return nil, fmt.Errorf("%s: %w", fl.key, err)
		}
	}
	if cfg.PBC, err = parseFlags(sec.Key("pbc").String()); err != nil {
		return nil, fmt.Errorf("pbc: %w", err)
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"writeExploredPoints", &cfg.WriteExploredPoints},
		{"plotProfile", &cfg.PlotProfile},
		{"plotSurface", &cfg.PlotSurface},
	}
	for _, b := range bools {
		if !sec.HasKey(b.key) {
			continue
		}
		if *b.dst, err = parseBool(sec.Key(b.key).String()); err != nil {
			return nil, fmt.Errorf("%s: %w", b.key, err)
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"tolerance", &cfg.Tolerance},
		{"barrierThreshold", &cfg.BarrierThreshold},
	}
	for _, fl := range floats {
		if !sec.HasKey(fl.key) {
			continue
		}
		if *fl.dst, err = parseFloat(stripComment(sec.Key(fl.key).String())); err != nil {
			return nil, fmt.Errorf("%s: %w", fl.key, err)
		}
	}

	return &cfg, nil
}

// stripComment drops a trailing "//" comment and surrounding space.
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// splitList splits a comma separated value; an empty value yields nil.
func splitList(s string) []string {
	s = stripComment(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, s)
	}

	return v, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	if parts == nil {
		return nil, nil
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := parseFloat(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// parseFlags reads 0/1 integers; any non-zero value is true.
func parseFlags(s string) ([]bool, error) {
	parts := splitList(s)
	if parts == nil {
		return nil, nil
	}
	out := make([]bool, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer flag", ErrInvalidValue, p)
		}
		out[i] = v != 0
	}

	return out, nil
}

// parseBool accepts the spellings INI readers commonly do.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(stripComment(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "", "0", "false", "no", "off":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, s)
}
