package problems

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rollingthunder/linconst/ode"
	"gopkg.in/yaml.v3"
)

const (
	KindInitial  = "initial"
	KindBoundary = "boundary"
)

// Entry is one problem as written in a problem file.
// DY0 is used by initial problems, Y1 and X1 by boundary problems.
type Entry struct {
	Name string  `toml:"name" yaml:"name"`
	Kind string  `toml:"kind" yaml:"kind"`
	A    float64 `toml:"a" yaml:"a"`
	B    float64 `toml:"b" yaml:"b"`
	Y0   float64 `toml:"y0" yaml:"y0"`
	DY0  float64 `toml:"dy0" yaml:"dy0"`
	Y1   float64 `toml:"y1" yaml:"y1"`
	X1   float64 `toml:"x1" yaml:"x1"`
}

type File struct {
	Problems []Entry `toml:"problems" yaml:"problems"`
}

// Problem converts the entry. An empty kind means initial.
func (e Entry) Problem() (Problem, error) {
	switch strings.ToLower(e.Kind) {
	case "", KindInitial:
		return NewInitial(e.Name, ode.InitialValue{A: e.A, B: e.B, Y0: e.Y0, DY0: e.DY0}), nil
	case KindBoundary:
		return NewBoundary(e.Name, ode.BoundaryValue{A: e.A, B: e.B, Y0: e.Y0, Y1: e.Y1, X1: e.X1}), nil
	default:
		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownKind, e.Kind, e.Name)
	}
}

// LoadFile reads a problem file, choosing the decoder by extension
// (.toml, .yaml or .yml).
func LoadFile(path string) ([]Problem, error) {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = "toml"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	problems, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return problems, nil
}

// Decode reads problems in the given format ("toml" or "yaml").
func Decode(r io.Reader, format string) ([]Problem, error) {
	var f File
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse problems: %w", err)
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse problems: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	problems := make([]Problem, 0, len(f.Problems))
	for i, e := range f.Problems {
		if e.Name == "" {
			e.Name = fmt.Sprintf("problem-%d", i+1)
		}
		p, err := e.Problem()
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}
