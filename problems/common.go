// Package problems collects named second order problems and loads them from files.
package problems

import (
	"errors"

	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/ode/linear"
)

var (
	ErrUnknownPreset = errors.New("problems: unknown preset")
	ErrUnknownKind   = errors.New("problems: unknown problem kind")
	ErrUnknownFormat = errors.New("problems: unknown file format")
)

type Problem interface {
	Name() string
	Description() string
	Solve() (linear.Solution, error)
}

type initial struct {
	name string
	ode.InitialValue
}

func (p initial) Name() string { return p.name }

func (p initial) Solve() (linear.Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return linear.FromInitialValue(p.InitialValue), nil
}

type boundary struct {
	name string
	ode.BoundaryValue
}

func (p boundary) Name() string { return p.name }

func (p boundary) Solve() (linear.Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return linear.FromBoundaryValue(p.BoundaryValue)
}

// NewInitial wraps an initial-value problem.
func NewInitial(name string, p ode.InitialValue) Problem {
	return initial{name, p}
}

// NewBoundary wraps a boundary-value problem.
func NewBoundary(name string, p ode.BoundaryValue) Problem {
	return boundary{name, p}
}
