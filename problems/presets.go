package problems

import (
	"fmt"
	"math"
	"sort"

	"github.com/rollingthunder/linconst/ode"
)

// DefaultPreset is the problem shown before the user picked any parameters.
const DefaultPreset = "default"

var presets = map[string]Problem{
	DefaultPreset:       NewInitial(DefaultPreset, ode.InitialValue{A: 4, B: 3, Y0: 13, DY0: 11.5}),
	"critical":          NewInitial("critical", ode.InitialValue{A: 6, B: 9, Y0: 2, DY0: 1}),
	"overdamped":        NewInitial("overdamped", ode.InitialValue{A: -5, B: 6, Y0: 1, DY0: 1}),
	"oscillator":        NewInitial("oscillator", ode.InitialValue{A: 0, B: 1, Y0: 1, DY0: 0}),
	"damped-oscillator": NewInitial("damped-oscillator", ode.InitialValue{A: 0.5, B: 4, Y0: 1, DY0: 0}),
	"quarter-wave":      NewBoundary("quarter-wave", ode.BoundaryValue{A: 0, B: 1, Y0: 0, Y1: 1, X1: math.Pi / 2}),
	"half-wave":         NewBoundary("half-wave", ode.BoundaryValue{A: 0, B: 1, Y0: 0, Y1: 1, X1: math.Pi}),
}

// Preset returns the named built-in problem.
func Preset(name string) (Problem, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Presets returns all built-in problems ordered by name.
func Presets() []Problem {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Problem, len(names))
	for i, name := range names {
		list[i] = presets[name]
	}
	return list
}
