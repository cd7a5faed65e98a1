package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rollingthunder/linconst/config"
	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/ode/linear"
	"github.com/rollingthunder/linconst/problems"
	"github.com/rollingthunder/linconst/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	errNoProblemFile = errors.New("no problem file: pass a path or set [problems] file in the config")
	errSolveFailed   = errors.New("some problems could not be solved")
)

type report struct {
	Name         string             `yaml:"name"`
	Problem      string             `yaml:"problem"`
	Regime       string             `yaml:"regime,omitempty"`
	Solution     string             `yaml:"solution,omitempty"`
	Coefficients map[string]float64 `yaml:"coefficients,omitempty"`
	DY0          float64            `yaml:"dy0"`
	Samples      []ode.Point        `yaml:"samples,omitempty"`
	Error        string             `yaml:"error,omitempty"`
}

// solveAll solves every problem, renders one report for all of them and
// fails afterwards if any problem could not be solved.
func (o *options) solveAll(cmd *cobra.Command, list []problems.Problem) (err error) {
	reports := make([]report, len(list))
	failed := 0
	for i, p := range list {
		reports[i] = o.solve(p)
		if reports[i].Error != "" {
			failed++
		}
	}

	if o.cfg.Output.Format == config.FormatHTML && o.cfg.Output.Path != "" {
		var tables []util.Table
		if tables, err = htmlTables(reports); err != nil {
			return err
		}
		o.logger.Println("writing report to", o.cfg.Output.Path)
		if err = util.WriteTablesFile(tables, o.cfg.Output.Path); err != nil {
			return err
		}
		return solveErr(failed, len(list))
	}

	w, closeOut, err := o.output(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); err == nil {
			err = cerr
		}
	}()

	if err = render(w, o.cfg.Output.Format, reports); err != nil {
		return err
	}
	return solveErr(failed, len(list))
}

func solveErr(failed, total int) error {
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSolveFailed, failed, total)
	}
	return nil
}

func (o *options) solve(p problems.Problem) report {
	r := report{Name: p.Name(), Problem: p.Description()}

	sol, err := p.Solve()
	if err != nil {
		o.logger.Printf("%s: %v", p.Name(), err)
		r.Error = err.Error()
		return r
	}
	o.logger.Printf("%s: %s roots, %s", p.Name(), sol.Kind(), sol)

	s := o.cfg.Sampling
	r.Regime = sol.Kind().String()
	r.Solution = sol.String()
	r.Coefficients = linear.Coefficients(sol)
	r.DY0 = sol.Derivative(0)
	r.Samples = ode.Sample(sol, s.From, s.Step, s.Count)
	return r
}

func render(w io.Writer, format string, reports []report) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(reports)
	case config.FormatHTML:
		return renderHTML(w, reports)
	case config.FormatText:
		return renderText(w, reports)
	}
	return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
}

func renderText(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "name:\t%s\n", r.Name)
		fmt.Fprintf(tw, "problem:\t%s\n", r.Problem)
		if r.Error != "" {
			fmt.Fprintf(tw, "error:\t%s\n", r.Error)
			continue
		}
		fmt.Fprintf(tw, "roots:\t%s\n", r.Regime)
		fmt.Fprintf(tw, "solution:\t%s\n", r.Solution)
		fmt.Fprintf(tw, "y'(0):\t%g\n", r.DY0)
		if len(r.Samples) > 0 {
			fmt.Fprintln(tw, "x\ty(x)")
			for _, pt := range r.Samples {
				fmt.Fprintf(tw, "%g\t%g\n", pt.X, pt.Y)
			}
		}
	}
	return tw.Flush()
}

func renderHTML(w io.Writer, reports []report) error {
	tables, err := htmlTables(reports)
	if err != nil {
		return err
	}
	return util.WriteTables(tables, w)
}

func htmlTables(reports []report) ([]util.Table, error) {
	tables := make([]util.Table, 0, len(reports))
	for _, r := range reports {
		if r.Error != "" {
			tables = append(tables, util.Table{Title: r.Name, Notes: []string{r.Problem, "error: " + r.Error}})
			continue
		}
		xs, ys := ode.Split(r.Samples)
		table, err := util.CurveTable(r.Name, "samples", xs, ys,
			r.Problem, r.Regime+" roots", r.Solution)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func listProblems(w io.Writer, list []problems.Problem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\n", p.Name(), p.Description())
	}
	return tw.Flush()
}
