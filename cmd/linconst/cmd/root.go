package cmd

import (
	"io"
	"log"
	"os"

	"github.com/rollingthunder/linconst/config"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile string
	verbose bool

	format string
	out    string
	from   float64
	step   float64
	count  int

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "linconst",
		Short: "Closed-form solutions of y'' + a·y' + b·y = 0",
		Long: `linconst solves homogeneous second order linear equations with
constant coefficients in closed form and samples the solution curve.

Problems:
  ivp     - y(0) and y'(0) given
  bvp     - y(0) and y(x1) given
  preset  - built-in problems
  file    - problems from a TOML or YAML file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default: $LINCONST_CONFIG or ./linconst.toml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log to stderr")
	flags.StringVarP(&o.format, "format", "f", config.FormatText, "report format: text, yaml or html")
	flags.StringVarP(&o.out, "out", "o", "", "write the report to this file instead of stdout")
	flags.Float64Var(&o.from, "from", 0, "first sample abscissa")
	flags.Float64Var(&o.step, "step", 0, "distance between samples")
	flags.IntVar(&o.count, "count", 0, "number of samples")

	root.AddCommand(newIVPCmd(o), newBVPCmd(o), newPresetCmd(o), newFileCmd(o))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config file and lets explicitly set flags override it.
func (o *options) setup(cmd *cobra.Command) (err error) {
	var logOut io.Writer = io.Discard
	if o.verbose {
		logOut = cmd.ErrOrStderr()
	}
	o.logger = log.New(logOut, "linconst: ", log.LstdFlags)

	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		o.cfg.Output.Format = o.format
	}
	if flags.Changed("out") {
		o.cfg.Output.Path = o.out
	}
	if flags.Changed("from") {
		o.cfg.Sampling.From = o.from
	}
	if flags.Changed("step") {
		o.cfg.Sampling.Step = o.step
	}
	if flags.Changed("count") {
		o.cfg.Sampling.Count = o.count
	}
	o.logger.Printf("sampling %d points from %g step %g, format %s",
		o.cfg.Sampling.Count, o.cfg.Sampling.From, o.cfg.Sampling.Step, o.cfg.Output.Format)

	return o.cfg.Validate()
}

// output returns the report destination and a function closing it.
func (o *options) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if o.cfg.Output.Path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(o.cfg.Output.Path)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Println("writing report to", o.cfg.Output.Path)
	return file, file.Close, nil
}
