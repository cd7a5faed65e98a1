package cmd

import (
	"github.com/rollingthunder/linconst/ode"
	"github.com/rollingthunder/linconst/problems"
	"github.com/spf13/cobra"
)

func newIVPCmd(o *options) *cobra.Command {
	var p ode.InitialValue

	cmd := &cobra.Command{
		Use:   "ivp",
		Short: "Solve with y(0) and y'(0) given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.solveAll(cmd, []problems.Problem{problems.NewInitial("ivp", p)})
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&p.A, "a", 0, "coefficient of y'")
	flags.Float64Var(&p.B, "b", 0, "coefficient of y")
	flags.Float64Var(&p.Y0, "y0", 0, "y(0)")
	flags.Float64Var(&p.DY0, "dy0", 0, "y'(0)")
	return cmd
}

func newBVPCmd(o *options) *cobra.Command {
	var p ode.BoundaryValue

	cmd := &cobra.Command{
		Use:   "bvp",
		Short: "Solve with y(0) and y(x1) given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.solveAll(cmd, []problems.Problem{problems.NewBoundary("bvp", p)})
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&p.A, "a", 0, "coefficient of y'")
	flags.Float64Var(&p.B, "b", 0, "coefficient of y")
	flags.Float64Var(&p.Y0, "y0", 0, "y(0)")
	flags.Float64Var(&p.Y1, "y1", 0, "y(x1)")
	flags.Float64Var(&p.X1, "x1", 1, "second boundary point, must not be 0")
	return cmd
}

func newPresetCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preset [name]",
		Short: "List built-in problems or solve one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listProblems(cmd.OutOrStdout(), problems.Presets())
			}
			p, err := problems.Preset(args[0])
			if err != nil {
				return err
			}
			return o.solveAll(cmd, []problems.Problem{p})
		},
	}
}

func newFileCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "file [path]",
		Short: "Solve every problem in a TOML or YAML file",
		Long:  "Solve every problem in a TOML or YAML file. Without a path, [problems] file of the config is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := o.cfg.Problems.File
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errNoProblemFile
			}
			list, err := problems.LoadFile(path)
			if err != nil {
				return err
			}
			o.logger.Printf("loaded %d problems from %s", len(list), path)
			return o.solveAll(cmd, list)
		},
	}
}
