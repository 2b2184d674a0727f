package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	eps        string
	maxIter    int
	x0         string
	rational   bool
	verbose    bool
	list       bool
	starts     int
	from, to   float64
	workers    int
	precision  int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "newton [function]",
		Short: "Find a root of a built-in function with Newton's method",
		Long: `Run Newton–Raphson iteration on one of the built-in demo functions.

The function is selected by its number (see --list). The result is printed as
  x = <root> | f(x) = <residual> | <n> iterations

Example:
  $ newton 2 --precision 4
  x = 1.0000 | f(x) = 0.0000 | 5 iterations
  $ newton 1 --rational --eps 1/1000000000000`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML or TOML file with solver settings")
	f.StringVar(&opts.eps, "eps", "", "convergence tolerance, decimal or fraction (default 1e-6)")
	f.IntVar(&opts.maxIter, "max-iter", 0, "iteration cap (default 100)")
	f.StringVar(&opts.x0, "x0", "", "initial guess, overrides the function's default")
	f.BoolVar(&opts.rational, "rational", false, "use exact rational arithmetic")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every update to stderr")
	f.BoolVar(&opts.list, "list", false, "list the built-in functions")
	f.IntVar(&opts.starts, "starts", 0, "solve from this many evenly spaced guesses and list the distinct roots")
	f.Float64Var(&opts.from, "from", -10, "lower end of the multistart range")
	f.Float64Var(&opts.to, "to", 10, "upper end of the multistart range")
	f.IntVar(&opts.workers, "workers", 0, "parallel workers for multistart (default from config)")
	f.IntVar(&opts.precision, "precision", -1, "digits after the decimal point, -1 for the shortest exact form")
	return cmd
}
