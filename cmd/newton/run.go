package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sw965/newton"
	"github.com/sw965/newton/demo"
	"github.com/sw965/newton/field"
	"github.com/sw965/newton/internal/config"
	"github.com/sw965/newton/solver"
	"github.com/sw965/newton/trace"
)

func run(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()
	if opts.list {
		for _, d := range demo.Demos {
			fmt.Fprintf(out, "%s  (x0 = %s)\n", d, d.X0.RatString())
		}
		return nil
	}

	index := 1
	if len(args) == 1 {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid function %q: want a number, see --list", args[0])
		}
		index = i
	}
	d, err := demo.Lookup(index)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var obs newton.Observer
	if opts.verbose {
		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		obs = trace.NewLogger(log, d.Name)
	}

	p := printer{out: out, precision: opts.precision}
	if cfg.Rational {
		return runRat(p, d, cfg, opts, obs)
	}
	return runFloat(p, d, cfg, opts, obs)
}

func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("eps") {
		cfg.Tolerance = opts.eps
	}
	if flags.Changed("max-iter") {
		cfg.MaxIterations = opts.maxIter
	}
	if flags.Changed("rational") {
		cfg.Rational = opts.rational
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	return cfg, cfg.Validate()
}

func runFloat(p printer, d demo.Demo, cfg config.Config, opts *options, obs newton.Observer) error {
	eps, err := cfg.FloatTolerance()
	if err != nil {
		return err
	}
	x0 := d.Float64X0()
	if opts.x0 != "" {
		if x0, err = parseFloat(opts.x0); err != nil {
			return fmt.Errorf("invalid initial guess %q: %w", opts.x0, err)
		}
	}

	s := newton.Solver[float64]{Field: field.Float64{}, MaxIterations: cfg.MaxIterations, Observer: obs}
	prob := d.Float64()

	if opts.starts > 0 {
		outcomes := solver.Multistart(s, prob, solver.Grid(opts.from, opts.to, opts.starts), eps, cfg.Workers)
		roots := outcomes.Roots(field.Float64{}, 1e3*eps)
		for _, x := range roots {
			p.line(p.float(x), p.float(prob.F(x)), -1)
		}
		p.summary(len(outcomes.Converged()), len(outcomes), len(roots))
		return nil
	}

	r, err := s.Run(prob, x0, eps)
	if err != nil {
		return err
	}
	p.line(p.float(r.X), p.float(prob.F(r.X)), r.Iterations)
	if !r.Converged {
		p.capWarning(r.Iterations)
	}
	return nil
}

func runRat(p printer, d demo.Demo, cfg config.Config, opts *options, obs newton.Observer) error {
	eps, err := cfg.RatTolerance()
	if err != nil {
		return err
	}
	x0 := d.X0
	if opts.x0 != "" {
		if x0, err = field.ParseRat(opts.x0); err != nil {
			return fmt.Errorf("invalid initial guess: %w", err)
		}
	}

	s := newton.Solver[*big.Rat]{Field: field.Rat{}, MaxIterations: cfg.MaxIterations, Observer: obs}
	prob := d.Rat()

	if opts.starts > 0 {
		grid := solver.Grid(opts.from, opts.to, opts.starts)
		x0s := make([]*big.Rat, len(grid))
		for i, g := range grid {
			x0s[i] = new(big.Rat).SetFloat64(g)
		}
		outcomes := solver.Multistart(s, prob, x0s, eps, cfg.Workers)
		roots := outcomes.Roots(field.Rat{}, new(big.Rat).Mul(eps, big.NewRat(1000, 1)))
		for _, x := range roots {
			p.line(p.rat(x), p.rat(prob.F(x)), -1)
		}
		p.summary(len(outcomes.Converged()), len(outcomes), len(roots))
		return nil
	}

	r, err := s.Run(prob, x0, eps)
	if err != nil {
		return err
	}
	p.line(p.rat(r.X), p.rat(prob.F(r.X)), r.Iterations)
	if !r.Converged {
		p.capWarning(r.Iterations)
	}
	return nil
}

// parseFloat accepts the same forms as --eps: decimals and fractions like "3/2".
func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return x, nil
	}
	r, rerr := field.ParseRat(s)
	if rerr != nil {
		return 0, err
	}
	x, _ = r.Float64()
	return x, nil
}

type printer struct {
	out       io.Writer
	precision int
}

func (p printer) float(x float64) string {
	if p.precision < 0 {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', p.precision, 64)
}

// rat prints the decimal expansion when a precision is set. Otherwise the
// nearest float64 is shown, since exact iterates grow to hundreds of digits.
func (p printer) rat(x *big.Rat) string {
	if p.precision < 0 {
		f, _ := x.Float64()
		return p.float(f)
	}
	return x.FloatString(p.precision)
}

func (p printer) line(x, fx string, iterations int) {
	if iterations < 0 {
		fmt.Fprintf(p.out, "x = %s | f(x) = %s\n", x, fx)
		return
	}
	fmt.Fprintf(p.out, "x = %s | f(x) = %s | %d iterations\n", x, fx, iterations)
}

func (p printer) capWarning(iterations int) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(p.out, "%s stopped at the iteration cap (%d) before successive iterates agreed within eps\n",
		yellow("⚠"), iterations)
}

func (p printer) summary(converged, starts, roots int) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(p.out, "%s %d of %d starts converged to %d distinct roots\n", green("✓"), converged, starts, roots)
}
