// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/parse"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
)

// ErrUsage is returned when the command line is malformed.
var ErrUsage = errors.New("usage error")

// flags holds command-line overrides. A flag only overrides the
// configuration file when it was set explicitly.
type flags struct {
	cfgFile   string
	epsilon   float64
	integer   bool
	verify    bool
	format    string
	color     bool
	logLevel  string
	logFormat string
}

var rootCmd = NewRootCmd()

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "linsolve: %v\n", err)
		return err
	}

	return nil
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "linsolve [flags] FILE",
		Short: "Solve a system of linear equations",
		Long: `linsolve reads one equation per line of the form

  VAR = term + term + ...

where every term is a variable name or a non-negative integer, and prints
the unique solution as sorted "name = value" lines.

Blank lines and lines starting with // are ignored. Gzip-compressed input
is detected automatically.

A file named like a subcommand (for example "version") must be given with
a path prefix: linsolve ./version`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				cmd.PrintErrln(cmd.UsageString())
				return fmt.Errorf("%w: expected exactly one FILE argument, got %d", ErrUsage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f, args[0])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.cfgFile, "config", "", "config file (default: $"+config.EnvConfig+" or ./linsolve.toml)")
	pf.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "", "log format: text, json")

	fl := root.Flags()
	fl.Float64Var(&f.epsilon, "epsilon", 0, "zero tolerance for pivots and integer snapping")
	fl.BoolVar(&f.integer, "integer", false, "fail when a value is not integer-valued")
	fl.BoolVar(&f.verify, "verify", false, "substitute the solution back into every equation")
	fl.StringVarP(&f.format, "format", "f", "", "output format: text, json, yaml")
	fl.BoolVar(&f.color, "color", false, "color variable names on a terminal")

	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig reads the configuration file and applies explicit flags on top.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.cfgFile != "" {
		cfg, err = config.Load(f.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("epsilon") {
		cfg.Solver.Epsilon = f.epsilon
	}
	if changed("integer") {
		cfg.Solver.IntegerResults = f.integer
	}
	if changed("verify") {
		cfg.Solver.Verify = f.verify
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("color") {
		cfg.Output.Color = f.color
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the slog logger for one run, tagged with a fresh run id.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.Log.Format == config.FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With("run_id", uuid.NewString()), nil
}

func runSolve(cmd *cobra.Command, f *flags, path string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	log.Debug("config loaded",
		"epsilon", cfg.Solver.Epsilon,
		"integer_results", cfg.Solver.IntegerResults,
		"verify", cfg.Solver.Verify,
		"format", string(format))

	eqs, err := parse.ParseFile(path)
	if err != nil {
		return err
	}
	log.Info("equations parsed", "file", path, "count", len(eqs))

	sol, err := solver.Solve(eqs, cfg.SolverOptions()...)
	if err != nil {
		log.Info("system rejected", "file", path, "kind", solver.KindOf(err).String())
		return err
	}
	log.Info("system solved", "file", path, "variables", len(sol))

	return report.Write(cmd.OutOrStdout(), format, report.New(path, sol),
		report.WithColor(cfg.Output.Color))
}
