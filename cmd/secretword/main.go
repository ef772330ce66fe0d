package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secretword/internal/app"
	"secretword/internal/puzzle"
	"secretword/internal/puzzles"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

type flagValues struct {
	setPath     string
	setsDir     string
	setID       string
	countdown   time.Duration
	logPath     string
	theme       string
	ascii       bool
	debugLayout bool
	demo        string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

func run(args []string, stdout, stderr io.Writer, environ map[string]string) int {
	root := newRootCmd(stdout, environ)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		var cfgErr *puzzle.ConfigError
		if errors.As(err, &cfgErr) || errors.Is(err, errInvalidConfig) || errors.Is(err, puzzles.ErrInvalidSet) {
			fmt.Fprintf(stderr, "configuration error: %v\n", err)
			return exitConfig
		}
		fmt.Fprintf(stderr, "secretword: %v\n", err)
		return exitError
	}
	return exitOK
}

var errInvalidConfig = errors.New("invalid configuration")

func newRootCmd(stdout io.Writer, environ map[string]string) *cobra.Command {
	fv := &flagValues{}
	root := &cobra.Command{
		Use:           "secretword",
		Short:         "Terminal crossword with a hidden keyword column",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv, environ)
			if err != nil {
				return err
			}
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.Run(cmd.Context()); err != nil {
				return err
			}
			printSummary(stdout, a.Summary())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&fv.setPath, "set", "", "puzzle set YAML file")
	pf.StringVar(&fv.setsDir, "sets-dir", "", "directory of puzzle set YAML files")
	pf.StringVar(&fv.setID, "set-id", "", "set id to pick from --sets-dir")
	pf.DurationVar(&fv.countdown, "countdown", 0, "per-row countdown override, e.g. 20s")

	f := root.Flags()
	f.StringVar(&fv.logPath, "log", "", "append JSON event log to this file")
	f.StringVar(&fv.theme, "theme", "", "theme: pastel_bakery, modern_arcade, retro_terminal")
	f.BoolVar(&fv.ascii, "ascii", false, "draw the grid with ASCII only")
	f.BoolVar(&fv.debugLayout, "debug-layout", false, "log layout decisions")
	f.StringVar(&fv.demo, "demo", "", "apply a demo scenario before the board opens")

	root.AddCommand(newValidateCmd(stdout, fv, environ))
	return root
}

// resolveConfig layers defaults, SECRETWORD_* variables and explicitly set
// flags, in that order.
func resolveConfig(flags *pflag.FlagSet, fv *flagValues, environ map[string]string) (app.Config, error) {
	cfg := app.DefaultConfig()
	if err := app.LoadEnv(&cfg, environ); err != nil {
		return cfg, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if flags.Changed("set") {
		cfg.SetPath = fv.setPath
	}
	if flags.Changed("sets-dir") {
		cfg.SetsDir = fv.setsDir
	}
	if flags.Changed("set-id") {
		cfg.SetID = fv.setID
	}
	if flags.Changed("countdown") {
		cfg.Countdown = fv.countdown
	}
	if flags.Changed("log") {
		cfg.LogPath = fv.logPath
	}
	if flags.Changed("theme") {
		cfg.UI.StyleVariant = fv.theme
	}
	if flags.Changed("ascii") {
		cfg.ASCIIOnly = fv.ascii
	}
	if flags.Changed("debug-layout") {
		cfg.DebugLayout = fv.debugLayout
	}
	if flags.Changed("demo") {
		cfg.DemoScenario = fv.demo
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return cfg, nil
}

func printSummary(w io.Writer, s app.Summary) {
	fmt.Fprintf(w, "%s: solved %d/%d, locked %d\n", s.SetID, s.Solved, s.Total, s.Locked)
	if s.Complete {
		fmt.Fprintf(w, "keyword: %s\n", s.Keyword)
	}
}
