// cmd/sample/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/asherban/codiculum/sample"
	"github.com/asherban/codiculum/sample/config"
)

const (
	cliName        = "sample"
	cliDescription = "Print a MyClass value and the sum of two positive integers."
)

// Exit codes returned by run.
const (
	exitOK        = 0
	exitRuntime   = 1
	exitBadConfig = 2
)

// errBadConfig marks failures that happen before the program starts running.
var errBadConfig = errors.New("bad configuration")

type options struct {
	configPath string
	logLevel   string
	value      int
	a          int
	b          int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errBadConfig):
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitBadConfig
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitRuntime
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd.Context(), cmd.Flags(), opts, stdout, stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	// Flag parse errors are configuration errors too.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return badConfig(err)
	})

	fs := cmd.Flags()
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.IntVar(&opts.value, "value", 0, "value printed by MyClass")
	fs.IntVar(&opts.a, "a", 0, "first operand of Add")
	fs.IntVar(&opts.b, "b", 0, "second operand of Add")

	return cmd
}

// badConfig marks err as a configuration failure, keeping err in the chain.
func badConfig(err error) error {
	return fmt.Errorf("%w: %w", errBadConfig, err)
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return badConfig(fmt.Errorf("unexpected arguments %q", args))
	}
	return nil
}

func execute(ctx context.Context, fs *pflag.FlagSet, opts options, stdout, stderr io.Writer) (err error) {
	cfg, err := resolveConfig(fs, opts)
	if err != nil {
		return badConfig(err)
	}

	lg, err := newLogger(cfg, stderr)
	if err != nil {
		return badConfig(err)
	}
	defer func() {
		err = multierr.Append(err, syncLogger(lg))
	}()

	reg := sample.NewMapRegistry().ProvideLogger(lg.Named(cliName))

	prog, err := sample.NewProgramBuilder(cfg).
		InjectOutput(stdout).
		BuildWith(reg)
	if err != nil {
		return err
	}

	lg.Debug("starting", zap.Int("value", cfg.Value), zap.Int("a", cfg.A), zap.Int("b", cfg.B))
	return prog.Run(ctx)
}

// resolveConfig layers explicitly set flags over config.Read and validates the result.
func resolveConfig(fs *pflag.FlagSet, opts options) (config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if fs.Changed("value") {
		cfg.Value = opts.value
	}
	if fs.Changed("a") {
		cfg.A = opts.a
	}
	if fs.Changed("b") {
		cfg.B = opts.b
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}

// syncLogger flushes lg. fsync on a terminal or pipe fails with EINVAL or
// ENOTTY, which is not a lost log line.
func syncLogger(lg *zap.Logger) error {
	err := lg.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
