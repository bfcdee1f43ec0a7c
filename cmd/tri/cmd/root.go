package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle"
	"github.com/msto63/triangle/pkg/core/config"
	"github.com/msto63/triangle/pkg/core/metrics"
)

// globalFlags holds the persistent flags shared by all commands
type globalFlags struct {
	cfgFile     string
	verbose     bool
	metricsFile string
}

// app carries the state of one command line run
type app struct {
	flags   globalFlags
	cfg     *config.Config
	logger  *mdwlog.Logger
	metrics *metrics.Collector
	stdout  io.Writer
	stderr  io.Writer
	styles  styles
}

// Execute runs the command line with the process arguments. It stops on
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line with the given arguments and streams.
// Errors are printed to stderr once and returned.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{
		cfg:     config.Default(),
		logger:  mdwlog.Discard(),
		metrics: metrics.NewCollector(nil),
		stdout:  stdout,
		stderr:  stderr,
		styles:  newStyles(stderr),
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return a.finish(err)
}

func (a *app) newRootCmd() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:   "tri <input-file>",
		Short: "Triangle syntax analyzer",
		Long: `tri reads a token file, checks it against the triangle grammar and
writes the syntax tree as indented text.

Token files hold one token per line:

  {Let, 'let', 1, 1}
  {Identifier, 'x', 2, 7}

Commands:
  parse    parse with a selectable output format
  scan     turn source text into a token file
  graph    turn a tree file into a Graphviz DOT graph
  watch    re-parse whenever the input changes`,
		Args:              usageArgs(cobra.ExactArgs(1)),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd.Context(), parseOptions{
				input:    args[0],
				output:   firstNonEmpty(output, a.cfg.Output.Path),
				format:   a.cfg.OutputFormat(),
				extended: a.cfg.Parser.Extended,
			})
		},
	}

	root.PersistentFlags().StringVar(&a.flags.cfgFile, "config", "", "config file, TOML or YAML (default: $TRI_CONFIG or ./tri.toml)")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.flags.metricsFile, "metrics", "", "write Prometheus metrics to this file after the run")
	root.Flags().StringVarP(&output, "output", "o", "", "output file (default: tree.out)")

	root.SetFlagErrorFunc(usageError)

	root.AddCommand(
		a.newParseCmd(),
		a.newScanCmd(),
		a.newGraphCmd(),
		a.newWatchCmd(),
		a.newVersionCmd(),
	)

	return root
}

// setup loads the configuration and builds the run logger
func (a *app) setup() error {
	var (
		cfg *config.Config
		err error
	)
	if a.flags.cfgFile != "" {
		cfg, err = config.Load(a.flags.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel()
	if a.flags.verbose {
		level = mdwlog.LevelDebug
	}

	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: cfg.LogFormat(),
		Output: a.stderr,
		Name:   "tri",
	}).WithCorrelationID(uuid.New().String())

	if a.flags.metricsFile == "" {
		a.flags.metricsFile = cfg.Output.Metrics
	}

	a.logger.Debug("Configuration loaded", mdwlog.Fields{
		"config":     a.flags.cfgFile,
		"extended":   cfg.Parser.Extended,
		"max_tokens": cfg.Parser.MaxTokens,
		"format":     cfg.Output.Format,
	})

	return nil
}

// finish reports the outcome of the run and writes the metrics file
func (a *app) finish(err error) error {
	if err != nil {
		a.metrics.RecordError(err)
		a.logger.Debug("Run failed", mdwlog.Fields{
			"code":     mdwerror.GetCode(err).String(),
			"severity": mdwerror.GetSeverity(err).String(),
		})
		a.printError(err)
	}

	if a.flags.metricsFile != "" {
		if werr := a.metrics.WriteTextfile(a.flags.metricsFile); werr != nil {
			a.printError(werr)
			if err == nil {
				err = werr
			}
		}
	}

	return err
}

// engine creates an engine for one command
func (a *app) engine(extended bool) *triangle.Engine {
	return triangle.New(triangle.Options{
		Logger:           a.logger,
		MaxTokens:        a.cfg.Parser.MaxTokens,
		EnableExtensions: extended,
		TabWidth:         a.cfg.Parser.TabWidth,
		Observer:         a.metrics,
	})
}

// usageError marks err as a command line usage error
func usageError(cmd *cobra.Command, err error) error {
	return mdwerror.Wrap(err, "invalid arguments").
		WithCode(mdwerror.CodeUsage).
		WithOperation("cli." + cmd.Name()).
		WithDetail("usage", cmd.UseLine())
}

// usageArgs turns argument validation failures into usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
