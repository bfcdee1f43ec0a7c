package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
)

func (a *app) newWatchCmd() *cobra.Command {
	var (
		output string
		source bool
	)

	cmd := &cobra.Command{
		Use:   "watch <input-file>",
		Short: "Re-parse the input whenever it changes",
		Long: `Parses the input once and again after every change until interrupted.
Failed runs are reported and the previous output is kept.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch(cmd.Context(), parseOptions{
				input:    args[0],
				output:   firstNonEmpty(output, a.cfg.Output.Path),
				format:   a.cfg.OutputFormat(),
				extended: a.cfg.Parser.Extended,
				source:   source,
			}, a.cfg.Watch.Debounce.Duration)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: tree.out)")
	cmd.Flags().BoolVar(&source, "source", false, "treat the input as source text and scan it first")

	return cmd
}

// runWatch watches the directory of the input, since editors often
// replace files instead of writing them in place
func (a *app) runWatch(ctx context.Context, opts parseOptions, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("cli.watch")
	}
	defer watcher.Close()

	target := filepath.Clean(opts.input)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeIO).
			WithOperation("cli.watch").
			WithDetail("path", filepath.Dir(target))
	}

	a.logger.Info("Started watching for changes", mdwlog.Fields{
		"input":    target,
		"debounce": debounce.String(),
	})
	a.rerun(ctx, opts)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Stopping watch (context cancelled)")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug("Input changed", mdwlog.Fields{
				"op": event.Op.String(),
			})
			fire = time.After(debounce)

		case <-fire:
			fire = nil
			a.rerun(ctx, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("Watcher error", mdwlog.Err(err))
		}
	}
}

// rerun parses once and reports the outcome without stopping the watch
func (a *app) rerun(ctx context.Context, opts parseOptions) {
	if err := a.runParse(ctx, opts); err != nil {
		a.metrics.RecordError(err)
		a.printError(err)
		return
	}
	a.printSuccess(opts.output + " updated")
}
