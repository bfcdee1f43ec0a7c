package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle"
	"github.com/msto63/triangle/foundation/triangle/export"
)

// parseOptions describes one parse run
type parseOptions struct {
	input    string
	output   string
	format   export.Format
	extended bool
	source   bool // input is source text, not a token file
}

func (a *app) newParseCmd() *cobra.Command {
	var (
		output   string
		format   string
		extended bool
		source   bool
	)

	cmd := &cobra.Command{
		Use:   "parse <input-file>",
		Short: "Parse a token file and export the syntax tree",
		Long: `Parses a token file and writes the syntax tree in the selected format.

Formats:
  text   indented node labels, two spaces per level (default)
  json   lossless JSON document
  yaml   lossless YAML document
  dot    Graphviz digraph

Use -o - to write to stdout.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := a.cfg.OutputFormat()
			if cmd.Flags().Changed("format") {
				var err error
				if f, err = export.ParseFormat(format); err != nil {
					return usageError(cmd, err)
				}
			}
			if !cmd.Flags().Changed("extended") {
				extended = a.cfg.Parser.Extended
			}

			return a.runParse(cmd.Context(), parseOptions{
				input:    args[0],
				output:   firstNonEmpty(output, a.cfg.Output.Path),
				format:   f,
				extended: extended,
				source:   source,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: tree.out)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml or dot")
	cmd.Flags().BoolVar(&extended, "extended", false, "accept proc, type and while")
	cmd.Flags().BoolVar(&source, "source", false, "treat the input as source text and scan it first")

	return cmd
}

// runParse reads, parses and exports one input. The output file only
// appears when every stage succeeded.
func (a *app) runParse(ctx context.Context, opts parseOptions) error {
	in, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	engine := a.engine(opts.extended)

	var result *triangle.Result
	err = writeOutput(opts.output, a.stdout, func(w io.Writer) error {
		if !opts.source {
			result, err = engine.Run(ctx, in, w, opts.format)
			return err
		}

		tokens, err := engine.Scan(ctx, in)
		if err != nil {
			return err
		}
		if result, err = engine.Parse(ctx, tokens); err != nil {
			return err
		}
		return engine.Export(ctx, w, result.Root, opts.format)
	})
	if err != nil {
		return mdwerror.Wrap(err, opts.input)
	}

	a.logger.Info("Tree written", mdwlog.Fields{
		"input":  opts.input,
		"output": opts.output,
		"format": string(opts.format),
		"nodes":  result.Nodes,
	})
	return nil
}
