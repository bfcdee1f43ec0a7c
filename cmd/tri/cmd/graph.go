package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
)

func (a *app) newGraphCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph [tree-file]",
		Short: "Render a tree file as a Graphviz DOT graph",
		Long: `Reads a tree file written by tri and prints it as a Graphviz digraph:
first every node with its label, then every parent to child edge.

Without an argument the configured tree file (default: tree.out) is read.
The graph goes to stdout unless -o is given.

  tri graph | dot -Tpng -o tree.png`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Output.Path
			if len(args) == 1 {
				input = args[0]
			}
			return a.runGraph(cmd.Context(), input, firstNonEmpty(output, a.cfg.Output.Graph, stdoutPath))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (a *app) runGraph(ctx context.Context, input, output string) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	engine := a.engine(false)
	err = writeOutput(output, a.stdout, func(w io.Writer) error {
		return engine.Graph(ctx, in, w)
	})
	if err != nil {
		return mdwerror.Wrap(err, input)
	}

	a.logger.Info("Graph written", mdwlog.Fields{
		"input":  input,
		"output": output,
	})
	return nil
}
