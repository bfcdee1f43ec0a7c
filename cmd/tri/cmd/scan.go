package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
	mdwlog "github.com/msto63/triangle/foundation/core/log"
	"github.com/msto63/triangle/foundation/triangle/token"
)

func (a *app) newScanCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scan <source-file>",
		Short: "Scan source text into a token file",
		Long: `Classifies triangle source text into tokens and writes them in token
file format, one token per line with row and column.

Characters the scanner does not know become Illegal tokens, which the
parser rejects with their position.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScan(cmd.Context(), args[0], firstNonEmpty(output, a.cfg.Output.Tokens))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: tokens.out)")

	return cmd
}

func (a *app) runScan(ctx context.Context, input, output string) error {
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	tokens, err := a.engine(false).Scan(ctx, in)
	if err != nil {
		return mdwerror.Wrap(err, input)
	}

	// the token file carries no EOF line
	if n := len(tokens); n > 0 && tokens[n-1].Kind == token.EOF {
		tokens = tokens[:n-1]
	}

	err = writeOutput(output, a.stdout, func(w io.Writer) error {
		if err := token.Write(w, tokens); err != nil {
			return mdwerror.Wrap(err, "cannot write tokens").
				WithCode(mdwerror.CodeIO).
				WithOperation("cli.scan")
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("Tokens written", mdwlog.Fields{
		"input":  input,
		"output": output,
		"tokens": len(tokens),
	})
	return nil
}
