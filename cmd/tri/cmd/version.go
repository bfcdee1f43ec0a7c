package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/triangle/pkg/core/version"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.stdout, a.styles.title.Render("tri v"+version.Tool))
			fmt.Fprintf(a.stdout, "  Git Commit:  %s\n", version.Commit)
			fmt.Fprintf(a.stdout, "  Build Date:  %s\n", version.BuildDate)
			fmt.Fprintf(a.stdout, "  Tree Format: %s\n", version.TreeFormat)
			fmt.Fprintf(a.stdout, "  Go Version:  %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "  OS/Arch:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
