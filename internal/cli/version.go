package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kubev2v/footprint/pkg/version"
	"github.com/spf13/cobra"
)

type VersionOptions struct {
	out io.Writer
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		out: os.Stdout,
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print footprint version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.out = cmd.OutOrStdout()
			return o.Run(cmd.Context(), args)
		},
	}
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	fmt.Fprintf(o.out, "Footprint Version: %s\n", versionInfo.String())
	fmt.Fprintf(o.out, "Go Version: %s\n", versionInfo.GoVersion)
	fmt.Fprintf(o.out, "Platform: %s\n", versionInfo.Platform)
	return nil
}
