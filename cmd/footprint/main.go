package main

import (
	"os"

	"github.com/kubev2v/footprint/internal/cli"
	"github.com/kubev2v/footprint/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	// replaced once the subcommand has read its log level
	zap.ReplaceGlobals(log.InitLog(zap.NewAtomicLevelAt(zap.WarnLevel)))
	os.Exit(run(NewFootprintCommand()))
}

// run executes command and returns the process exit status.
func run(command *cobra.Command) int {
	err := command.Execute()
	if err != nil {
		logError(err)
	}
	_ = zap.L().Sync()
	if err != nil {
		return 1
	}
	return 0
}

func logError(err error) {
	zap.S().Errorw("command failed", "error", err)
}

func NewFootprintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footprint [flags] [options]",
		Short: "footprint estimates how much CPU cache area a file would take.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
		// errors are reported through the zap logger
		SilenceErrors: true,
	}
	cmd.AddCommand(cli.NewCmdEstimate())
	cmd.AddCommand(cli.NewCmdConstants())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
