package cli

import (
	"fmt"

	"github.com/kubev2v/footprint/internal/config"
	"github.com/kubev2v/footprint/internal/profile"
	"github.com/kubev2v/footprint/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	LogLevel    string
	ProfilePath string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		LogLevel: "warn",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVarP(&o.ProfilePath, "profile", "p", o.ProfilePath, "Path to a CPU profile file (defaults to the built-in Intel Core i9-9900K)")
}

// Complete fills unset flags from the environment and installs the global logger.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if !cmd.Flags().Changed("log-level") {
		o.LogLevel = cfg.Service.LogLevel
	}
	if !cmd.Flags().Changed("profile") {
		o.ProfilePath = cfg.Service.Profile
	}

	zap.ReplaceGlobals(log.InitLog(log.ParseLevel(o.LogLevel)))
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

func (o *GlobalOptions) Profile() (*profile.Profile, error) {
	p, err := profile.LoadOrDefault(o.ProfilePath)
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("using profile", "path", o.ProfilePath, "profile", p.String())
	return p, nil
}
