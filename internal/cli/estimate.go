package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/kubev2v/footprint/internal/artifact"
	"github.com/kubev2v/footprint/internal/config"
	"github.com/kubev2v/footprint/internal/estimation"
	"github.com/kubev2v/footprint/internal/estimation/calculators"
	"github.com/kubev2v/footprint/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

type EstimateOptions struct {
	GlobalOptions

	Output  string
	OutFile string

	out io.Writer
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        string(report.FormatText),
	}
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate [FILE]",
		Short: "Estimate the CPU cache area taken by a file (defaults to this executable).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(report.Formats(), ", ")))
	fs.StringVar(&o.OutFile, "out-file", o.OutFile, "Write the report to this file instead of stdout")
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if !cmd.Flags().Changed("output") {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		o.Output = cfg.Service.Output
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.ContainsString(report.Formats(), o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(report.Formats(), ", "))
	}
	if report.Format(o.Output) == report.FormatXLSX && o.OutFile == "" {
		return fmt.Errorf("output format %s requires --out-file", report.FormatXLSX)
	}

	return nil
}

func (o *EstimateOptions) Run(ctx context.Context, args []string) error {
	logger := zap.S().With("run_id", uuid.NewString())

	path, err := o.artifactPath(args)
	if err != nil {
		return err
	}
	size, err := artifact.Size(path)
	if err != nil {
		return err
	}
	logger.Debugw("measured artifact", "path", path, "bytes", size)

	p, err := o.Profile()
	if err != nil {
		return err
	}

	params := append(p.Params(), estimation.Param{Key: calculators.ParamArtifactBytes, Value: size})
	state, err := calculators.NewChain().Run(params)
	if err != nil {
		return fmt.Errorf("estimating footprint: %w", err)
	}
	taken, _ := state.Get(calculators.KeyAreaTaken)
	logger.Infow("estimation done", "profile", p.Name, "area_taken_um2", taken.Value)

	rendered, err := report.Render(report.Format(o.Output), &report.Data{
		Profile:       p.Name,
		Artifact:      path,
		ArtifactBytes: size,
		State:         state,
	})
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if o.OutFile != "" {
		if err := os.WriteFile(o.OutFile, rendered, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Infow("report written", "file", o.OutFile, "format", o.Output)
		return nil
	}
	_, err = o.writer().Write(rendered)
	return err
}

func (o *EstimateOptions) artifactPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return artifact.Self()
}

func (o *EstimateOptions) writer() io.Writer {
	if o.out == nil {
		return os.Stdout
	}
	return o.out
}
