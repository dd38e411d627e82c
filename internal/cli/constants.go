package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type ConstantsOptions struct {
	GlobalOptions

	Output string

	out io.Writer
}

func DefaultConstantsOptions() *ConstantsOptions {
	return &ConstantsOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        yamlFormat,
	}
}

func NewCmdConstants() *cobra.Command {
	o := DefaultConstantsOptions()
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Display the CPU constants the estimation runs on.",
		Args:  cobra.NoArgs,
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

func (o *ConstantsOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *ConstantsOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *ConstantsOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *ConstantsOptions) Run(ctx context.Context, args []string) error {
	p, err := o.Profile()
	if err != nil {
		return err
	}

	var marshalled []byte
	switch o.Output {
	case jsonFormat:
		marshalled, err = json.MarshalIndent(p, "", "  ")
		marshalled = append(marshalled, '\n')
	default:
		marshalled, err = yaml.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("marshalling profile: %w", err)
	}

	w := o.out
	if w == nil {
		w = os.Stdout
	}
	_, err = w.Write(marshalled)
	return err
}
