// Package cmd implements the changebase command line.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/changebase/config"
)

// RootOptions holds the global flags and the state they produce.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	Config *config.Config
	Log    *logrus.Logger
}

// NewRootCommand creates the changebase command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "changebase",
		Short: "Convert numbers between arbitrary bases",
		Long: `changebase converts numbers between positional bases, including
non-integer bases such as φ, π, e and √2.

Digits above 9 are written with letters (A is 10, Z is 35) and any digit
may be written in brackets as a decimal integer, so [35] in base 100 is the
digit thirty-five.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (TOML)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewExplainCommand(opts))
	cmd.AddCommand(NewConstantsCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) (err error) {
	o.Log = logrus.New()
	o.Log.SetOutput(cmd.ErrOrStderr())
	o.Log.SetLevel(logrus.WarnLevel)

	if o.Verbose {
		o.Log.SetLevel(logrus.DebugLevel)
	}

	o.Config, err = config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	o.Log.WithFields(logrus.Fields{
		"config":  o.ConfigPath,
		"working": o.Config.Precision.Working,
		"floor":   o.Config.Precision.Floor,
	}).Debug("loaded configuration")

	return nil
}

// Execute runs the command line and reports any error on stderr.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return err
}
