package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/changebase/constant"
	"github.com/calebcase/changebase/display"
	"github.com/calebcase/changebase/explain"
	"github.com/calebcase/changebase/radix"
)

// ConvertOptions holds the flags of the convert command.
type ConvertOptions struct {
	From    string
	To      string
	Details bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a representation from one base to another",
		Long: `Convert reads VALUE as a representation in the --from base and prints
the same value written in the --to base.

Bases are decimal numbers (10, 2.5) or constant names (phi, pi, e, sqrt2,
hex). Output digits below the precision floor are elided with "…".`,
		Example: `  changebase convert 10 --to 2
  changebase convert 3 --to phi --details
  changebase convert FF --from hex --to 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config

			if !cmd.Flags().Changed("from") {
				opts.From = cfg.Defaults.From
			}

			if !cmd.Flags().Changed("to") {
				opts.To = cfg.Defaults.To
			}

			return runConvert(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "input base (default from config, else 10)")
	cmd.Flags().StringVarP(&opts.To, "to", "t", "", "output base (default from config, else 2)")
	cmd.Flags().BoolVarP(&opts.Details, "details", "d", false, "show how the output converts back to base 10")

	return cmd
}

func runConvert(cmd *cobra.Command, rootOpts *RootOptions, opts *ConvertOptions, text string) (err error) {
	log := rootOpts.Log
	out := cmd.OutOrStdout()

	from, err := constant.ParseBase(opts.From)
	if err != nil {
		return err
	}

	to, err := constant.ParseBase(opts.To)
	if err != nil {
		return err
	}

	ctx := rootOpts.Config.Context()
	conv := radix.NewConverter(ctx)

	value, err := conv.ValueFromBase(text, from)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"base":  opts.From,
		"value": value.String(),
	}).Debug("parsed input")

	output, err := conv.ValueToBase(value, to)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"base":  opts.To,
		"value": output,
	}).Debug("rendered output")

	_, err = fmt.Fprintf(out, "Input value:  %s (base 10)\n", display.RoundedString(value, 0))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Output value: %s (base %s)\n", output, opts.To)
	if err != nil {
		return err
	}

	if !opts.Details {
		return nil
	}

	b, err := explain.New(ctx).Explain(output, to, rootOpts.Config.Defaults.Terms)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, "\nThe output value can be converted to base-10:")
	if err != nil {
		return err
	}

	return newTable(b, opts.To).write(out)
}
