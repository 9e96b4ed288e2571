package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/changebase/constant"
	"github.com/calebcase/changebase/display"
	"github.com/calebcase/changebase/explain"
)

// ExplainOptions holds the flags of the explain command.
type ExplainOptions struct {
	Base  string
	Terms int
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExplainOptions{}

	cmd := &cobra.Command{
		Use:   "explain REPRESENTATION",
		Short: "Show the terms that give a representation its value",
		Example: `  changebase explain 100.01 --base phi
  changebase explain 1[35] --base 100 --terms 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config

			if !cmd.Flags().Changed("base") {
				opts.Base = cfg.Defaults.From
			}

			if !cmd.Flags().Changed("terms") {
				opts.Terms = cfg.Defaults.Terms
			}

			return runExplain(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Base, "base", "b", "", "base of the representation (default from config, else 10)")
	cmd.Flags().IntVarP(&opts.Terms, "terms", "n", explain.DefaultTerms, "terms to show, 0 for all")

	return cmd
}

func runExplain(cmd *cobra.Command, rootOpts *RootOptions, opts *ExplainOptions, text string) (err error) {
	out := cmd.OutOrStdout()

	base, err := constant.ParseBase(opts.Base)
	if err != nil {
		return err
	}

	b, err := explain.New(rootOpts.Config.Context()).Explain(text, base, opts.Terms)
	if err != nil {
		return err
	}

	rootOpts.Log.WithFields(logrus.Fields{
		"base":      opts.Base,
		"terms":     len(b.Terms),
		"truncated": b.Truncated,
	}).Debug("explained representation")

	err = newTable(b, opts.Base).write(out)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "\nValue: %s (base 10)\n", display.RoundedString(b.Total, 0))

	return err
}
