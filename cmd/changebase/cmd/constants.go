package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/calebcase/changebase/constant"
	"github.com/calebcase/changebase/display"
)

// constantLimit is the number of significant digits shown per constant.
const constantLimit = 12

// NewConstantsCommand creates the constants command.
func NewConstantsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the named bases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()
			names := constant.Names()

			width := 0
			for _, name := range names {
				if w := runewidth.StringWidth(name); w > width {
					width = w
				}
			}

			for _, name := range names {
				v, _ := constant.Resolve(name)

				_, err = fmt.Fprintf(out, "%s  %s\n", runewidth.FillRight(name, width), display.RoundedString(v, constantLimit))
				if err != nil {
					return err
				}
			}

			rootOpts.Log.WithField("count", len(names)).Debug("listed constants")

			return nil
		},
	}
}
