package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/paradigm/internal/paradigm"
)

func paradigmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paradigms",
		Short: "List available paradigms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, p := range paradigm.Default().All() {
				fmt.Fprintf(w, "- %-11s %s\n", p.Name(), p.Description())
			}
			return nil
		},
	}
}
