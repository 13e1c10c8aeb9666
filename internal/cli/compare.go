package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/paradigm/internal/usecase"
)

func compareCmd() *cobra.Command {
	var in inputFlags

	c := &cobra.Command{
		Use:   "compare [names...]",
		Short: "Render with every paradigm and check that they agree",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			src, closeSrc, err := resolveSource(cmd, args, in)
			if err != nil {
				return err
			}
			defer closeSrc()

			var trs []usecase.NamedTransformer
			for _, p := range app.paradigms.All() {
				trs = append(trs, p)
			}

			uc := usecase.NewCompareParadigms(src, trs, app.logger)
			cmp, err := uc.Execute(cmd.Context(), app.cfg.Style)
			if err != nil {
				return err
			}

			printComparison(cmd.OutOrStdout(), cmp)
			if !cmp.Agree {
				return fmt.Errorf("paradigms disagree (%d differing output(s))", len(cmp.Disagreeing()))
			}
			return nil
		},
	}

	in.register(c)
	return c
}

func printComparison(w io.Writer, cmp usecase.Comparison) {
	fmt.Fprintf(w, "Style: %s\n", cmp.Style)
	fmt.Fprintf(w, "Names: %d\n\n", len(cmp.Names))

	for _, o := range cmp.Outputs {
		fmt.Fprintf(w, "== %s\n", o.Name)
		if o.Result == "" {
			fmt.Fprintln(w, "(empty)")
		} else {
			fmt.Fprintln(w, o.Result)
		}
		fmt.Fprintln(w)
	}

	if cmp.Agree {
		fmt.Fprintln(w, "✓ all paradigms agree")
		return
	}
	for _, o := range cmp.Disagreeing() {
		fmt.Fprintf(w, "✗ %s differs\n", o.Name)
	}
}
