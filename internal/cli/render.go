package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/paradigm/internal/infra/resultstore"
	"github.com/aalvaropc/paradigm/internal/ports"
	"github.com/aalvaropc/paradigm/internal/usecase"
)

func renderCmd() *cobra.Command {
	var in inputFlags
	var out string

	c := &cobra.Command{
		Use:   "render [names...]",
		Short: "Render names as a list (args, --file, or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			p, err := app.paradigms.Lookup(app.cfg.Paradigm)
			if err != nil {
				return err
			}

			src, closeSrc, err := resolveSource(cmd, args, in)
			if err != nil {
				return err
			}
			defer closeSrc()

			var sink ports.ResultSink = resultstore.NewWriterSink(cmd.OutOrStdout())
			if out != "" {
				sink = resultstore.NewFileSink(out)
			}

			uc := usecase.NewRenderList(src, p,
				usecase.WithSink(sink),
				usecase.WithLogger(app.logger.With("paradigm", p.Name())),
			)
			_, err = uc.Execute(cmd.Context(), app.cfg.Style)
			return err
		},
	}

	in.register(c)
	c.Flags().StringVarP(&out, "out", "o", "", "Write the list to this file instead of stdout")
	return c
}
