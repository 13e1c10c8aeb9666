package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/paradigm/internal/ui/tui"
)

// sampleNames are previewed when the TUI is started without input.
var sampleNames = []string{"toto", "bob", "titi"}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:          "paradigm [names...]",
		Short:        "Render names as a bulleted list, three programming paradigms at a time",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			names := sampleNames
			if len(args) > 0 || in.file != "" {
				src, closeSrc, err := resolveSource(cmd, args, in)
				if err != nil {
					return err
				}
				defer closeSrc()

				names, err = src.LoadNames(cmd.Context())
				if err != nil {
					return err
				}
			}

			return tui.Run(tui.Deps{
				Paradigms: app.paradigms,
				Names:     names,
				Style:     app.cfg.Style,
				Paradigm:  app.cfg.Paradigm,
				Logger:    app.logger,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default: ./.paradigm.yaml or ~/.paradigm.yaml)")
	pf.StringP("style", "s", "asciidoc", "List style: asciidoc|markdown")
	pf.StringP("paradigm", "p", "procedural", "Paradigm: procedural|object|functional")
	pf.String("log-dir", "", "Write JSON logs to this directory")
	pf.Bool("debug", false, "Enable verbose logging")

	in.register(cmd)

	cmd.AddCommand(renderCmd())
	cmd.AddCommand(compareCmd())
	cmd.AddCommand(paradigmsCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
