package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/paradigm/internal/infra/namesource"
	"github.com/aalvaropc/paradigm/internal/ports"
)

type inputFlags struct {
	file     string
	jsonpath string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "Read names from a file (.yaml/.yml, .json, or one per line; - for stdin)")
	cmd.Flags().StringVar(&in.jsonpath, "jsonpath", "", "JSONPath selecting names in a JSON document (e.g. $.users[*].name)")
}

// resolveSource picks where names come from: positional args, then --file,
// then stdin. The returned func releases any opened file.
func resolveSource(cmd *cobra.Command, args []string, in inputFlags) (ports.NameSource, func(), error) {
	noop := func() {}

	if len(args) > 0 {
		return namesource.NewStatic(args...), noop, nil
	}

	if in.file == "" || in.file == "-" {
		if in.jsonpath != "" {
			return namesource.NewJSONPath(cmd.InOrStdin(),
				namesource.WithExpr(in.jsonpath),
				namesource.WithSourcePath("stdin"),
			), noop, nil
		}
		return namesource.NewLines(cmd.InOrStdin(), namesource.WithPath("stdin")), noop, nil
	}

	src, err := namesource.Open(in.file, in.jsonpath)
	if err != nil {
		return nil, noop, err
	}
	return src, func() { _ = src.Close() }, nil
}
