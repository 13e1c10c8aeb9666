package paradigm

import (
	"strings"

	"github.com/aalvaropc/paradigm/internal/domain"
)

// Procedural builds the result in a single loop, picking the list marker with
// a boolean flag.
type Procedural struct{}

var _ Paradigm = Procedural{}

func (Procedural) Name() string { return "procedural" }

func (Procedural) Description() string {
	return "sequential loop with an inline asciidoc/markdown flag"
}

func (p Procedural) Transform(names []string, style domain.Style) (string, error) {
	if err := style.Validate(); err != nil {
		return "", invalidStyle("paradigm.procedural", err)
	}
	return p.transform(names, style == domain.StyleAsciidoc), nil
}

func (Procedural) transform(names []string, isAsciidoc bool) string {
	var out strings.Builder
	sep := ""

	for _, name := range names {
		formatted := formattedValue(name)

		out.WriteString(sep)
		if isAsciidoc {
			out.WriteString("* ")
		} else {
			out.WriteString("- ")
		}
		out.WriteString(formatted)

		sep = separator
	}

	return out.String()
}

func formattedValue(name string) string {
	if domain.IsSpecialName(name) {
		return strings.ToUpper(name)
	}
	return name
}
