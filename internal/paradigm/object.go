package paradigm

import (
	"strings"

	"github.com/aalvaropc/paradigm/internal/domain"
)

// Object delegates each formatting decision to a small capability value
// looked up per name (name formatting) or per call (list formatting).
type Object struct{}

var _ Paradigm = Object{}

func (Object) Name() string { return "object" }

func (Object) Description() string {
	return "capability lookup per decision, composed by delegation"
}

// NameFormatter formats one raw name for display.
type NameFormatter interface {
	Format(name string) string
}

// OutputFormat turns a display name into a list item.
type OutputFormat interface {
	FormatList(name string) string
}

type bobFormat struct{}

func (bobFormat) Format(name string) string { return strings.ToUpper(name) }

type standardFormat struct{}

func (standardFormat) Format(name string) string { return name }

type asciidocFormat struct{}

func (asciidocFormat) FormatList(name string) string { return "* " + name }

type markdownFormat struct{}

func (markdownFormat) FormatList(name string) string { return "- " + name }

func (o Object) Transform(names []string, style domain.Style) (string, error) {
	output, err := outputFormatFor(style)
	if err != nil {
		return "", invalidStyle("paradigm.object", err)
	}
	return o.transform(names, output), nil
}

func (Object) transform(names []string, output OutputFormat) string {
	var out strings.Builder
	for i, name := range names {
		if i > 0 {
			out.WriteString(separator)
		}
		out.WriteString(output.FormatList(nameFormatterFor(name).Format(name)))
	}
	return out.String()
}

func nameFormatterFor(name string) NameFormatter {
	if domain.IsSpecialName(name) {
		return bobFormat{}
	}
	return standardFormat{}
}

func outputFormatFor(style domain.Style) (OutputFormat, error) {
	switch style {
	case domain.StyleAsciidoc:
		return asciidocFormat{}, nil
	case domain.StyleMarkdown:
		return markdownFormat{}, nil
	default:
		return nil, style.Validate()
	}
}
