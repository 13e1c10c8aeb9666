package domain

import (
	"fmt"
	"strings"
)

// Style selects how a display name is rendered as a list item.
type Style string

const (
	StyleAsciidoc Style = "asciidoc"
	StyleMarkdown Style = "markdown"
)

// Styles lists every supported style in a stable order.
func Styles() []Style {
	return []Style{StyleAsciidoc, StyleMarkdown}
}

// Marker returns the list-item prefix for s, or "" if s is not a known style.
func (s Style) Marker() string {
	switch s {
	case StyleAsciidoc:
		return "* "
	case StyleMarkdown:
		return "- "
	default:
		return ""
	}
}

// FormatItem turns a display name into a list item. Callers are expected to
// have validated s; an unknown style yields the name without a marker.
func (s Style) FormatItem(name string) string {
	return s.Marker() + name
}

// Validate rejects the zero value and anything outside the closed set.
func (s Style) Validate() error {
	switch s {
	case StyleAsciidoc, StyleMarkdown:
		return nil
	default:
		return &Error{
			Kind:  KindInvalidArgument,
			Msg:   fmt.Sprintf("unsupported list style %q (expected asciidoc|markdown)", string(s)),
			Cause: ErrInvalidArgument,
		}
	}
}

// Next returns the other style; used to toggle between the two.
func (s Style) Next() Style {
	if s == StyleAsciidoc {
		return StyleMarkdown
	}
	return StyleAsciidoc
}

func (s Style) String() string { return string(s) }

// ParseStyle accepts the style names and their common short forms.
func ParseStyle(in string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "asciidoc", "adoc", "asciidoctor":
		return StyleAsciidoc, nil
	case "markdown", "md":
		return StyleMarkdown, nil
	default:
		return "", Style(in).Validate()
	}
}
