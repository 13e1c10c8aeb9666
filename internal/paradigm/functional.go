package paradigm

import (
	"strings"

	"github.com/aalvaropc/paradigm/internal/domain"
)

// Functional applies unary string functions over the sequence, then reduces
// the items with a join.
type Functional struct{}

var _ Paradigm = Functional{}

func (Functional) Name() string { return "functional" }

func (Functional) Description() string {
	return "map name formatter, map list formatter, join"
}

func (f Functional) Transform(names []string, style domain.Style) (string, error) {
	if err := style.Validate(); err != nil {
		return "", invalidStyle("paradigm.functional", err)
	}
	return f.transform(names, style.FormatItem), nil
}

func (Functional) transform(names []string, formatItem func(string) string) string {
	return Pipe(
		Map(domain.FormatName),
		Map(formatItem),
	)(names, Join(separator))
}

// Stage transforms a whole sequence.
type Stage func([]string) []string

// Reducer collapses a sequence into a single value.
type Reducer func([]string) string

// Map lifts fn into a Stage. The input slice is never modified.
func Map(fn func(string) string) Stage {
	return func(in []string) []string {
		out := make([]string, len(in))
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	}
}

// Join returns a Reducer joining items with sep.
func Join(sep string) Reducer {
	return func(in []string) string { return strings.Join(in, sep) }
}

// Pipe composes stages left to right and finishes with reduce.
func Pipe(stages ...Stage) func([]string, Reducer) string {
	return func(in []string, reduce Reducer) string {
		for _, s := range stages {
			in = s(in)
		}
		return reduce(in)
	}
}
