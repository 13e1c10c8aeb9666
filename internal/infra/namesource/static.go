package namesource

import (
	"context"

	"github.com/aalvaropc/paradigm/internal/ports"
)

// Static serves a fixed list of names, such as command-line arguments.
type Static struct {
	names []string
}

func NewStatic(names ...string) *Static {
	cp := make([]string, len(names))
	copy(cp, names)
	return &Static{names: cp}
}

var _ ports.NameSource = (*Static)(nil)

func (s *Static) LoadNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}
