package namesource

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// Lines reads one name per line. A trailing newline does not produce an
// extra empty name, but blank lines elsewhere are kept.
type Lines struct {
	r    io.Reader
	path string
}

type LinesOption func(*Lines)

// WithPath records where r came from, for error messages.
func WithPath(p string) LinesOption {
	return func(l *Lines) { l.path = p }
}

func NewLines(r io.Reader, opts ...LinesOption) *Lines {
	l := &Lines{r: r}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.NameSource = (*Lines)(nil)

func (l *Lines) LoadNames(ctx context.Context) ([]string, error) {
	if l.r == nil {
		return nil, &domain.OpError{
			Op:   "namesource.lines",
			Kind: domain.KindInvalidArgument,
			Path: l.path,
			Err:  domain.ErrInvalidArgument,
		}
	}

	sc := bufio.NewScanner(l.r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	names := []string{}
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		names = append(names, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "namesource.lines",
			Kind: domain.KindExecution,
			Path: l.path,
			Err:  err,
		}
	}
	return names, nil
}
