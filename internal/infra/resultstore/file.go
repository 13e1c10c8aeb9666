package resultstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// FileSink writes the rendered list to a file, replacing it atomically.
type FileSink struct {
	path string
	perm os.FileMode
}

type Option func(*FileSink)

func WithPerm(perm os.FileMode) Option {
	return func(s *FileSink) { s.perm = perm }
}

func NewFileSink(path string, opts ...Option) *FileSink {
	s := &FileSink{path: filepath.Clean(path), perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ResultSink = (*FileSink)(nil)

func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Write(ctx context.Context, result string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "resultstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	// tmp then rename so readers never see a partial list
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(withNewline(result)), s.perm); err != nil {
		return &domain.OpError{
			Op:   "resultstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "resultstore.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

// withNewline terminates non-empty output with a single newline, the way a
// shell user expects a text file to end.
func withNewline(result string) string {
	if result == "" {
		return ""
	}
	return result + "\n"
}
