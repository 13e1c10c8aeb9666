package resultstore

import (
	"context"
	"io"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// WriterSink prints the rendered list to w, typically stdout.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

var _ ports.ResultSink = (*WriterSink)(nil)

func (s *WriterSink) Write(ctx context.Context, result string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, withNewline(result)); err != nil {
		return &domain.OpError{
			Op:   "resultstore.print",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return nil
}

// Multi fans a result out to every sink, stopping at the first error.
type Multi []ports.ResultSink

var _ ports.ResultSink = Multi(nil)

func (m Multi) Write(ctx context.Context, result string) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Write(ctx, result); err != nil {
			return err
		}
	}
	return nil
}
