package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

type RenderList struct {
	source      ports.NameSource
	transformer ports.Transformer
	sink        ports.ResultSink
	logger      *slog.Logger
}

type RenderOption func(*RenderList)

// WithSink sends every successful result to s.
func WithSink(s ports.ResultSink) RenderOption {
	return func(uc *RenderList) { uc.sink = s }
}

func WithLogger(l *slog.Logger) RenderOption {
	return func(uc *RenderList) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewRenderList(src ports.NameSource, tr ports.Transformer, opts ...RenderOption) *RenderList {
	uc := &RenderList{
		source:      src,
		transformer: tr,
		logger:      discardLogger(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the names, renders them in style and hands the result to the
// configured sink. The rendered list is returned even when the sink fails.
func (uc *RenderList) Execute(ctx context.Context, style domain.Style) (string, error) {
	if uc.source == nil || uc.transformer == nil {
		return "", &domain.OpError{
			Op:   "usecase.render",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("name source and transformer are required: %w", domain.ErrInvalidArgument),
		}
	}

	names, err := uc.source.LoadNames(ctx)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	result, err := uc.transformer.Transform(names, style)
	if err != nil {
		uc.logger.Debug("transform.failed", "style", style.String(), "error", err)
		return "", err
	}

	uc.logger.Info("transform.completed", "style", style.String(), "names", len(names))

	if uc.sink != nil {
		if err := uc.sink.Write(ctx, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
