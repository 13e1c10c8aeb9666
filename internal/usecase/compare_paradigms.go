package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// NamedTransformer is a Transformer that can be reported by name.
type NamedTransformer interface {
	ports.Transformer
	Name() string
}

// ParadigmOutput is the result of one transformer in a comparison.
type ParadigmOutput struct {
	Name   string
	Result string
}

type Comparison struct {
	Style   domain.Style
	Names   []string
	Outputs []ParadigmOutput
	Agree   bool
}

// Disagreeing returns the outputs whose result differs from the first one.
func (c Comparison) Disagreeing() []ParadigmOutput {
	if len(c.Outputs) == 0 {
		return nil
	}
	var out []ParadigmOutput
	for _, o := range c.Outputs[1:] {
		if o.Result != c.Outputs[0].Result {
			out = append(out, o)
		}
	}
	return out
}

type CompareParadigms struct {
	source       ports.NameSource
	transformers []NamedTransformer
	logger       *slog.Logger
}

func NewCompareParadigms(src ports.NameSource, trs []NamedTransformer, logger *slog.Logger) *CompareParadigms {
	if logger == nil {
		logger = discardLogger()
	}
	return &CompareParadigms{
		source:       src,
		transformers: trs,
		logger:       logger,
	}
}

// Execute renders the same names with every transformer concurrently. The
// first transformer error cancels the rest and is returned.
func (uc *CompareParadigms) Execute(ctx context.Context, style domain.Style) (Comparison, error) {
	if uc.source == nil || len(uc.transformers) == 0 {
		return Comparison{}, &domain.OpError{
			Op:   "usecase.compare",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("name source and at least one transformer are required: %w", domain.ErrInvalidArgument),
		}
	}

	names, err := uc.source.LoadNames(ctx)
	if err != nil {
		return Comparison{}, err
	}

	outputs := make([]ParadigmOutput, len(uc.transformers))
	g, gctx := errgroup.WithContext(ctx)

	for i, tr := range uc.transformers {
		i, tr := i, tr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := tr.Transform(names, style)
			if err != nil {
				return fmt.Errorf("paradigm %q: %w", tr.Name(), err)
			}
			outputs[i] = ParadigmOutput{Name: tr.Name(), Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{
		Style:   style,
		Names:   names,
		Outputs: outputs,
	}
	cmp.Agree = len(cmp.Disagreeing()) == 0

	uc.logger.Info("compare.completed",
		"style", style.String(),
		"paradigms", len(outputs),
		"agree", cmp.Agree,
	)
	return cmp, nil
}
