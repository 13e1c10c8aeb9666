package ports

import "context"

// ResultSink receives a rendered list.
type ResultSink interface {
	Write(ctx context.Context, result string) error
}
