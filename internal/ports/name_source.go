package ports

import "context"

// NameSource loads the ordered list of names to render (e.g., stdin, a YAML file).
type NameSource interface {
	LoadNames(ctx context.Context) ([]string, error)
}
