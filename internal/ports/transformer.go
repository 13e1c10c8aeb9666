package ports

import "github.com/aalvaropc/paradigm/internal/domain"

// Transformer renders names as a list in the given style.
// Implementations must be pure and safe for concurrent use.
type Transformer interface {
	Transform(names []string, style domain.Style) (string, error)
}
