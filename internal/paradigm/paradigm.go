package paradigm

import (
	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// Paradigm is a named Transformer.
type Paradigm interface {
	ports.Transformer
	Name() string
	Description() string
}

const separator = "\n"

func invalidStyle(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidArgument,
		Err:  err,
	}
}
