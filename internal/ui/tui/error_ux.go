package tui

import (
	"errors"

	"github.com/aalvaropc/paradigm/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidArgument:
			if oe.Err == nil {
				return "Invalid input"
			}
			return "Invalid input: " + oe.Err.Error()
		case domain.KindNotFound:
			return "Not found"
		}
	}
	return "Unexpected error (see logs)"
}
