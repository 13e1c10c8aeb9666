package tui

import (
	"log/slog"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/paradigm"
)

type Deps struct {
	Paradigms *paradigm.Registry

	// Names to preview; Style and Paradigm are the initial selection.
	Names    []string
	Style    domain.Style
	Paradigm string

	Logger *slog.Logger
}
