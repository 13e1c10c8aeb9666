package usecase

import (
	"context"
	"errors"

	"github.com/aalvaropc/paradigm/internal/domain"
)

// --- fakes shared by usecase tests ---

type fakeSource struct {
	names []string
	err   error
	calls int
}

func (f *fakeSource) LoadNames(_ context.Context) ([]string, error) {
	f.calls++
	return f.names, f.err
}

type fakeSink struct {
	got []string
	err error
}

func (s *fakeSink) Write(_ context.Context, result string) error {
	s.got = append(s.got, result)
	return s.err
}

// stubTransformer returns a fixed result/error pair.
type stubTransformer struct {
	name   string
	result string
	err    error
}

func (s stubTransformer) Name() string { return s.name }

func (s stubTransformer) Transform(_ []string, _ domain.Style) (string, error) {
	return s.result, s.err
}

var errBoom = errors.New("boom")
