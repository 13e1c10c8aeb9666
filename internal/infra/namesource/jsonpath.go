package namesource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// DefaultJSONPath selects the whole document, which must then be an array
// of strings.
const DefaultJSONPath = "$"

// JSONPath reads a JSON document and selects names with a JSONPath
// expression such as "$.users[*].name".
type JSONPath struct {
	r    io.Reader
	expr string
	path string
}

type JSONPathOption func(*JSONPath)

func WithExpr(expr string) JSONPathOption {
	return func(j *JSONPath) {
		if e := strings.TrimSpace(expr); e != "" {
			j.expr = e
		}
	}
}

// WithSourcePath records where the document came from, for error messages.
func WithSourcePath(p string) JSONPathOption {
	return func(j *JSONPath) { j.path = p }
}

func NewJSONPath(r io.Reader, opts ...JSONPathOption) *JSONPath {
	j := &JSONPath{r: r, expr: DefaultJSONPath}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

var _ ports.NameSource = (*JSONPath)(nil)

func (j *JSONPath) LoadNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if j.r == nil {
		return nil, j.fail(domain.KindInvalidArgument, domain.ErrInvalidArgument)
	}

	body, err := io.ReadAll(j.r)
	if err != nil {
		return nil, j.fail(domain.KindExecution, err)
	}

	doc, err := parseJSON(body)
	if err != nil {
		return nil, j.fail(domain.KindInvalidConfig, fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(j.expr, doc)
	if err != nil {
		return nil, j.fail(domain.KindInvalidConfig, fmt.Errorf("jsonpath %s: %w", j.expr, err))
	}

	names, err := toNames(val)
	if err != nil {
		return nil, j.fail(domain.KindInvalidConfig, fmt.Errorf("jsonpath %s: %w", j.expr, err))
	}
	return names, nil
}

func (j *JSONPath) fail(kind domain.ErrorKind, err error) error {
	return &domain.OpError{
		Op:   "namesource.jsonpath",
		Kind: kind,
		Path: j.path,
		Err:  err,
	}
}

func parseJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func toNames(val any) ([]string, error) {
	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, expected string: %w", i, item, domain.ErrInvalidConfig)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("selected %T, expected string or array of strings: %w", val, domain.ErrInvalidConfig)
	}
}
