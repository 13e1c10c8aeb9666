package namesource

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// YAMLFile loads names from either a top-level sequence of strings or a
// mapping with a "names" sequence.
type YAMLFile struct {
	path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

var _ ports.NameSource = (*YAMLFile)(nil)

type yamlNames struct {
	Names []string `yaml:"names"`
}

func (y *YAMLFile) LoadNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(y.path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "namesource.yaml",
			Kind: domain.KindNotFound,
			Path: y.path,
			Err:  err,
		}
	}

	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, y.invalid(err)
	}
	if len(node.Content) == 0 {
		return []string{}, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var names []string
		if err := root.Decode(&names); err != nil {
			return nil, y.invalid(err)
		}
		return nonNil(names), nil
	case yaml.MappingNode:
		var doc yamlNames
		if err := root.Decode(&doc); err != nil {
			return nil, y.invalid(err)
		}
		return nonNil(doc.Names), nil
	default:
		return nil, y.invalid(fmt.Errorf("expected a list of names or a \"names\" key: %w", domain.ErrInvalidConfig))
	}
}

func (y *YAMLFile) invalid(err error) error {
	return &domain.OpError{
		Op:   "namesource.yaml",
		Kind: domain.KindInvalidConfig,
		Path: y.path,
		Err:  err,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
