package namesource

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/paradigm/internal/domain"
	"github.com/aalvaropc/paradigm/internal/ports"
)

// Opened is a NameSource backed by a file that must be closed after use.
type Opened struct {
	ports.NameSource
	close func() error
}

func (o *Opened) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

// Open picks a source from the file extension: .yaml/.yml are YAML, .json
// is queried with expr (or DefaultJSONPath), anything else is one name per
// line. A non-empty expr forces JSON.
func Open(path string, expr string) (*Opened, error) {
	ext := strings.ToLower(filepath.Ext(path))
	forceJSON := strings.TrimSpace(expr) != ""

	if !forceJSON && (ext == ".yaml" || ext == ".yml") {
		return &Opened{NameSource: NewYAMLFile(path)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "namesource.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if forceJSON || ext == ".json" {
		return &Opened{
			NameSource: NewJSONPath(f, WithExpr(expr), WithSourcePath(path)),
			close:      f.Close,
		}, nil
	}
	return &Opened{
		NameSource: NewLines(f, WithPath(path)),
		close:      f.Close,
	}, nil
}
