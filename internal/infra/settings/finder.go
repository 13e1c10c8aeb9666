package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/paradigm/internal/domain"
)

var configExts = []string{".yaml", ".yml"}

// FindConfigDir walks up from startDir and returns the first directory that
// holds a .paradigm.yaml (or .yml).
func FindConfigDir(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "settings.find",
			Kind: domain.KindInvalidArgument,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "settings.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		for _, ext := range configExts {
			if info, err := os.Stat(filepath.Join(cur, ConfigName+ext)); err == nil && !info.IsDir() {
				return cur, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "settings.find",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
