package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/paradigm/internal/domain"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, ".paradigm.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("style", "asciidoc", "")
	fs.String("paradigm", "procedural", "")
	fs.String("log-dir", "", "")
	fs.Bool("debug", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader(WithSearchDirs(t.TempDir())).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FromSearchedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "style: md\nparadigm: Functional\nlog:\n  dir: logs\n  debug: true\n")

	l := NewLoader(WithSearchDirs(dir))
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.StyleMarkdown, cfg.Style)
	assert.Equal(t, "functional", cfg.Paradigm)
	assert.Equal(t, "logs", cfg.Logging.Dir)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, filepath.Join(dir, ".paradigm.yaml"), l.ConfigFileUsed())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "style: markdown\nparadigm: object\n")
	t.Setenv("PARADIGM_STYLE", "asciidoc")
	t.Setenv("PARADIGM_LOG_DIR", "/tmp/paradigm-logs")

	cfg, err := NewLoader(WithSearchDirs(dir)).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.StyleAsciidoc, cfg.Style)
	assert.Equal(t, "object", cfg.Paradigm)
	assert.Equal(t, "/tmp/paradigm-logs", cfg.Logging.Dir)
}

func TestLoad_ChangedFlagsWin(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "style: markdown\nparadigm: object\n")
	t.Setenv("PARADIGM_PARADIGM", "functional")

	fs := testFlags()
	require.NoError(t, fs.Set("paradigm", "procedural"))

	l := NewLoader(WithSearchDirs(dir))
	require.NoError(t, l.BindFlags(fs))
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "procedural", cfg.Paradigm)
	// unchanged flag keeps the file value
	assert.Equal(t, domain.StyleMarkdown, cfg.Style)
}

func TestBindFlags_SkipsMissingFlags(t *testing.T) {
	fs := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	fs.String("style", "asciidoc", "")
	assert.NoError(t, NewLoader(WithSearchDirs(t.TempDir())).BindFlags(fs))
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestLoad_ExplicitFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(p, []byte("style: markdown\n"), 0o644))

	cfg, err := NewLoader(WithConfigFile(p)).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.StyleMarkdown, cfg.Style)
}

func TestLoad_InvalidStyle(t *testing.T) {
	dir := t.TempDir()
	p := writeConfig(t, dir, "style: rst\n")

	_, err := NewLoader(WithSearchDirs(dir)).Load()
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.Contains(t, err.Error(), p)
	assert.Contains(t, err.Error(), "rst")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "style: [unclosed\n")

	_, err := NewLoader(WithSearchDirs(dir)).Load()
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLoad_EmptyParadigm(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "paradigm: \"  \"\n")

	_, err := NewLoader(WithSearchDirs(dir)).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
