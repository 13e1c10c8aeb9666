// Package settings resolves domain.Config from, in increasing precedence:
// built-in defaults, a .paradigm.yaml file, PARADIGM_* environment variables
// and command-line flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aalvaropc/paradigm/internal/domain"
)

const (
	EnvPrefix  = "PARADIGM"
	ConfigName = ".paradigm"

	KeyStyle    = "style"
	KeyParadigm = "paradigm"
	KeyLogDir   = "log.dir"
	KeyLogDebug = "log.debug"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"style":    KeyStyle,
	"paradigm": KeyParadigm,
	"log-dir":  KeyLogDir,
	"debug":    KeyLogDebug,
}

type Loader struct {
	v          *viper.Viper
	configFile string
	searchDirs []string
}

type Option func(*Loader)

// WithConfigFile loads exactly this file; a missing file is an error.
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.configFile = strings.TrimSpace(path) }
}

// WithSearchDirs overrides where .paradigm.yaml is looked up.
func WithSearchDirs(dirs ...string) Option {
	return func(l *Loader) { l.searchDirs = dirs }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		v:          viper.New(),
		searchDirs: defaultSearchDirs(),
	}
	for _, opt := range opts {
		opt(l)
	}

	def := domain.DefaultConfig()
	l.v.SetDefault(KeyStyle, def.Style.String())
	l.v.SetDefault(KeyParadigm, def.Paradigm)
	l.v.SetDefault(KeyLogDir, def.Logging.Dir)
	l.v.SetDefault(KeyLogDebug, def.Logging.Debug)

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	l.v.AutomaticEnv()

	return l
}

// BindFlags lets changed flags in fs take precedence over file and env values.
// Flags absent from fs are skipped.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return &domain.OpError{
				Op:   "settings.bind",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
	}
	return nil
}

// Load reads the config file (if any) and returns the merged configuration.
func (l *Loader) Load() (domain.Config, error) {
	if err := l.readConfig(); err != nil {
		return domain.DefaultConfig(), err
	}

	style, err := domain.ParseStyle(l.v.GetString(KeyStyle))
	if err != nil {
		return domain.DefaultConfig(), l.invalid(err)
	}

	paradigm := strings.ToLower(strings.TrimSpace(l.v.GetString(KeyParadigm)))
	if paradigm == "" {
		return domain.DefaultConfig(), l.invalid(fmt.Errorf("paradigm must not be empty: %w", domain.ErrInvalidConfig))
	}

	return domain.Config{
		Style:    style,
		Paradigm: paradigm,
		Logging: domain.LoggingConfig{
			Dir:   strings.TrimSpace(l.v.GetString(KeyLogDir)),
			Debug: l.v.GetBool(KeyLogDebug),
		},
	}, nil
}

// ConfigFileUsed returns the file Load read, or "" when none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) readConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if _, err := os.Stat(l.configFile); err != nil {
			return &domain.OpError{
				Op:   "settings.load",
				Kind: domain.KindNotFound,
				Path: l.configFile,
				Err:  err,
			}
		}
	} else {
		l.v.SetConfigName(ConfigName)
		l.v.SetConfigType("yaml")
		for _, d := range l.searchDirs {
			l.v.AddConfigPath(d)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return &domain.OpError{
			Op:   "settings.load",
			Kind: domain.KindInvalidConfig,
			Path: l.v.ConfigFileUsed(),
			Err:  err,
		}
	}
	return nil
}

func (l *Loader) invalid(err error) error {
	return &domain.OpError{
		Op:   "settings.load",
		Kind: domain.KindInvalidConfig,
		Path: l.v.ConfigFileUsed(),
		Err:  err,
	}
}

// defaultSearchDirs prefers the nearest ancestor holding a config file,
// then the home directory.
func defaultSearchDirs() []string {
	dirs := []string{"."}
	if wd, err := os.Getwd(); err == nil {
		if found, ferr := FindConfigDir(wd); ferr == nil {
			dirs = []string{found}
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}
