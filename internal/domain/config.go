package domain

// Config represents the settings loaded from .paradigm.yaml, the environment
// and command-line flags.
type Config struct {
	Style    Style
	Paradigm string
	Logging  LoggingConfig
}

type LoggingConfig struct {
	// Dir receives paradigm.log; empty disables file logging.
	Dir   string
	Debug bool
}

// DefaultConfig provides sane defaults if no configuration is present.
func DefaultConfig() Config {
	return Config{
		Style:    StyleAsciidoc,
		Paradigm: "procedural",
	}
}
