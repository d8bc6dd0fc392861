// Package config resolves the daemon's tunables from CLI flags,
// environment variables (LOGTAIL_ prefix), and an optional config file,
// in that order of precedence, via spf13/viper bound to a spf13/cobra
// command's flag set.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dball/logtail/internal/constants"
)

// ServerConfig is the fully resolved, validated set of daemon tunables.
type ServerConfig struct {
	BindAddress    string
	LogsDir        string
	PageLength     int
	MaxLineLength  int
	MaxConnections int
	LogDir         string
	LogToStdout    bool
	LogToFile      bool
	Debug          bool
	ConfigFile     string
}

var flagNames = []string{
	"bind-address", "logs-dir", "page-length", "max-line-length",
	"max-connections", "log-dir", "log-stdout", "log-file", "debug", "config",
}

// BindFlags declares the daemon's flags on cmd, each carrying its real
// default value, and binds them into v. Viper's own precedence (flag >
// env > config file > registered default) then governs every lookup
// uniformly, regardless of where a value actually came from.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	flags.String("bind-address", constants.DefaultBindAddress, "address to listen on, e.g. :8080")
	flags.String("logs-dir", "./logs", "root directory log files are served from")
	flags.Int("page-length", constants.DefaultPageLength, "bytes read per reverse page")
	flags.Int("max-line-length", constants.DefaultMaxLineLength, "maximum bytes for a single line")
	flags.Int("max-connections", constants.DefaultMaxConnections, "maximum concurrent searches")
	flags.String("log-dir", "./var/log/logtaild", "directory for daily rotated log files")
	flags.Bool("log-stdout", true, "log to stdout")
	flags.Bool("log-file", false, "log to a daily rotated file")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("config", "", "path to a JSON or YAML config file")

	for _, name := range flagNames {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix("LOGTAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// Load reads the config file named by the "config" key (if any) into v,
// then builds and validates a ServerConfig from v's resolved values.
func Load(v *viper.Viper) (*ServerConfig, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &ServerConfig{
		BindAddress:    v.GetString("bind-address"),
		LogsDir:        v.GetString("logs-dir"),
		PageLength:     v.GetInt("page-length"),
		MaxLineLength:  v.GetInt("max-line-length"),
		MaxConnections: v.GetInt("max-connections"),
		LogDir:         v.GetString("log-dir"),
		LogToStdout:    v.GetBool("log-stdout"),
		LogToFile:      v.GetBool("log-file"),
		Debug:          v.GetBool("debug"),
		ConfigFile:     v.GetString("config"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects a ServerConfig that would make the daemon behave
// unpredictably rather than letting it start half-configured.
func (c *ServerConfig) Validate() error {
	if c.LogsDir == "" {
		return fmt.Errorf("logs-dir is required")
	}
	if c.PageLength < constants.MinPageLength {
		return fmt.Errorf("page-length must be >= %d bytes, got %d", constants.MinPageLength, c.PageLength)
	}
	if c.MaxLineLength <= 0 {
		return fmt.Errorf("max-line-length must be positive")
	}
	if c.MaxLineLength > c.PageLength {
		return fmt.Errorf("max-line-length (%d) must not exceed page-length (%d)", c.MaxLineLength, c.PageLength)
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("max-connections must be positive")
	}
	return nil
}
