// Package config loads the engine's runtime configuration from a
// layered stack of YAML/JSON file, environment variables and CLI
// flags, in that increasing order of precedence (SPEC_FULL.md §6.2).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// TransferConfig is the slice of Config the loader needs to
// materialise transfer edges; kept separate so internal/loader does
// not import the rest of the configuration surface.
type TransferConfig struct {
	Mode            schedule.TransferMode
	NodeIDColumn    string
	MinTransferSecs int32
}

// Config is the fully validated, resolved configuration (spec.md §6.2).
type Config struct {
	DatasetPath        string
	MaxSearchTimeHours float64
	Transfer           TransferConfig
	Profile            bool
}

const envPrefix = "TRANSITQUERY"

// Load resolves configuration from transitquery.yaml/.json (working
// directory, then $XDG_CONFIG_HOME/transitquery/), TRANSITQUERY_*
// environment variables, and flags bound on fs, in that increasing
// precedence order, then validates the result.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName("transitquery")
	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "transitquery"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errors.Wrap(err, "config: reading config file")
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("max_search_time_hours", 24.0)
	v.SetDefault("transfer_mode", "by_parent_station")
	v.SetDefault("min_transfer_time_seconds", 0)
	v.SetDefault("profile", false)

	if fs != nil {
		for _, key := range []string{
			"dataset_path", "max_search_time_hours", "transfer_mode",
			"transfer_node_id", "min_transfer_time_seconds", "profile",
		} {
			flag := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, "config: binding flag %q", flag.Name)
			}
		}
	}

	mode, ok := schedule.ParseTransferMode(v.GetString("transfer_mode"))
	if !ok {
		return nil, errors.Wrapf(ErrInvalid, "unknown transfer_mode %q", v.GetString("transfer_mode"))
	}

	cfg := &Config{
		DatasetPath:        v.GetString("dataset_path"),
		MaxSearchTimeHours: v.GetFloat64("max_search_time_hours"),
		Transfer: TransferConfig{
			Mode:            mode,
			NodeIDColumn:    v.GetString("transfer_node_id"),
			MinTransferSecs: int32(v.GetInt("min_transfer_time_seconds")),
		},
		Profile: v.GetBool("profile"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatasetPath == "" {
		return errors.Wrap(ErrInvalid, "dataset_path is required")
	}
	if c.MaxSearchTimeHours <= 0 {
		return errors.Wrapf(ErrInvalid, "max_search_time_hours must be positive, got %v", c.MaxSearchTimeHours)
	}
	if c.Transfer.Mode == schedule.TransferByNodeID && c.Transfer.NodeIDColumn == "" {
		return errors.Wrap(ErrInvalid, "transfer_node_id is required when transfer_mode=by_node_id")
	}
	if c.Transfer.MinTransferSecs < 0 {
		return errors.Wrap(ErrInvalid, "min_transfer_time_seconds must not be negative")
	}
	return nil
}
