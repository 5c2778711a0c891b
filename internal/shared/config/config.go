package config

import (
	"os"
	"path/filepath"
	"strings"

	alertDomain "github.com/dvcwatch/availability-alerts/internal/modules/alert/domain"
	apperrors "github.com/dvcwatch/availability-alerts/internal/shared/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

// DefaultAlertName is assigned to alerts configured without a name.
const DefaultAlertName = "Unnamed"

type Config struct {
	BaseURL      string              `koanf:"base_url"`
	DatabasePath string              `koanf:"database_path"`
	HTTPPort     string              `koanf:"http_port"`
	PollInterval int                 `koanf:"poll_interval"`
	FetchTimeout int                 `koanf:"fetch_timeout"`
	Alerts       []alertDomain.Alert `koanf:"alerts"`
}

// Load reads the configuration file at path. The format is chosen by file
// extension; environment variables override scalar file values. A missing
// or unparsable file is fatal by design: the process must not start
// without a valid alert list.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, oops.With("config_file", path).Wrap(apperrors.ErrConfigNotFound)
	}

	k := koanf.New(".")

	var parser koanf.Parser
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return nil, oops.With("config_file", path).Wrap(apperrors.ErrUnsupportedFormat)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, oops.With("config_file", path).Wrap(err)
	}

	// Load environment variables (they override config file values)
	// Convert DATABASE_PATH -> database_path
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("database_path") {
		k.Set("database_path", "alerts.db")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("poll_interval") {
		k.Set("poll_interval", 300)
	}
	if !k.Exists("fetch_timeout") {
		k.Set("fetch_timeout", 30)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if len(cfg.Alerts) == 0 {
		return nil, oops.With("config_file", path).Wrap(apperrors.ErrNoAlerts)
	}
	for i := range cfg.Alerts {
		if cfg.Alerts[i].Name == "" {
			cfg.Alerts[i].Name = DefaultAlertName
		}
	}

	return &cfg, nil
}
