package invis

import (
	"io"
	"log/slog"

	"github.com/DT021/invis/pkg/config"
	"github.com/DT021/invis/pkg/logger"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "INVIS_"

type Config struct {
	SeedFile     string `env:"SEED_FILE" envDefault:"invis.yaml"` // SeedFile is the YAML document of project requirements.
	SeedRequired bool   `env:"SEED_REQUIRED" envDefault:"false"`  // SeedRequired fails bootstrap when SeedFile does not exist.
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`       // LogLevel is debug, info, warn or error.
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`      // LogFormat is text or json.
}

// LoadConfig reads Config from INVIS_* environment variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	err := config.Parse(&cfg, append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...)
	return cfg, err
}

// NewLogger builds the logger described by the config, writing to w
// (stderr when w is nil).
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithComponent("invis"),
	), nil
}
