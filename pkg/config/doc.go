// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files. The .env file of the working
// directory is loaded once per process when it exists; further files can be
// requested with WithEnvFiles.
//
//	type Config struct {
//	    SeedFile string `env:"SEED_FILE" envDefault:"invis.yaml"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("INVIS_"))
//
// Load caches the parsed value per type; Parse always reads the environment.
// Reset clears the cache between tests.
//
// Errors wrap ErrParsingConfig, ErrEnvFile or ErrNilPointer.
package config
