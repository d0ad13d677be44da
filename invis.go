package invis

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/logger"
)

type options struct {
	cfg      *Config
	logger   *slog.Logger
	observer contract.Observer
	modules  []contract.Module
	unsealed bool
}

// Option configures New.
type Option func(*options)

// WithConfig uses cfg instead of reading the environment.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = &cfg }
}

// WithLogger overrides the logger built from the config.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver reports every check of the registry to obs.
func WithObserver(obs contract.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithModules installs project modules before the seed file is applied.
func WithModules(modules ...contract.Module) Option {
	return func(o *options) { o.modules = append(o.modules, modules...) }
}

// WithoutSeal leaves the registry open for further registration.
func WithoutSeal() Option {
	return func(o *options) { o.unsealed = true }
}

// New bootstraps a registry: builtins, then modules, then the seed file when
// one exists, and finally Seal.
func New(opts ...Option) (*contract.Registry, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.cfg == nil {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		o.cfg = &cfg
	}
	if o.logger == nil {
		l, err := o.cfg.NewLogger(nil)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		o.logger = l
	}

	regOpts := []contract.Option{contract.WithLogger(o.logger)}
	if o.observer != nil {
		regOpts = append(regOpts, contract.WithObserver(o.observer))
	}
	reg := contract.NewRegistry(regOpts...)

	if err := reg.Install(o.modules...); err != nil {
		return nil, fmt.Errorf("install modules: %w", err)
	}
	if err := loadSeed(reg, o.cfg, o.logger); err != nil {
		return nil, err
	}
	if !o.unsealed {
		reg.Seal()
	}
	return reg, nil
}

func loadSeed(reg *contract.Registry, cfg *Config, log *slog.Logger) error {
	if cfg.SeedFile == "" {
		if cfg.SeedRequired {
			return fmt.Errorf("%w: no seed file configured", ErrSeedNotFound)
		}
		return nil
	}
	if _, err := os.Stat(cfg.SeedFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat seed %s: %w", cfg.SeedFile, err)
		}
		if cfg.SeedRequired {
			return fmt.Errorf("%w: %s", ErrSeedNotFound, cfg.SeedFile)
		}
		log.Debug("No seed file.", logger.SeedFile(cfg.SeedFile))
		return nil
	}
	if err := reg.LoadSeedFile(cfg.SeedFile); err != nil {
		return err
	}
	log.Debug("Seed file loaded.", logger.SeedFile(cfg.SeedFile))
	return nil
}

var defaultRegistry struct {
	once sync.Once
	reg  *contract.Registry
	err  error
}

// Default returns the process registry, bootstrapped from the environment on
// first use. It panics when bootstrapping fails; call New to handle the error.
func Default() *contract.Registry {
	defaultRegistry.once.Do(func() {
		defaultRegistry.reg, defaultRegistry.err = New()
	})
	if defaultRegistry.err != nil {
		panic(fmt.Sprintf("invis: bootstrap default registry: %v", defaultRegistry.err))
	}
	return defaultRegistry.reg
}
