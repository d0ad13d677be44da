package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes how a configuration struct is parsed.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
	environ  map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "INVIS_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env file, they must exist. Variables already set in the process win.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, paths...) }
}

// WithEnvironment parses from env instead of the process environment.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) { o.environ = env }
}

var defaultEnvLoaded sync.Once

// Parse populates v from the environment. The .env file of the working
// directory is loaded once per process when present.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

var cache = struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}{values: make(map[reflect.Type]any)}

// Load is like Parse but caches the result per config type, so the
// environment is read only once for the lifetime of the process.
// Options only apply to the first successful load of a type.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	key := reflect.TypeFor[T]()

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := Parse(v, opts...); err != nil {
		return err
	}
	cache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration.
func Reset() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	clear(cache.values)
}
