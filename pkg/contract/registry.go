package contract

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/DT021/invis/pkg/logger"
	"github.com/DT021/invis/pkg/validator"
)

// Observer is notified of every check enforced through a Registry.
// err is nil when the value passed. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveCheck(requirement string, err error)
}

// Module groups project-specific requirements registered together.
type Module interface {
	Register(r *Registry) error
}

// ModuleFunc adapts a function to the Module interface.
type ModuleFunc func(r *Registry) error

func (f ModuleFunc) Register(r *Registry) error { return f(r) }

// Option configures a Registry.
type Option func(*Registry)

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// WithoutBuiltins starts the registry with only the reserved callable requirement.
func WithoutBuiltins() Option {
	return func(r *Registry) { r.builtins = false }
}

// Registry maps requirement names to requirements.
// Register everything at start-up, then Seal; lookups are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*Requirement
	sealed   bool
	builtins bool
	logger   *slog.Logger
	observer Observer
}

// NewRegistry creates a registry holding the builtin requirements.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries:  make(map[string]*Requirement),
		builtins: true,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.entries[CallableName] = Callable()
	if r.builtins {
		for _, req := range Builtins() {
			r.entries[req.Name()] = req
		}
	}
	return r
}

// Register binds req to its name.
func (r *Registry) Register(req *Requirement) error {
	if req == nil || req.Name() == "" {
		return ErrInvalidRequirement
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, req.Name())
	}
	if _, exists := r.entries[req.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRequirement, req.Name())
	}
	r.entries[req.Name()] = req
	r.logger.Debug("Registering requirement.", logger.Requirement(req.Name()), "kind", req.Kind().String(), "chain", req.Chain())
	return nil
}

// MustRegister registers every requirement and panics on the first error.
func (r *Registry) MustRegister(reqs ...*Requirement) {
	for _, req := range reqs {
		if err := r.Register(req); err != nil {
			panic(fmt.Sprintf("contract: %v", err))
		}
	}
}

// Define extends the requirement registered as base with rules and registers
// the result as name.
func (r *Registry) Define(name, base string, rules ...validator.Rule) (*Requirement, error) {
	parent, err := r.Resolve(base)
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", name, err)
	}
	req := parent.Extend(name, rules...)
	if err := r.Register(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Install registers every module in order and stops at the first error.
func (r *Registry) Install(modules ...Module) error {
	for _, m := range modules {
		if err := m.Register(r); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Lookup(name string) (*Requirement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.entries[name]
	return req, ok
}

// Resolve is like Lookup but reports missing names as ErrUnknownRequirement.
func (r *Registry) Resolve(name string) (*Requirement, error) {
	req, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRequirement, name)
	}
	return req, nil
}

// Check resolves the requirement called name and validates value for field.
func (r *Registry) Check(field, name string, value any) error {
	req, err := r.Resolve(name)
	if err != nil {
		return err
	}
	return r.Enforce(field, req, value)
}

// Enforce validates value for field against an already resolved requirement
// and reports the outcome to the observer.
func (r *Registry) Enforce(field string, req *Requirement, value any) error {
	err := req.Check(field, value)
	if err != nil {
		r.logger.Debug("Check rejected.", logger.Requirement(req.Name()), logger.Field(field), logger.Error(err))
	}
	if r.observer != nil {
		r.observer.ObserveCheck(req.Name(), err)
	}
	return err
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return
	}
	r.sealed = true
	r.logger.Debug("Registry sealed.", "requirements", len(r.entries))
}

func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Logger returns the logger definition-time events are reported to.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}
