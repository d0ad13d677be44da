package record

import "fmt"

// Options tunes the behaviour generated for a class.
type Options struct {
	// Init lets New and NewNamed take field values. Without it objects start
	// from their defaults only.
	Init bool
	// Repr renders field values in String.
	Repr bool
	// Eq compares objects by class and values instead of identity.
	Eq bool
	// Order enables Compare. Requires Eq.
	Order bool
	// UnsafeHash enables Hash on mutable objects.
	UnsafeHash bool
	// Frozen rejects every Set after construction.
	Frozen bool
}

// DefaultOptions returns the options used by classes that do not pass their own.
func DefaultOptions() Options {
	return Options{Init: true, Repr: true, Eq: true}
}

func (o Options) validate() error {
	if o.Order && !o.Eq {
		return fmt.Errorf("%w: order requires eq", ErrInvalidClass)
	}
	return nil
}

func (o Options) hashable() bool {
	return o.UnsafeHash || (o.Frozen && o.Eq)
}
