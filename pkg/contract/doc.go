// Package contract holds named type requirements and the registry that
// resolves them.
//
// A Requirement is a type predicate (a kind set, an exact Go type, an
// interface, or invocability) followed by an ordered list of validator rules.
// Requirements compose with Extend: the result accepts what its base accepts
// and must also satisfy the new rules, which run after the base's own rules.
// Composition is a flat list combined with logical AND, evaluated in order and
// stopped at the first failure.
//
//	reg := contract.NewRegistry()
//	natural, _ := reg.Define("natural_id", "int", validator.Positive())
//
//	err := reg.Check("user_id", "natural_id", 0)
//	// type mismatch for "user_id": expected natural_id, got int (positive: must be > 0)
//
// # Registry
//
// NewRegistry starts with the builtin requirements (int, uint, float,
// complex, number, string, bool, bytes, list, array, map, set, struct,
// pointer, error, time, duration, uuid, any, positive, natural, uuid_string)
// and the reserved callable requirement. Projects add their own requirements
// with Register, Define, Install or a YAML seed (Apply, LoadSeedFile), then
// call Seal. The registry is passed explicitly to every class definition and
// guarded function; there is no package-level registry.
//
// # Errors
//
// Every requirement violation is a *TypeMismatch matching ErrTypeMismatch.
// The remaining sentinel errors describe misuse of the registry itself.
package contract
