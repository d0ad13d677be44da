// Package invis enforces declared requirements on Go values at runtime.
//
// The building blocks live in sub-packages:
//
//   - pkg/contract: the registry of named requirements, the builtin type
//     checks, the callable check and the TypeMismatch error.
//   - pkg/validator: predicate rules composed into requirements.
//   - pkg/record: validated classes whose fields are checked on construction
//     and on every assignment.
//   - pkg/guard: wrapped functions whose arguments are checked on every call.
//
// This package bootstraps a registry the conventional way. New reads Config
// from INVIS_* environment variables, builds the logger, installs project
// modules, applies the seed file (invis.yaml by default) when it exists and
// seals the registry:
//
//	reg, err := invis.New(invis.WithModules(billing.Requirements))
//	if err != nil {
//	    return err
//	}
//	account := record.MustDefine(reg, "Account",
//	    record.WithField("id", "natural"),
//	    record.WithField("owner", "string"),
//	)
//
// Default returns a lazily bootstrapped process-wide registry for code that
// prefers an ambient registry over passing one around.
package invis
