// Package record provides validated classes: named field tables whose values
// are checked against requirements on construction and on every assignment.
//
// A class is declared against a contract.Registry. Field requirements are
// resolved and defaults are checked once, at definition time:
//
//	point := record.MustDefine(reg, "Point",
//	    record.WithField("x", "int"),
//	    record.WithField("y", "int", record.Default(0)),
//	)
//
//	p, err := point.New(1)     // Point(x=1, y=0)
//	err = p.Set("x", "one")    // *contract.TypeMismatch, x is still 1
//
// Subclasses created with Extend inherit the merged field table, methods and
// constants of their ancestors. The constructor of a class only takes the
// fields that class declares itself; inherited fields start from their
// defaults or stay unset until assigned.
//
//	point3 := point.MustExtend("Point3", record.WithField("z", "int"))
//	p3, err := point3.New(5) // Point3(y=0, z=5), x unset
//
// Methods are guarded functions whose first parameter is the *Object
// receiver. Their remaining arguments are checked like guard.Func arguments.
// A BoundMethod returned by Object.Method satisfies the callable requirement.
//
// Options select the generated behaviour: Init, Repr, Eq, Order, UnsafeHash
// and Frozen. A subclass uses DefaultOptions unless it passes its own, and
// frozen and non-frozen classes cannot extend one another.
//
// Objects are not safe for concurrent mutation.
package record
