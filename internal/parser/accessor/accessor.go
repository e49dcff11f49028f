// Package accessor binds configuration-tree property names (field/bean
// getter, setter, and name attributes) to a Go struct's fields (spec.md
// §4.5: "Property binding").
package accessor

import "reflect"

// PropertyAccessor gets and sets one named property on a bean value. It
// is bound to a concrete bean type at construction (NewFieldAccessor,
// NewMethodAccessor) so a name that resolves to nothing fails there,
// at tree-build time, rather than on first use (spec.md §4.5 edge case:
// "a getter/setter/name naming no field is a configuration error, not a
// runtime one"). Implementations must be safe to call concurrently
// against distinct bean values (spec.md §4.5, "accessors carry no
// per-call state").
type PropertyAccessor interface {
	// Get reads the property off bean, which must be the struct (or
	// pointer to struct) the accessor was built for.
	Get(bean reflect.Value) (reflect.Value, error)

	// Set writes value into the property on bean. bean must be
	// addressable (a pointer to struct, or the result of Elem() on one).
	Set(bean reflect.Value, value reflect.Value) error

	// Type reports the Go type this accessor reads and writes.
	Type() reflect.Type
}
