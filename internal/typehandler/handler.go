// Package typehandler converts between the field text a stream carries
// and the Go value a struct field holds (spec.md §4.4: "TypeHandler").
package typehandler

import (
	"errors"
	"reflect"

	"github.com/somranjan/beanio/options"
)

// ErrUnparseable is wrapped into the error a Handler's Parse returns when
// text cannot be converted to the target Go type at all (as opposed to
// being merely out of range); the caller turns this into a field-level
// TypeHandler diagnostic (spec.md §7).
var ErrUnparseable = errors.New("text does not parse as target type")

// Handler converts field text to and from a bound Go value. Handlers are
// stateless: Parse/Format must not retain or mutate shared state between
// calls (spec.md §4.4, "TypeHandlers are stateless and safe for concurrent
// use"), the same contract the teacher places on its Caster functions
// (node/caster.go ParseCaster).
type Handler interface {
	// Parse converts field text into a value assignable to goType. An
	// empty string must be handled explicitly by every handler: most
	// return the zero value, but this is a per-handler decision (spec.md
	// §4.4 edge case table).
	Parse(text string, goType reflect.Type) (any, error)

	// Format converts a bound value back into field text for writing.
	Format(value any) (string, error)

	// Category reports which TypeCategory bucket(s) this handler
	// services. The registry's lookup tiers do not consult it.
	Category() options.TypeCategory
}

// Named pairs a Handler with the registration name it answers to when a
// field mapping sets typeHandler explicitly (the resolver's first tier).
type Named struct {
	Name    string
	Handler Handler
}
