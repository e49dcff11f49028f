package accessor

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Factory resolves a configuration tree's class-name strings (spec.md
// §3, Record/Segment `class` attribute) to concrete Go types and builds
// PropertyAccessors against them. There is no runtime class lookup by
// string name in Go the way there is on the JVM this engine's spec was
// distilled from, so the host registers every bean type it wants bound
// before calling internal/parser.Build — the Go analogue of classpath
// scanning is an explicit, typed registration call.
type Factory struct {
	types map[string]reflect.Type
}

// NewFactory returns a Factory pre-seeded with the scalar type names the
// typehandler package's built-in registry also answers to, so a field's
// `type` attribute (spec.md §3, Field row) resolves without the host
// having to register primitive types itself. Class names from `class`
// attributes are layered into the same lookup table via RegisterType.
func NewFactory() *Factory {
	f := &Factory{types: make(map[string]reflect.Type)}

	f.types["int"] = reflect.TypeOf(int(0))
	f.types["long"] = reflect.TypeOf(int64(0))
	f.types["short"] = reflect.TypeOf(int16(0))
	f.types["byte"] = reflect.TypeOf(int8(0))
	f.types["float"] = reflect.TypeOf(float32(0))
	f.types["double"] = reflect.TypeOf(float64(0))
	f.types["boolean"] = reflect.TypeOf(false)
	f.types["character"] = reflect.TypeOf(rune(0))
	f.types["string"] = reflect.TypeOf("")
	f.types["duration"] = reflect.TypeOf(time.Duration(0))
	f.types["uuid"] = reflect.TypeOf(uuid.UUID{})
	f.types["datetime"] = reflect.TypeOf(time.Time{})

	return f
}

// RegisterType binds className (the mapping file's `class` attribute
// value) to a concrete Go type, via a zero value of the type the caller
// wants bound: f.RegisterType("Person", Person{}).
func (f *Factory) RegisterType(className string, zero any) {
	f.types[className] = reflect.TypeOf(zero)
}

// ResolveType looks up a previously registered class name.
func (f *Factory) ResolveType(className string) (reflect.Type, error) {
	t, ok := f.types[className]
	if !ok {
		return nil, fmt.Errorf("no Go type registered for class %q", className)
	}

	return t, nil
}

// FieldAccessor resolves name against beanType's fields.
func (f *Factory) FieldAccessor(beanType reflect.Type, name string) (PropertyAccessor, error) {
	return NewFieldAccessor(beanType, name)
}

// MethodAccessor resolves getter/setter against beanType.
func (f *Factory) MethodAccessor(beanType reflect.Type, getter, setter string, propertyType reflect.Type) (PropertyAccessor, error) {
	return NewMethodAccessor(beanType, getter, setter, propertyType)
}
