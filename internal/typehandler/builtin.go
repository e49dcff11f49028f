package typehandler

import (
	"reflect"
	"time"
)

// NewBuiltinRegistry returns a frozen root Registry carrying the
// built-in handlers every stream's Registry chains from (spec.md §4.4,
// "Built-in TypeHandlers"). Callers that need custom typeHandler
// registrations call Chain() on the result rather than mutating it.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()

	mustRegister(r, "int", intHandler{})
	mustRegister(r, "long", intHandler{})
	mustRegister(r, "short", intHandler{})
	mustRegister(r, "byte", intHandler{})
	mustRegister(r, "float", floatHandler{})
	mustRegister(r, "double", floatHandler{})
	mustRegister(r, "boolean", boolHandler{})
	mustRegister(r, "character", charHandler{})
	mustRegister(r, "string", stringHandler{})
	mustRegister(r, "duration", durationHandler{})
	mustRegister(r, "uuid", uuidHandler{})
	mustRegister(r, "datetime", NewDateTimeHandler(""))

	for _, kind := range []reflect.Kind{
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
	} {
		mustRegisterForType(r, reflect.Zero(typeOfKind(kind)).Type(), "", intHandler{})
	}

	mustRegisterForType(r, reflect.TypeOf(float32(0)), "", floatHandler{})
	mustRegisterForType(r, reflect.TypeOf(float64(0)), "", floatHandler{})
	mustRegisterForType(r, reflect.TypeOf(true), "", boolHandler{})
	mustRegisterForType(r, reflect.TypeOf(rune(0)), "", charHandler{})
	mustRegisterForType(r, reflect.TypeOf(""), "", stringHandler{})
	mustRegisterForType(r, reflect.TypeOf(time.Duration(0)), "", durationHandler{})
	mustRegisterForType(r, uuidType, "", uuidHandler{})
	mustRegisterForType(r, timeType, "", NewDateTimeHandler(""))

	r.Freeze()

	return r
}

func typeOfKind(kind reflect.Kind) reflect.Type {
	switch kind {
	case reflect.Int:
		return reflect.TypeOf(int(0))
	case reflect.Int8:
		return reflect.TypeOf(int8(0))
	case reflect.Int16:
		return reflect.TypeOf(int16(0))
	case reflect.Int32:
		return reflect.TypeOf(int32(0))
	case reflect.Int64:
		return reflect.TypeOf(int64(0))
	case reflect.Uint:
		return reflect.TypeOf(uint(0))
	case reflect.Uint8:
		return reflect.TypeOf(uint8(0))
	case reflect.Uint16:
		return reflect.TypeOf(uint16(0))
	case reflect.Uint32:
		return reflect.TypeOf(uint32(0))
	case reflect.Uint64:
		return reflect.TypeOf(uint64(0))
	default:
		panic("typeOfKind: unsupported kind")
	}
}

func mustRegister(r *Registry, name string, h Handler) {
	if err := r.Register(name, h); err != nil {
		panic(err)
	}
}

func mustRegisterForType(r *Registry, goType reflect.Type, format string, h Handler) {
	if err := r.RegisterForType(goType, format, h); err != nil {
		panic(err)
	}
}
