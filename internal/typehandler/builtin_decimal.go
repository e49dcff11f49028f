package typehandler

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/somranjan/beanio/options"
)

// floatHandler converts field text to/from float32/float64 via strconv.
// There is no fixed-point decimal type in this module's domain stack (no
// shopspring/decimal appeared anywhere in the reference pack), so
// float64 is the widest precision offered; callers needing exact decimal
// semantics register a custom Handler instead (spec.md §4.4 allows
// per-field typeHandler overrides for exactly this reason).
type floatHandler struct{}

func (floatHandler) Category() options.TypeCategory { return options.CategoryDecimal }

func (floatHandler) Parse(text string, goType reflect.Type) (any, error) {
	if text == "" {
		return reflect.Zero(goType).Interface(), nil
	}

	n, err := strconv.ParseFloat(text, goType.Bits())
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid %s: %v", ErrUnparseable, text, goType, err)
	}

	return reflect.ValueOf(n).Convert(goType).Interface(), nil
}

func (floatHandler) Format(value any) (string, error) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Float32 && v.Kind() != reflect.Float64 {
		return "", fmt.Errorf("floatHandler cannot format %T", value)
	}

	bits := 64
	if v.Kind() == reflect.Float32 {
		bits = 32
	}

	return strconv.FormatFloat(v.Float(), 'f', -1, bits), nil
}
