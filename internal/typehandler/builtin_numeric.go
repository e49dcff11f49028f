package typehandler

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/somranjan/beanio/options"
)

// intHandler converts field text to/from any signed or unsigned Go
// integer kind via strconv, matching the range of the target kind
// instead of always going through int64 (spec.md §4.4, "integer
// handlers must reject values outside the bound field's own width").
type intHandler struct{}

func (intHandler) Category() options.TypeCategory { return options.CategoryInteger }

func (intHandler) Parse(text string, goType reflect.Type) (any, error) {
	if text == "" {
		return reflect.Zero(goType).Interface(), nil
	}

	switch goType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, goType.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid %s: %v", ErrUnparseable, text, goType, err)
		}

		return reflect.ValueOf(n).Convert(goType).Interface(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, goType.Bits())
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid %s: %v", ErrUnparseable, text, goType, err)
		}

		return reflect.ValueOf(n).Convert(goType).Interface(), nil

	default:
		return nil, fmt.Errorf("%w: intHandler cannot target %s", ErrUnparseable, goType)
	}
}

func (intHandler) Format(value any) (string, error) {
	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	default:
		return "", fmt.Errorf("intHandler cannot format %T", value)
	}
}
