package typehandler

import (
	"fmt"
	"reflect"

	"github.com/somranjan/beanio/options"
)

// charHandler binds a single rune, erroring on any text longer than one
// rune rather than silently truncating (spec.md §4.4 edge case: "a
// character field receiving multi-rune text is a TypeHandler error, not
// a truncation").
type charHandler struct{}

func (charHandler) Category() options.TypeCategory { return options.CategoryCharacter }

func (charHandler) Parse(text string, goType reflect.Type) (any, error) {
	runes := []rune(text)

	switch len(runes) {
	case 0:
		return rune(0), nil
	case 1:
		return runes[0], nil
	default:
		return nil, fmt.Errorf("%w: %q is more than one character", ErrUnparseable, text)
	}
}

func (charHandler) Format(value any) (string, error) {
	switch v := value.(type) {
	case rune:
		if v == 0 {
			return "", nil
		}

		return string(v), nil
	case byte:
		if v == 0 {
			return "", nil
		}

		return string(rune(v)), nil
	default:
		return "", fmt.Errorf("charHandler cannot format %T", value)
	}
}
