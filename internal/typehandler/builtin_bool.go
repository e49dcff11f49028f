package typehandler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/somranjan/beanio/options"
)

// boolHandler recognizes the textual boolean vocabulary spec.md §4.4
// lists ("true"/"false", "y"/"n", "1"/"0"), not just Go's strconv
// subset, since upstream record producers are rarely Go programs.
type boolHandler struct{}

func (boolHandler) Category() options.TypeCategory {
	return options.CategoryNumericBool | options.CategoryTextualBool
}

func (boolHandler) Parse(text string, goType reflect.Type) (any, error) {
	if text == "" {
		return false, nil
	}

	switch strings.ToLower(text) {
	case "true", "t", "y", "yes", "1":
		return true, nil
	case "false", "f", "n", "no", "0":
		return false, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a recognized boolean", ErrUnparseable, text)
	}
}

func (boolHandler) Format(value any) (string, error) {
	b, ok := value.(bool)
	if !ok {
		return "", fmt.Errorf("boolHandler cannot format %T", value)
	}

	if b {
		return "true", nil
	}

	return "false", nil
}
