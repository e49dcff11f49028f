package typehandler

import (
	"fmt"
	"reflect"

	"github.com/somranjan/beanio/options"
)

// stringHandler is the identity handler: field text is the bound value
// verbatim. It is also the tier-4 assignability fallback target for any
// named string type (spec.md §4.4 tier 4).
type stringHandler struct{}

func (stringHandler) Category() options.TypeCategory { return options.CategoryString }

func (stringHandler) Parse(text string, goType reflect.Type) (any, error) {
	return reflect.ValueOf(text).Convert(goType).Interface(), nil
}

func (stringHandler) Format(value any) (string, error) {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.String {
		return "", fmt.Errorf("stringHandler cannot format %T", value)
	}

	return v.String(), nil
}
