package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/somranjan/beanio/options"
)

// yamlTree is the on-disk shape of a Tree, decoded with gopkg.in/yaml.v3
// and then lowered into the config.Tree the builder consumes. Keeping
// the wire shape separate from the runtime shape (rather than tagging
// Tree itself) lets the runtime shape stay free of YAML concerns and
// lets the wire shape evolve without touching internal/parser.
type yamlTree struct {
	Streams      []yamlStream      `yaml:"streams"`
	TypeHandlers []yamlTypeHandler `yaml:"typeHandlers,omitempty"`
	Imports      []yamlImport      `yaml:"imports,omitempty"`
}

type yamlImport struct {
	Resource string `yaml:"resource"`
	Scheme   string `yaml:"scheme"`
}

type yamlStream struct {
	Name           string      `yaml:"name"`
	Format         string      `yaml:"format"`
	Mode           string      `yaml:"mode,omitempty"`
	Ordered        *bool       `yaml:"ordered,omitempty"`
	ResourceBundle string      `yaml:"resourceBundle,omitempty"`
	MinOccurs      int         `yaml:"minOccurs,omitempty"`
	MaxOccurs      occursValue `yaml:"maxOccurs,omitempty"`
	Delimiter      string      `yaml:"delimiter,omitempty"`
	Quote          string      `yaml:"quote,omitempty"`
	XML            yamlXML     `yaml:"xml,omitempty"`
	Groups         []yamlGroup `yaml:"groups,omitempty"`
	Records        []yamlRecord `yaml:"records,omitempty"`
}

type yamlGroup struct {
	Name      string       `yaml:"name"`
	Order     int          `yaml:"order,omitempty"`
	MinOccurs int          `yaml:"minOccurs,omitempty"`
	MaxOccurs occursValue  `yaml:"maxOccurs,omitempty"`
	XML       yamlXML      `yaml:"xml,omitempty"`
	Groups    []yamlGroup  `yaml:"groups,omitempty"`
	Records   []yamlRecord `yaml:"records,omitempty"`
}

type yamlRecord struct {
	Name      string      `yaml:"name"`
	Order     int         `yaml:"order,omitempty"`
	MinOccurs int         `yaml:"minOccurs,omitempty"`
	MaxOccurs occursValue `yaml:"maxOccurs,omitempty"`
	MinLength int         `yaml:"minLength,omitempty"`
	MaxLength occursValue `yaml:"maxLength,omitempty"`
	Class     string      `yaml:"class,omitempty"`
	XML       yamlXML     `yaml:"xml,omitempty"`
	Fields    []yamlField `yaml:"fields,omitempty"`
	Beans     []yamlBean  `yaml:"beans,omitempty"`
}

type yamlBean struct {
	Name       string       `yaml:"name"`
	Class      string       `yaml:"class,omitempty"`
	Getter     string       `yaml:"getter,omitempty"`
	Setter     string       `yaml:"setter,omitempty"`
	Collection string       `yaml:"collection,omitempty"`
	MinOccurs  int          `yaml:"minOccurs,omitempty"`
	MaxOccurs  occursValue  `yaml:"maxOccurs,omitempty"`
	XML        yamlXML      `yaml:"xml,omitempty"`
	Fields     []yamlField  `yaml:"fields,omitempty"`
	Beans      []yamlBean   `yaml:"beans,omitempty"`
	Properties []yamlProp   `yaml:"properties,omitempty"`
}

type yamlProp struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type,omitempty"`
	Value string `yaml:"value"`
}

type yamlField struct {
	Name      string      `yaml:"name"`
	Getter    string      `yaml:"getter,omitempty"`
	Setter    string      `yaml:"setter,omitempty"`
	Collection string     `yaml:"collection,omitempty"`
	Position  int         `yaml:"position"`
	MinLength int         `yaml:"minLength,omitempty"`
	MaxLength occursValue `yaml:"maxLength,omitempty"`
	Regex     string      `yaml:"regex,omitempty"`
	Literal   string      `yaml:"literal,omitempty"`
	TypeHandler string    `yaml:"typeHandler,omitempty"`
	Type      string      `yaml:"type,omitempty"`
	Format    string      `yaml:"format,omitempty"`
	Default   string      `yaml:"default,omitempty"`
	Required  bool        `yaml:"required,omitempty"`
	Trim      bool        `yaml:"trim,omitempty"`
	RID       bool        `yaml:"rid,omitempty"`
	Ignore    bool        `yaml:"ignore,omitempty"`
	Length    int         `yaml:"length,omitempty"`
	Padding   string      `yaml:"padding,omitempty"`
	Justify   string      `yaml:"justify,omitempty"`
	XML       yamlXML     `yaml:"xml,omitempty"`
}

type yamlTypeHandler struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type,omitempty"`
	Class      string            `yaml:"class,omitempty"`
	Format     string            `yaml:"format,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

type yamlXML struct {
	Name      string `yaml:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Type      string `yaml:"type,omitempty"`
	Wrapper   string `yaml:"wrapper,omitempty"`
	Nillable  bool   `yaml:"nillable,omitempty"`
}

// occursValue decodes a maxOccurs/maxLength style field that
// accepts either a plain integer or the literal string "unbounded"
// (spec.md §6: "maxOccurs (int or `unbounded`)").
type occursValue int

func (o *occursValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar for an occurs value, got %v", node.Kind)
	}

	if strings.EqualFold(node.Value, "unbounded") {
		*o = occursValue(options.Unbounded)
		return nil
	}

	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("occurs value %q is neither an integer nor %q: %w", node.Value, "unbounded", err)
	}

	*o = occursValue(n)

	return nil
}
