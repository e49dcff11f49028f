package format

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/somranjan/beanio/options"
)

// No third-party XML library appears anywhere in the reference pack's
// dependency graph (see DESIGN.md), and encoding/xml is the idiomatic
// ecosystem default for Go XML handling, so this codec is built directly
// on it rather than reaching for a DOM library.

// XMLFieldSpec is one field's XML carrier configuration, supplied in
// declaration order the way FixedLength.Lengths supplies widths.
type XMLFieldSpec struct {
	Name      string
	Namespace string
	Carrier   options.XMLType // Attribute, Text, or Element (the field-level carriers; None defaults to Element)
	// Nillable, for an Element carrier, maps to the standard xsi:nil
	// attribute (spec.md §4.4, "nillable maps to the standard nil
	// attribute"): Compose emits xsi:nil="true" on an empty element
	// instead of an empty body, and Extract treats an element carrying
	// it as absent text regardless of what body text it also contains.
	Nillable bool
}

// xsiNilLocal is the local (prefix-stripped) attribute name decodeNode
// stores an xsi:nil="true" attribute under, since xml.Decoder reports
// attribute names with their namespace prefix already separated out.
const xsiNilLocal = "nil"

// XML is the RecordFormat for XML element records (spec.md §4.6, "xml").
// Unlike Delimited/FixedLength, field order in the raw text need not
// match declaration order: Extract locates each field by local name
// (namespaces are not compared) and returns values reordered to match
// Fields, so the builder can keep
// treating every format uniformly by declaration position.
type XML struct {
	Element   string
	Namespace string
	Fields    []XMLFieldSpec
}

// xmlNode is a minimal parsed element: attributes, direct child
// elements (by local name), and the concatenation of its own character
// data (excluding descendant elements' text).
type xmlNode struct {
	Attrs    map[string]string
	Children map[string]*xmlNode
	Text     string
}

func (x XML) Validate(raw []byte) error {
	_, err := x.parse(raw)
	if err != nil {
		return fmt.Errorf("malformed xml record: %w", err)
	}

	return nil
}

func (x XML) Extract(raw []byte) ([]string, error) {
	root, err := x.parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed xml record: %w", err)
	}

	out := make([]string, len(x.Fields))

	for i, f := range x.Fields {
		switch f.Carrier {
		case options.XMLTypeAttribute:
			out[i] = root.Attrs[f.Name]
		case options.XMLTypeText:
			out[i] = root.Text
		default: // XMLTypeNone, XMLTypeElement, XMLTypeWrapper
			if child, ok := root.Children[f.Name]; ok {
				if f.Nillable && child.Attrs[xsiNilLocal] == "true" {
					out[i] = ""
					continue
				}

				out[i] = child.Text
			}
		}
	}

	return out, nil
}

func (x XML) Compose(fields []string) ([]byte, error) {
	if len(fields) != len(x.Fields) {
		return nil, fmt.Errorf("composing xml record: got %d fields, configured for %d", len(fields), len(x.Fields))
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%s", x.Element)

	for i, f := range x.Fields {
		if f.Carrier == options.XMLTypeAttribute {
			fmt.Fprintf(&buf, " %s=%q", f.Name, escapeAttr(fields[i]))
		}
	}

	buf.WriteString(">")

	for i, f := range x.Fields {
		switch f.Carrier {
		case options.XMLTypeAttribute:
			continue
		case options.XMLTypeText:
			buf.WriteString(escapeText(fields[i]))
		default:
			if f.Nillable && fields[i] == "" {
				fmt.Fprintf(&buf, `<%s xsi:nil="true"/>`, f.Name)
				continue
			}

			fmt.Fprintf(&buf, "<%s>%s</%s>", f.Name, escapeText(fields[i]), f.Name)
		}
	}

	fmt.Fprintf(&buf, "</%s>", x.Element)

	return buf.Bytes(), nil
}

func (x XML) parse(raw []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Local != x.Element {
			return nil, fmt.Errorf("expected root element %q, found %q", x.Element, start.Name.Local)
		}

		return decodeNode(dec, start)
	}
}

func decodeNode(dec *xml.Decoder, start xml.StartElement) (*xmlNode, error) {
	node := &xmlNode{
		Attrs:    make(map[string]string, len(start.Attr)),
		Children: make(map[string]*xmlNode),
	}

	for _, a := range start.Attr {
		node.Attrs[a.Name.Local] = a.Value
	}

	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeNode(dec, t)
			if err != nil {
				return nil, err
			}

			node.Children[t.Name.Local] = child

		case xml.CharData:
			text.Write(t)

		case xml.EndElement:
			node.Text = text.String()
			return node, nil
		}
	}
}

func escapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}

func escapeText(s string) string {
	return escapeAttr(s)
}
