package config

import "github.com/somranjan/beanio/options"

// Tree is the root of one mapping file's configuration: a set of named
// Streams plus shared TypeHandler overrides, as resolved after all
// imports (spec.md §6).
type Tree struct {
	Streams      []Stream
	TypeHandlers []TypeHandlerConfig
	// Imports holds this tree's own (unresolved) import declarations;
	// ResolveImports takes them and returns a separate Tree holding the
	// imported content, leaving this field unchanged.
	Imports []Import
}

// Stream is the configuration for one input/output stream definition
// (spec.md §3, Stream row).
type Stream struct {
	Name           string
	Format         options.Format
	Mode           options.Mode
	Ordered        bool
	ResourceBundle string
	MinOccurs      int
	MaxOccurs      int // options.Unbounded for "unbounded"
	Delimiter      rune // delimited format only, defaults to ','
	Quote          rune // delimited format only, defaults to '"'
	XML            XMLAttrs
	Root           Group
}

// Group is a node in the configuration tree that contains records or
// nested groups (spec.md §3, Group row).
type Group struct {
	Name      string
	Order     int
	MinOccurs int
	MaxOccurs int
	XML       XMLAttrs
	Groups    []Group
	Records   []Record
	// Sequence preserves declaration order across the Groups/Records
	// split above, recorded as a list of (isGroup, index) pairs so the
	// builder can interleave them the way the mapping file declared them.
	Sequence []SequenceEntry
}

// SequenceEntry records one child's position in a Group's declaration
// order.
type SequenceEntry struct {
	IsGroup bool
	Index   int
}

// Record is the configuration for one physical record definition
// (spec.md §3, Record row).
type Record struct {
	Name      string
	Order     int
	MinOccurs int
	MaxOccurs int
	MinLength int
	MaxLength int // options.Unbounded for unrestricted
	Class     string
	XML       XMLAttrs
	Root      Segment
}

// Segment is a logical grouping of fields and nested beans inside a
// record (spec.md §3, Segment row).
type Segment struct {
	Name       string
	Class      string
	Getter     string
	Setter     string
	Collection string // element type name if this segment repeats into a collection, else ""
	MinOccurs  int
	MaxOccurs  int
	XML        XMLAttrs
	Fields     []Field
	Beans      []Segment // nested beans, XML only (spec.md §3 "nesting permitted only in XML")
	Properties []Property
}

// Field is the smallest bound value in a record (spec.md §3, Field row).
type Field struct {
	Name             string
	Getter           string
	Setter           string
	Collection       string
	Position         int
	MinLength        int
	MaxLength        int
	Regex            string
	Literal          string
	TypeHandler      string
	Type             string
	Format           string
	Default          string
	Required         bool
	Trim             bool
	RecordIdentifier bool
	Ignore           bool
	Length           int
	Padding          rune
	Justify          options.Justify
	XML              XMLAttrs
}

// Property is a constant bean property: it produces its literal Value on
// read without touching the stream (spec.md §3, Bean/BeanProperty row).
type Property struct {
	Name  string
	Type  string
	Value string
}

// TypeHandlerConfig declares a custom TypeHandler registration (spec.md
// §6, typeHandler element).
type TypeHandlerConfig struct {
	Name       string
	Type       string
	Class      string
	Format     string
	Properties map[string]string
}

// XMLAttrs groups the xml* attributes shared by stream/group/record/
// segment/field elements (spec.md §6).
type XMLAttrs struct {
	Name      string
	Namespace string
	Prefix    string
	Type      options.XMLType
	Wrapper   string
	Nillable  bool
}

// Import declares one mapping-file import (spec.md §6, import element).
type Import struct {
	Resource string
	Scheme   ImportScheme
}

// ImportScheme is the resolution scheme for an Import's resource path.
// A missing scheme is a fatal config error (spec.md §6).
type ImportScheme int

const (
	ImportSchemeUnspecified ImportScheme = iota
	ImportSchemeClasspath
	ImportSchemeFile
)
