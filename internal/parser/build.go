package parser

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"github.com/somranjan/beanio/internal/config"
	"github.com/somranjan/beanio/internal/format"
	"github.com/somranjan/beanio/internal/parser/accessor"
	"github.com/somranjan/beanio/internal/typehandler"
	"github.com/somranjan/beanio/options"
)

// builder carries the two registries every leaf of a StreamTree is
// resolved against: the TypeHandler chain for text<->value conversion
// and the bean-type/accessor Factory for binding (spec.md §4.7, build
// phase — everything below is resolved once, at build time, so a
// misconfigured mapping fails before a single record is read).
type builder struct {
	registry  *typehandler.Registry
	accessors *accessor.Factory
}

// Build translates a validated config.Tree into one *StreamTree per
// declared Stream, keyed by stream name (spec.md §3, §4.1, §4.7). Call
// config.Validate on tree before Build; Build does not re-validate.
func Build(tree *config.Tree, registry *typehandler.Registry, accessors *accessor.Factory) (map[string]*StreamTree, error) {
	b := &builder{registry: registry, accessors: accessors}

	out := make(map[string]*StreamTree, len(tree.Streams))

	for i := range tree.Streams {
		st, err := b.buildStream(&tree.Streams[i])
		if err != nil {
			return nil, fmt.Errorf("stream %q: %w", tree.Streams[i].Name, err)
		}

		out[st.Name] = st
	}

	return out, nil
}

func (b *builder) buildStream(cs *config.Stream) (*StreamTree, error) {
	st := &StreamTree{Name: cs.Name}

	root, err := b.buildGroup(cs, &cs.Root)
	if err != nil {
		return nil, err
	}

	root.name = cs.Name
	root.minOccurs = 1
	root.maxOccurs = options.Unbounded
	root.ordered = cs.Ordered

	st.Root = root
	registerTree(st, root)

	return st, nil
}

// registerTree walks sel and, if it is a Group, its children, adding
// every Selector to st's arena in build order.
func registerTree(st *StreamTree, sel Selector) {
	st.register(sel)

	if g, ok := sel.(*Group); ok {
		for _, c := range g.children {
			registerTree(st, c)
		}
	}
}

// buildGroup lowers one config.Group (recursively) into a *Group,
// building children in declaration order (config.Group.Sequence) and
// then stable-sorting by declared Order so equal-order siblings keep
// their declaration order (spec.md §4.1, "Tie-breaks").
func (b *builder) buildGroup(cs *config.Stream, cg *config.Group) (*Group, error) {
	g := &Group{
		name:      cg.Name,
		minOccurs: cg.MinOccurs,
		maxOccurs: cg.MaxOccurs,
		order:     cg.Order,
		ordered:   cs.Ordered,
	}

	for _, entry := range cg.Sequence {
		var (
			child Selector
			err   error
		)

		if entry.IsGroup {
			child, err = b.buildGroup(cs, &cg.Groups[entry.Index])
		} else {
			child, err = b.buildRecord(cs, &cg.Records[entry.Index])
		}

		if err != nil {
			return nil, err
		}

		g.children = append(g.children, child)
	}

	sort.SliceStable(g.children, func(i, j int) bool {
		return orderOf(g.children[i]) < orderOf(g.children[j])
	})

	return g, nil
}

// orderOf recovers a built child's declared Order for the tie-break
// sort; only Group and Record implement Order().
func orderOf(s Selector) int {
	type ordered interface{ Order() int }

	if o, ok := s.(ordered); ok {
		return o.Order()
	}

	return 0
}

func (b *builder) buildRecord(cs *config.Stream, cr *config.Record) (*Record, error) {
	if cr.Class == "" {
		return nil, fmt.Errorf("record %q: class is required (Go has no implicit bean type)", cr.Name)
	}

	beanType, err := b.accessors.ResolveType(cr.Class)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", cr.Name, err)
	}

	root, err := b.buildSegment(cs, &cr.Root, beanType, nil)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", cr.Name, err)
	}

	rf, err := b.buildRecordFormat(cs, cr, root)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", cr.Name, err)
	}

	r := &Record{
		name:      cr.Name,
		minOccurs: cr.MinOccurs,
		maxOccurs: cr.MaxOccurs,
		order:     cr.Order,
		minLength: cr.MinLength,
		maxLength: cr.MaxLength,
		format:    rf,
		root:      root,
		beanType:  beanType,
	}

	for _, f := range root.Fields {
		if f.RecordIdentifier {
			r.identifiers = append(r.identifiers, identifier{field: f})
		}
	}

	return r, nil
}

// buildRecordFormat constructs the RecordFormat this record's fields
// are read/written through, matching the stream's declared format
// (spec.md §4.6). Flat formats need every field's position filled in
// contiguously so field i's text lines up with format.Extract's output
// index i. XML locates fields by name and Extract returns them in
// flattened declaration order, so each XML field's Position is set to
// its index in that order.
func (b *builder) buildRecordFormat(cs *config.Stream, cr *config.Record, root *Segment) (format.RecordFormat, error) {
	fields := flattenFields(root)

	switch cs.Format {
	case options.FormatDelimited, options.FormatCSV:
		delim := cs.Delimiter
		if delim == 0 {
			delim = ','
		}

		return format.Delimited{Delimiter: delim, Quote: cs.Quote}, nil

	case options.FormatFixedLength:
		lengths := make([]int, len(fields))
		for i, f := range fields {
			lengths[i] = f.Length
		}

		return format.FixedLength{Lengths: lengths}, nil

	case options.FormatXML:
		element := cr.XML.Name
		if element == "" {
			element = cr.Name
		}

		specs := make([]format.XMLFieldSpec, len(fields))
		for i, f := range fields {
			specs[i] = f.XML
			f.Position = i
		}

		return format.XML{Element: element, Namespace: cr.XML.Namespace, Fields: specs}, nil

	default:
		return nil, fmt.Errorf("unsupported stream format %v", cs.Format)
	}
}

// flattenFields walks seg's Fields and every nested Beans' Fields in
// Unmarshal/Marshal visitation order, giving buildRecordFormat the same
// positional ordering Segment.Unmarshal/Marshal actually index against.
func flattenFields(seg *Segment) []*Field {
	fields := append([]*Field(nil), seg.Fields...)

	for _, nested := range seg.Beans {
		fields = append(fields, flattenFields(nested)...)
	}

	return fields
}

func (b *builder) buildSegment(cs *config.Stream, cseg *config.Segment, beanType reflect.Type, acc accessor.PropertyAccessor) (*Segment, error) {
	seg := &Segment{Name: cseg.Name, Accessor: acc, BeanType: beanType}

	for i := range cseg.Fields {
		f, err := b.buildField(cs, &cseg.Fields[i], beanType)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", cseg.Fields[i].Name, err)
		}

		seg.Fields = append(seg.Fields, f)
	}

	for i := range cseg.Properties {
		cp := &cseg.Properties[i]

		p, err := b.buildProperty(beanType, cp)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", cp.Name, err)
		}

		seg.Properties = append(seg.Properties, p)
	}

	for i := range cseg.Beans {
		cb := &cseg.Beans[i]

		if cb.Class == "" {
			return nil, fmt.Errorf("bean %q: class is required", cb.Name)
		}

		nestedType, err := b.accessors.ResolveType(cb.Class)
		if err != nil {
			return nil, fmt.Errorf("bean %q: %w", cb.Name, err)
		}

		nestedAcc, err := b.buildAccessor(beanType, cb.Name, cb.Getter, cb.Setter, nestedType)
		if err != nil {
			return nil, fmt.Errorf("bean %q: %w", cb.Name, err)
		}

		nested, err := b.buildSegment(cs, cb, nestedType, nestedAcc)
		if err != nil {
			return nil, fmt.Errorf("bean %q: %w", cb.Name, err)
		}

		seg.Beans = append(seg.Beans, nested)
	}

	return seg, nil
}

func (b *builder) buildField(cs *config.Stream, cf *config.Field, beanType reflect.Type) (*Field, error) {
	f := &Field{
		Name:             cf.Name,
		Position:         cf.Position,
		MinLength:        cf.MinLength,
		MaxLength:        cf.MaxLength,
		Required:         cf.Required,
		Nillable:         cf.XML.Nillable,
		Trim:             cf.Trim,
		Literal:          cf.Literal,
		Default:          cf.Default,
		Ignore:           cf.Ignore,
		RecordIdentifier: cf.RecordIdentifier,
		Length:           cf.Length,
		Padding:          cf.Padding,
		Justify:          cf.Justify,
		XML: format.XMLFieldSpec{
			Name:      xmlFieldName(cf),
			Namespace: cf.XML.Namespace,
			Carrier:   cf.XML.Type,
			Nillable:  cf.XML.Nillable,
		},
	}

	if cf.Regex != "" {
		re, err := compileRegex(cf.Regex)
		if err != nil {
			return nil, err
		}

		f.Regex = re
	}

	if f.Ignore {
		return f, nil
	}

	acc, err := b.buildAccessor(beanType, cf.Name, cf.Getter, cf.Setter, nil)
	if err != nil {
		return nil, err
	}

	f.Accessor = acc

	propertyType := acc.Type()
	if cf.Type != "" {
		t, err := b.accessors.ResolveType(cf.Type)
		if err != nil {
			return nil, err
		}

		propertyType = t
	}

	handler, err := b.registry.Resolve(cf.TypeHandler, propertyType, cf.Format)
	if err != nil {
		return nil, err
	}

	f.Handler = handler

	return f, nil
}

func (b *builder) buildProperty(beanType reflect.Type, cp *config.Property) (*Property, error) {
	acc, err := b.accessors.FieldAccessor(beanType, cp.Name)
	if err != nil {
		return nil, err
	}

	propertyType := acc.Type()
	if cp.Type != "" {
		t, err := b.accessors.ResolveType(cp.Type)
		if err != nil {
			return nil, err
		}

		propertyType = t
	}

	handler, err := b.registry.Resolve("", propertyType, "")
	if err != nil {
		return nil, err
	}

	return &Property{Name: cp.Name, Accessor: acc, Handler: handler, Value: cp.Value}, nil
}

// buildAccessor resolves a field/bean's property binding: an explicit
// getter/setter pair needs propertyType supplied (a method's return
// type isn't known until the accessor itself resolves it, and the
// config layer never sees reflect.Type), while a plain field name
// accessor infers its type from the struct field.
func (b *builder) buildAccessor(beanType reflect.Type, name, getter, setter string, propertyType reflect.Type) (accessor.PropertyAccessor, error) {
	if getter != "" || setter != "" {
		if propertyType == nil {
			return nil, fmt.Errorf("%q: type is required when getter/setter is used", name)
		}

		return b.accessors.MethodAccessor(beanType, getter, setter, propertyType)
	}

	return b.accessors.FieldAccessor(beanType, name)
}

func compileRegex(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regex %q: %w", pattern, err)
	}

	return re, nil
}

func xmlFieldName(cf *config.Field) string {
	if cf.XML.Name != "" {
		return cf.XML.Name
	}

	return cf.Name
}
