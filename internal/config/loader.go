package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/somranjan/beanio/options"
)

// LoadYAML reads and parses a YAML mapping file from path into a Tree.
func LoadYAML(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping file %s: %w", path, err)
	}

	return ParseYAML(data)
}

// ParseYAML parses YAML bytes into a Tree.
func ParseYAML(data []byte) (*Tree, error) {
	var yt yamlTree

	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing mapping YAML: %w", err)
	}

	tree, err := lower(&yt)
	if err != nil {
		return nil, fmt.Errorf("lowering mapping YAML: %w", err)
	}

	return tree, nil
}

func lower(yt *yamlTree) (*Tree, error) {
	tree := &Tree{}

	for _, yh := range yt.TypeHandlers {
		tree.TypeHandlers = append(tree.TypeHandlers, TypeHandlerConfig{
			Name:       yh.Name,
			Type:       yh.Type,
			Class:      yh.Class,
			Format:     yh.Format,
			Properties: yh.Properties,
		})
	}

	for _, ys := range yt.Streams {
		stream, err := lowerStream(&ys)
		if err != nil {
			return nil, fmt.Errorf("stream %q: %w", ys.Name, err)
		}

		tree.Streams = append(tree.Streams, *stream)
	}

	for _, yi := range yt.Imports {
		scheme, err := parseImportScheme(yi.Scheme)
		if err != nil {
			return nil, err
		}

		tree.Imports = append(tree.Imports, Import{Resource: yi.Resource, Scheme: scheme})
	}

	return tree, nil
}

func parseImportScheme(s string) (ImportScheme, error) {
	switch s {
	case "classpath:":
		return ImportSchemeClasspath, nil
	case "file:":
		return ImportSchemeFile, nil
	case "":
		return ImportSchemeUnspecified, nil
	default:
		return 0, fmt.Errorf("unknown import scheme %q (expected classpath: or file:)", s)
	}
}

func lowerStream(ys *yamlStream) (*Stream, error) {
	format, err := parseFormat(ys.Format)
	if err != nil {
		return nil, err
	}

	mode, err := parseMode(ys.Mode)
	if err != nil {
		return nil, err
	}

	ordered := true
	if ys.Ordered != nil {
		ordered = *ys.Ordered
	}

	root, err := lowerGroupBody("", ys.Groups, ys.Records)
	if err != nil {
		return nil, err
	}

	root.Name = ys.Name

	maxOccurs := int(ys.MaxOccurs)
	if maxOccurs == 0 {
		maxOccurs = options.Unbounded
	}

	delimiter := ','
	if ys.Delimiter != "" {
		delimiter = []rune(ys.Delimiter)[0]
	}

	quote := '"'
	if ys.Quote != "" {
		quote = []rune(ys.Quote)[0]
	}

	return &Stream{
		Name:           ys.Name,
		Format:         format,
		Mode:           mode,
		Ordered:        ordered,
		ResourceBundle: ys.ResourceBundle,
		MinOccurs:      ys.MinOccurs,
		MaxOccurs:      maxOccurs,
		Delimiter:      delimiter,
		Quote:          quote,
		XML:            lowerXML(ys.XML),
		Root:           root,
	}, nil
}

// lowerGroupBody lowers a group's declared children: every nested group
// first, then every record, each list in its own declaration order. The
// YAML form keeps groups and records in separate lists, so their
// relative order is not recorded.
func lowerGroupBody(name string, groups []yamlGroup, records []yamlRecord) (Group, error) {
	g := Group{Name: name, MaxOccurs: options.Unbounded}

	for i := range groups {
		child, err := lowerGroup(&groups[i])
		if err != nil {
			return Group{}, err
		}

		g.Sequence = append(g.Sequence, SequenceEntry{IsGroup: true, Index: len(g.Groups)})
		g.Groups = append(g.Groups, *child)
	}

	for i := range records {
		child, err := lowerRecord(&records[i])
		if err != nil {
			return Group{}, err
		}

		g.Sequence = append(g.Sequence, SequenceEntry{IsGroup: false, Index: len(g.Records)})
		g.Records = append(g.Records, *child)
	}

	return g, nil
}

func lowerGroup(yg *yamlGroup) (*Group, error) {
	body, err := lowerGroupBody(yg.Name, yg.Groups, yg.Records)
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", yg.Name, err)
	}

	body.Order = yg.Order
	body.MinOccurs = yg.MinOccurs
	body.MaxOccurs = orUnbounded(int(yg.MaxOccurs))
	body.XML = lowerXML(yg.XML)

	return &body, nil
}

func lowerRecord(yr *yamlRecord) (*Record, error) {
	root := Segment{Name: yr.Name}

	for i := range yr.Fields {
		field, err := lowerField(&yr.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("record %q, field %q: %w", yr.Name, yr.Fields[i].Name, err)
		}

		root.Fields = append(root.Fields, *field)
	}

	for i := range yr.Beans {
		bean, err := lowerBean(&yr.Beans[i])
		if err != nil {
			return nil, fmt.Errorf("record %q, bean %q: %w", yr.Name, yr.Beans[i].Name, err)
		}

		root.Beans = append(root.Beans, *bean)
	}

	return &Record{
		Name:      yr.Name,
		Order:     yr.Order,
		MinOccurs: yr.MinOccurs,
		MaxOccurs: orUnbounded(int(yr.MaxOccurs)),
		MinLength: yr.MinLength,
		MaxLength: orUnbounded(int(yr.MaxLength)),
		Class:     yr.Class,
		XML:       lowerXML(yr.XML),
		Root:      root,
	}, nil
}

func lowerBean(yb *yamlBean) (*Segment, error) {
	seg := &Segment{
		Name:       yb.Name,
		Class:      yb.Class,
		Getter:     yb.Getter,
		Setter:     yb.Setter,
		Collection: yb.Collection,
		MinOccurs:  yb.MinOccurs,
		MaxOccurs:  orUnbounded(int(yb.MaxOccurs)),
		XML:        lowerXML(yb.XML),
	}

	for i := range yb.Fields {
		field, err := lowerField(&yb.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("bean %q, field %q: %w", yb.Name, yb.Fields[i].Name, err)
		}

		seg.Fields = append(seg.Fields, *field)
	}

	for i := range yb.Beans {
		nested, err := lowerBean(&yb.Beans[i])
		if err != nil {
			return nil, err
		}

		seg.Beans = append(seg.Beans, *nested)
	}

	for _, yp := range yb.Properties {
		seg.Properties = append(seg.Properties, Property{Name: yp.Name, Type: yp.Type, Value: yp.Value})
	}

	return seg, nil
}

func lowerField(yf *yamlField) (*Field, error) {
	justify, err := parseJustify(yf.Justify)
	if err != nil {
		return nil, err
	}

	padding := ' '
	if yf.Padding != "" {
		padding = []rune(yf.Padding)[0]
	}

	return &Field{
		Name:             yf.Name,
		Getter:           yf.Getter,
		Setter:           yf.Setter,
		Collection:       yf.Collection,
		Position:         yf.Position,
		MinLength:        yf.MinLength,
		MaxLength:        orUnbounded(int(yf.MaxLength)),
		Regex:            yf.Regex,
		Literal:          yf.Literal,
		TypeHandler:      yf.TypeHandler,
		Type:             yf.Type,
		Format:           yf.Format,
		Default:          yf.Default,
		Required:         yf.Required,
		Trim:             yf.Trim,
		RecordIdentifier: yf.RID,
		Ignore:           yf.Ignore,
		Length:           yf.Length,
		Padding:          padding,
		Justify:          justify,
		XML:              lowerXML(yf.XML),
	}, nil
}

func lowerXML(yx yamlXML) XMLAttrs {
	t, _ := parseXMLType(yx.Type)

	return XMLAttrs{
		Name:      yx.Name,
		Namespace: yx.Namespace,
		Prefix:    yx.Prefix,
		Type:      t,
		Wrapper:   yx.Wrapper,
		Nillable:  yx.Nillable,
	}
}

func orUnbounded(n int) int {
	if n == 0 {
		return options.Unbounded
	}

	return n
}

func parseFormat(s string) (options.Format, error) {
	switch s {
	case "delimited":
		return options.FormatDelimited, nil
	case "fixed", "fixedlength", "fixed-length":
		return options.FormatFixedLength, nil
	case "csv":
		return options.FormatCSV, nil
	case "xml":
		return options.FormatXML, nil
	default:
		return 0, fmt.Errorf("unknown stream format %q", s)
	}
}

func parseMode(s string) (options.Mode, error) {
	switch s {
	case "", "readwrite":
		return options.ModeReadWrite, nil
	case "read":
		return options.ModeRead, nil
	case "write":
		return options.ModeWrite, nil
	default:
		return 0, fmt.Errorf("unknown stream mode %q", s)
	}
}

func parseJustify(s string) (options.Justify, error) {
	switch s {
	case "", "left":
		return options.JustifyLeft, nil
	case "right":
		return options.JustifyRight, nil
	default:
		return 0, fmt.Errorf("unknown justify %q", s)
	}
}

func parseXMLType(s string) (options.XMLType, error) {
	switch s {
	case "":
		return options.XMLTypeNone, nil
	case "element":
		return options.XMLTypeElement, nil
	case "attribute":
		return options.XMLTypeAttribute, nil
	case "text":
		return options.XMLTypeText, nil
	case "wrapper":
		return options.XMLTypeWrapper, nil
	default:
		return 0, fmt.Errorf("unknown xmlType %q", s)
	}
}
