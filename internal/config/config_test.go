package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somranjan/beanio/options"
)

const personMappingYAML = `
streams:
  - name: people
    format: delimited
    delimiter: ","
    records:
      - name: person
        class: Person
        fields:
          - name: name
            position: 0
          - name: age
            position: 1
            type: int
`

func TestParseYAMLLowersStreamsRecordsAndFields(t *testing.T) {
	tree, err := ParseYAML([]byte(personMappingYAML))
	require.NoError(t, err)
	require.Len(t, tree.Streams, 1)

	stream := tree.Streams[0]
	assert.Equal(t, "people", stream.Name)
	require.Len(t, stream.Root.Records, 1)

	rec := stream.Root.Records[0]
	assert.Equal(t, "person", rec.Name)
	assert.Equal(t, "Person", rec.Class)
	require.Len(t, rec.Root.Fields, 2)
	assert.Equal(t, "age", rec.Root.Fields[1].Name)
	assert.Equal(t, "int", rec.Root.Fields[1].Type)
}

func TestParseYAMLRejectsUnknownFormat(t *testing.T) {
	_, err := ParseYAML([]byte(`
streams:
  - name: bad
    format: carrier-pigeon
    records: []
`))
	assert.Error(t, err)
}

func TestParseYAMLMaxOccursAcceptsUnboundedKeyword(t *testing.T) {
	tree, err := ParseYAML([]byte(`
streams:
  - name: people
    format: delimited
    records:
      - name: person
        class: Person
        maxOccurs: unbounded
        fields:
          - name: name
            position: 0
`))
	require.NoError(t, err)
	assert.Equal(t, options.Unbounded, tree.Streams[0].Root.Records[0].MaxOccurs)
}

func TestResolveImportsMergesImportedStreams(t *testing.T) {
	resources := map[string][]byte{
		"root.yaml": []byte(`
streams:
  - name: header
    format: delimited
    records:
      - name: header
        class: Header
        fields:
          - name: id
            position: 0
imports:
  - resource: child.yaml
    scheme: "file:"
`),
		"child.yaml": []byte(`
streams:
  - name: detail
    format: delimited
    records:
      - name: detail
        class: Detail
        fields:
          - name: amount
            position: 0
`),
	}

	load := func(name string) ([]byte, error) {
		data, ok := resources[name]
		if !ok {
			return nil, fmt.Errorf("no such resource %q", name)
		}

		return data, nil
	}

	root, err := ParseYAML(resources["root.yaml"])
	require.NoError(t, err)

	merged, err := ResolveImports(root.Imports, load)
	require.NoError(t, err)
	require.Len(t, merged.Streams, 1)
	assert.Equal(t, "detail", merged.Streams[0].Name)
}

func TestResolveImportsDetectsCircularImport(t *testing.T) {
	resources := map[string][]byte{
		"a.yaml": []byte(`
streams: []
imports:
  - resource: b.yaml
    scheme: "file:"
`),
		"b.yaml": []byte(`
streams: []
imports:
  - resource: a.yaml
    scheme: "file:"
`),
	}

	load := func(name string) ([]byte, error) {
		return resources[name], nil
	}

	_, err := ResolveImports([]Import{{Resource: "a.yaml", Scheme: ImportSchemeFile}}, load)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircularImport)
}

func TestResolveImportsRejectsMissingScheme(t *testing.T) {
	_, err := ResolveImports([]Import{{Resource: "a.yaml", Scheme: ImportSchemeUnspecified}}, func(string) ([]byte, error) {
		return nil, nil
	})
	assert.Error(t, err)
}

// TestValidateRejectsZeroMaxOccurs exercises the first of the two Open
// Question decisions recorded in DESIGN.md: an explicit maxOccurs of 0
// is a configuration error, not a silent "never binds" record.
func TestValidateRejectsZeroMaxOccurs(t *testing.T) {
	tree := &Tree{
		Streams: []Stream{
			{
				Name: "people",
				Root: Group{
					MaxOccurs: 1,
					Records: []Record{
						{Name: "person", MaxOccurs: 0, Class: "Person"},
					},
				},
			},
		},
	}

	err := Validate(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxOccurs=0")
}

func TestValidateAcceptsPositiveAndUnboundedOccurs(t *testing.T) {
	tree := &Tree{
		Streams: []Stream{
			{
				Name: "people",
				Root: Group{
					MaxOccurs: options.Unbounded,
					Records: []Record{
						{Name: "person", MaxOccurs: options.Unbounded, Class: "Person"},
					},
				},
			},
		},
	}

	assert.NoError(t, Validate(tree))
}

// TestValidateRejectsAmbiguousXMLTrimLiteralOrdering exercises the
// second Open Question decision: trim combined with literal/regex on an
// XML element-text or text carrier is rejected as a configuration error,
// since the spec leaves the trim-before-or-after-match order unspecified
// for that carrier.
func TestValidateRejectsAmbiguousXMLTrimLiteralOrdering(t *testing.T) {
	tree := &Tree{
		Streams: []Stream{
			{
				Name:   "people",
				Format: options.FormatXML,
				Root: Group{
					MaxOccurs: options.Unbounded,
					Records: []Record{
						{
							Name:      "person",
							MaxOccurs: options.Unbounded,
							Class:     "Person",
							Root: Segment{
								Fields: []Field{
									{Name: "kind", Trim: true, Literal: "H", XML: XMLAttrs{Type: options.XMLTypeElement}},
								},
							},
						},
					},
				},
			},
		},
	}

	err := Validate(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous ordering")
}

func TestValidateAllowsTrimLiteralOnXMLAttribute(t *testing.T) {
	tree := &Tree{
		Streams: []Stream{
			{
				Name:   "people",
				Format: options.FormatXML,
				Root: Group{
					MaxOccurs: options.Unbounded,
					Records: []Record{
						{
							Name:      "person",
							MaxOccurs: options.Unbounded,
							Class:     "Person",
							Root: Segment{
								Fields: []Field{
									{Name: "kind", Trim: true, Literal: "H", XML: XMLAttrs{Type: options.XMLTypeAttribute}},
								},
							},
						},
					},
				},
			},
		},
	}

	assert.NoError(t, Validate(tree))
}
