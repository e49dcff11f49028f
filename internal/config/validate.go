package config

import (
	"fmt"

	"github.com/somranjan/beanio/options"
)

// Validate checks a Tree for configuration errors that spec.md §9 leaves
// as Open Questions rather than guessed-at behavior. Both are resolved
// here as hard validation failures instead of an implicit runtime choice
// (see DESIGN.md "Open Question decisions"):
//
//   - A Record or Group with an explicit maxOccurs of 0 can never match;
//     that is almost certainly a mapping mistake rather than intent, so
//     it is rejected rather than silently accepted as "never binds".
//     LoadYAML/ParseYAML lower `maxOccurs: 0` the same as an omitted
//     maxOccurs (unbounded), so this check fires only for a Tree built
//     with MaxOccurs 0 directly, never for one loaded from YAML.
//   - A Field on an XML stream with both trim and a literal/regex match
//     is rejected when its XML carrier is element-text or plain text,
//     because whether trim runs before or after the literal/regex check
//     is unspecified for that carrier (spec.md §9).
func Validate(tree *Tree) error {
	for _, stream := range tree.Streams {
		if err := validateGroup(&stream.Root); err != nil {
			return fmt.Errorf("stream %q: %w", stream.Name, err)
		}

		if stream.Format == options.FormatXML {
			if err := validateXMLGroup(&stream.Root); err != nil {
				return fmt.Errorf("stream %q: %w", stream.Name, err)
			}
		}
	}

	return nil
}

func validateGroup(g *Group) error {
	if g.MaxOccurs == 0 {
		return fmt.Errorf("group %q: maxOccurs=0 is not a valid occurrence bound (spec.md §9 open question, resolved as a configuration error)", g.Name)
	}

	for i := range g.Groups {
		if err := validateGroup(&g.Groups[i]); err != nil {
			return err
		}
	}

	for i := range g.Records {
		if err := validateRecord(&g.Records[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateRecord(r *Record) error {
	if r.MaxOccurs == 0 {
		return fmt.Errorf("record %q: maxOccurs=0 is not a valid occurrence bound (spec.md §9 open question, resolved as a configuration error)", r.Name)
	}

	return nil
}

func validateXMLGroup(g *Group) error {
	for i := range g.Groups {
		if err := validateXMLGroup(&g.Groups[i]); err != nil {
			return err
		}
	}

	for i := range g.Records {
		if err := validateXMLSegment(g.Records[i].Name, &g.Records[i].Root); err != nil {
			return err
		}
	}

	return nil
}

func validateXMLSegment(recordName string, seg *Segment) error {
	for _, f := range seg.Fields {
		ambiguousCarrier := f.XML.Type == options.XMLTypeElement || f.XML.Type == options.XMLTypeText
		hasMatch := f.Literal != "" || f.Regex != ""

		if f.Trim && hasMatch && ambiguousCarrier {
			return fmt.Errorf(
				"record %q, field %q: trim+literal/regex on XML element-text is ambiguous ordering (spec.md §9 open question, resolved as a configuration error); set trim=false or move the match to an attribute carrier",
				recordName, f.Name,
			)
		}
	}

	for i := range seg.Beans {
		if err := validateXMLSegment(recordName, &seg.Beans[i]); err != nil {
			return err
		}
	}

	return nil
}
