package options

//go:generate go tool stringer -type=XMLCarrier -output=xmltype_string.go

// XMLCarrier selects how a Field's value is carried in an XML record
// subtree: as an attribute on the record element, as the text content of
// the record element itself, or as the text content of a nested element.
type XMLCarrier int

const (
	XMLCarrierElement XMLCarrier = iota
	XMLCarrierAttribute
	XMLCarrierText
)

//go:generate go tool stringer -type=XMLType -output=xmltype2_string.go

// XMLType classifies a node in the XML configuration tree, mirroring the
// stream/group/record/segment distinction spec.md's mapping file exposes
// via xmlType.
type XMLType int

const (
	XMLTypeNone XMLType = iota
	XMLTypeElement
	XMLTypeAttribute
	XMLTypeText
	XMLTypeWrapper
)
