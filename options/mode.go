package options

//go:generate go tool stringer -type=Mode -output=mode_string.go

// Mode constrains which half of the engine a Stream may exercise.
type Mode int

const (
	ModeReadWrite Mode = iota
	ModeRead
	ModeWrite
)

// CanRead reports whether the mode permits unmarshalling.
func (m Mode) CanRead() bool {
	return m == ModeRead || m == ModeReadWrite
}

// CanWrite reports whether the mode permits marshalling.
func (m Mode) CanWrite() bool {
	return m == ModeWrite || m == ModeReadWrite
}

//go:generate go tool stringer -type=Format -output=format_string.go

// Format selects the record-framing codec a Stream's records use.
type Format int

const (
	FormatDelimited Format = iota
	FormatFixedLength
	FormatCSV
	FormatXML
)
