package inject

import "strings"

// Marker decides whether a file's content already carries DevKit
// configuration. The override strategy consults it to choose between
// appending and skipping.
type Marker interface {
	// Present reports whether content already contains DevKit configuration.
	Present(content []byte) bool
}

// SubstringMarker matches content containing a fixed literal.
type SubstringMarker string

// Present reports whether content contains the marker literal.
func (m SubstringMarker) Present(content []byte) bool {
	return strings.Contains(string(content), string(m))
}

// DefaultMarker identifies content generated by this tool. Every generated
// Ruby artifact embeds the literal.
const DefaultMarker = SubstringMarker("DevKit")
