// Package syllabus loads syllabus sources and expands them into practice
// item identifiers.
//
// A source is an ordered list of sections. Each section maps topic keys to
// an optional comma-separated list of sub-items. Expanding a source takes
// the Cartesian product of every section's fragments, so a source with
// sections of 2, 3 and 4 fragments yields 24 items.
package syllabus

// Separator joins the parts of an item identifier.
const Separator = ":"

// DefaultSuffix is the file suffix that marks a syllabus source.
const DefaultSuffix = ".toml"

// Topic is one key of a section with its sub-items, if any.
type Topic struct {
	Key      string
	SubItems []string
}

// Section is a named, ordered group of topics.
type Section struct {
	Name   string
	Topics []Topic
}

// Source is one syllabus file.
type Source struct {
	// Name is the file's base name; it prefixes every item of the source.
	Name     string
	Path     string
	Sections []Section
}
