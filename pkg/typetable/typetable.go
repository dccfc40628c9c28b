// Package typetable maps the format tags reported by the host clipboard to
// standard content-type identifiers, and back.
//
// A Table is built once from an ordered list of entries and never mutated
// afterwards, so a single Table can be shared freely between goroutines.
// When the same tag or the same content type appears in more than one entry,
// the LAST entry wins, independently for each direction. The default table
// relies on this: several tags map to image/png or application/octet-stream,
// and the tag declared last for a content type is the one ToFormatTag returns.
package typetable

import "strings"

const (
	// GenericBinaryTag is the class code the host uses for untyped data.
	GenericBinaryTag = "DATA"
	// GenericBinaryType is returned for any tag the table does not know.
	GenericBinaryType = "application/octet-stream"
)

// Entry pairs a host format tag with a content type.
type Entry struct {
	Tag         string `json:"tag" yaml:"tag"`
	ContentType string `json:"content_type" yaml:"content_type"`
}

// defaultEntries is ordered. For every content type the canonical reverse
// tag is declared last: the 4-character class code follows its human-readable
// alias, and DATA closes the list so it owns application/octet-stream.
var defaultEntries = []Entry{
	{Tag: "PNG picture", ContentType: "image/png"},
	{Tag: "PNGf", ContentType: "image/png"},
	{Tag: "JPEG picture", ContentType: "image/jpeg"},
	{Tag: "JPEG", ContentType: "image/jpeg"},
	{Tag: "GIF picture", ContentType: "image/gif"},
	{Tag: "GIFf", ContentType: "image/gif"},
	{Tag: "TIFF picture", ContentType: "image/tiff"},
	{Tag: "TIFF", ContentType: "image/tiff"},
	{Tag: "BMP ", ContentType: "image/bmp"},
	{Tag: "string", ContentType: "text/plain"},
	{Tag: "Unicode text", ContentType: "text/plain"},
	{Tag: "utf8", ContentType: "text/plain"},
	{Tag: "HTML", ContentType: "text/html"},
	{Tag: "RTF ", ContentType: "application/rtf"},
	{Tag: "PDF ", ContentType: "application/pdf"},
	{Tag: "furl", ContentType: "text/uri-list"},
	{Tag: "data", ContentType: GenericBinaryType},
	{Tag: GenericBinaryTag, ContentType: GenericBinaryType},
}

// Table is an immutable bidirectional mapping between format tags and
// content types.
type Table struct {
	entries []Entry
	forward map[string]string
	reverse map[string]string
}

var defaultTable = New(defaultEntries...)

// Default returns the table used by the rest of the program.
func Default() *Table {
	return defaultTable
}

// New builds a table from entries in order. Later entries override earlier
// ones for a duplicate tag (forward) and for a duplicate content type
// (reverse), each direction on its own.
func New(entries ...Entry) *Table {
	t := &Table{
		entries: make([]Entry, len(entries)),
		forward: make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}
	copy(t.entries, entries)
	for _, e := range t.entries {
		t.forward[e.Tag] = e.ContentType
		t.reverse[e.ContentType] = e.Tag
	}
	return t
}

// ToContentType returns the content type for tag, or GenericBinaryType when
// the tag is unknown.
func (t *Table) ToContentType(tag string) string {
	if ct, ok := t.forward[tag]; ok {
		return ct
	}
	return GenericBinaryType
}

// ToFormatTag returns the canonical tag for contentType, or GenericBinaryTag
// when the content type is unknown.
func (t *Table) ToFormatTag(contentType string) string {
	if tag, ok := t.reverse[contentType]; ok {
		return tag
	}
	return GenericBinaryTag
}

// Known reports whether tag appears in the table.
func (t *Table) Known(tag string) bool {
	_, ok := t.forward[tag]
	return ok
}

// IsImage reports whether tag resolves to an image/* content type.
func (t *Table) IsImage(tag string) bool {
	ct, ok := t.forward[tag]
	return ok && strings.HasPrefix(ct, "image/")
}

// IsCanonical reports whether tag is the one ToFormatTag returns for its
// own content type.
func (t *Table) IsCanonical(tag string) bool {
	ct, ok := t.forward[tag]
	return ok && t.reverse[ct] == tag
}

// Entries returns a copy of the ordered source list.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
