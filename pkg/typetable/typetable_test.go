package typetable

import (
	"testing"
)

func TestToContentType(t *testing.T) {
	table := Default()

	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "png class code", tag: "PNGf", want: "image/png"},
		{name: "png human name", tag: "PNG picture", want: "image/png"},
		{name: "tiff", tag: "TIFF", want: "image/tiff"},
		{name: "generic binary", tag: "DATA", want: "application/octet-stream"},
		{name: "text", tag: "utf8", want: "text/plain"},
		{name: "unknown tag falls back", tag: "8BPS", want: GenericBinaryType},
		{name: "empty tag falls back", tag: "", want: GenericBinaryType},
		{name: "case sensitive", tag: "pngf", want: GenericBinaryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.ToContentType(tt.tag); got != tt.want {
				t.Errorf("ToContentType(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestToFormatTag(t *testing.T) {
	table := Default()

	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{name: "png resolves to class code", contentType: "image/png", want: "PNGf"},
		{name: "octet-stream resolves to DATA", contentType: "application/octet-stream", want: "DATA"},
		{name: "plain text", contentType: "text/plain", want: "utf8"},
		{name: "unknown falls back", contentType: "video/mp4", want: GenericBinaryTag},
		{name: "empty falls back", contentType: "", want: GenericBinaryTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.ToFormatTag(tt.contentType); got != tt.want {
				t.Errorf("ToFormatTag(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestCanonicalTagsRoundTrip(t *testing.T) {
	table := Default()

	for _, e := range table.Entries() {
		if !table.IsCanonical(e.Tag) {
			continue
		}
		if got := table.ToFormatTag(table.ToContentType(e.Tag)); got != e.Tag {
			t.Errorf("round trip of canonical tag %q = %q", e.Tag, got)
		}
	}

	// Aliases map forward but lose the reverse lookup to the later entry.
	if table.IsCanonical("PNG picture") {
		t.Error("PNG picture should not be canonical for image/png")
	}
	if got := table.ToFormatTag(table.ToContentType("data")); got != "DATA" {
		t.Errorf("round trip of alias %q = %q, want DATA", "data", got)
	}
}

func TestEveryEntryIsReachable(t *testing.T) {
	table := Default()

	for _, e := range table.Entries() {
		if !table.Known(e.Tag) {
			t.Errorf("tag %q missing from forward map", e.Tag)
		}
		if table.ToFormatTag(e.ContentType) == GenericBinaryTag && e.ContentType != GenericBinaryType {
			t.Errorf("content type %q missing from reverse map", e.ContentType)
		}
	}
}

func TestNew_LastEntryWins(t *testing.T) {
	table := New(
		Entry{Tag: "AAAA", ContentType: "x/one"},
		Entry{Tag: "BBBB", ContentType: "x/one"},
		Entry{Tag: "AAAA", ContentType: "x/two"},
	)

	if got := table.ToContentType("AAAA"); got != "x/two" {
		t.Errorf("forward duplicate: got %q, want x/two", got)
	}
	if got := table.ToFormatTag("x/one"); got != "BBBB" {
		t.Errorf("reverse duplicate: got %q, want BBBB", got)
	}
	if got := table.ToFormatTag("x/two"); got != "AAAA" {
		t.Errorf("reverse: got %q, want AAAA", got)
	}
}

func TestNew_OrderDecidesGenericWinner(t *testing.T) {
	dataLast := New(
		Entry{Tag: "ZIP ", ContentType: GenericBinaryType},
		Entry{Tag: GenericBinaryTag, ContentType: GenericBinaryType},
	)
	dataFirst := New(
		Entry{Tag: GenericBinaryTag, ContentType: GenericBinaryType},
		Entry{Tag: "ZIP ", ContentType: GenericBinaryType},
	)

	if got := dataLast.ToFormatTag(GenericBinaryType); got != GenericBinaryTag {
		t.Errorf("DATA declared last: got %q", got)
	}
	if got := dataFirst.ToFormatTag(GenericBinaryType); got != "ZIP " {
		t.Errorf("DATA declared first: got %q, want %q", got, "ZIP ")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	table := New(Entry{Tag: "PNGf", ContentType: "image/png"})

	entries := table.Entries()
	entries[0].ContentType = "text/plain"

	if got := table.ToContentType("PNGf"); got != "image/png" {
		t.Errorf("table mutated through Entries(): %q", got)
	}
	if got := table.Entries()[0].ContentType; got != "image/png" {
		t.Errorf("entries mutated: %q", got)
	}
}

func TestIsImage(t *testing.T) {
	table := Default()

	for tag, want := range map[string]bool{
		"PNGf":   true,
		"JPEG":   true,
		"DATA":   false,
		"utf8":   false,
		"XXXX":   false,
		"string": false,
	} {
		if got := table.IsImage(tag); got != want {
			t.Errorf("IsImage(%q) = %v, want %v", tag, got, want)
		}
	}
}
