package query

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"macclip/pkg/errors"
)

// TextFormat asks the host for the clipboard coerced to text. Every other
// format is a 4-character class code such as PNGf or DATA.
const TextFormat = "text"

// ValidateFormat checks that f is TextFormat or a well-formed class code.
func ValidateFormat(f string) error {
	if f == TextFormat {
		return nil
	}
	if utf8.RuneCountInString(f) != 4 {
		return errors.ValidationError(fmt.Sprintf("format %q is not a 4-character class code", f))
	}
	if strings.ContainsAny(f, "«»\"\\\n") {
		return errors.ValidationError(fmt.Sprintf("format %q contains reserved characters", f))
	}
	return nil
}

// ContentsScript builds the AppleScript that returns the clipboard in the
// first of formats the clipboard currently offers. When none matches the
// script returns nothing and the result is empty.
func ContentsScript(formats []string) (string, error) {
	if len(formats) == 0 {
		return "", errors.ValidationError("at least one clipboard format is required")
	}

	var b strings.Builder
	b.WriteString("set clipInfo to (clipboard info) as string\n")
	for i, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return "", err
		}
		keyword := "else if"
		if i == 0 {
			keyword = "if"
		}
		if f == TextFormat {
			fmt.Fprintf(&b, "%s clipInfo contains \"text\" then\n", keyword)
			b.WriteString("\treturn the clipboard as text\n")
			continue
		}
		fmt.Fprintf(&b, "%s clipInfo contains \"«class %s»\" then\n", keyword, f)
		fmt.Fprintf(&b, "\treturn the clipboard as «class %s»\n", f)
	}
	b.WriteString("end if\n")
	return b.String(), nil
}

// InfoScript returns the script listing the formats on the clipboard with
// their sizes, as the host reports them.
func InfoScript() string {
	return "clipboard info\n"
}
