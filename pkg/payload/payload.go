// Package payload classifies the raw text returned by a clipboard query.
//
// The host renders non-text clipboard data as a literal of the form
//
//	«data PNGf89504E470D0A1A0A…»
//
// where the 4 characters after "«data " are the format tag and the rest,
// up to the closing "»", is the payload in hexadecimal. Only image tags and
// the generic binary tag mark a literal; anything else is plain text.
package payload

import (
	"encoding/hex"
	"fmt"
	"strings"

	"macclip/pkg/errors"
	"macclip/pkg/typetable"
)

const (
	openMarker  = "«data "
	closeMarker = "»"
	tagLength   = 4
)

// Parsed is either PlainText or TaggedBinary.
type Parsed interface {
	parsed()
}

// PlainText is clipboard content the host returned as text.
type PlainText struct {
	Text string
}

// TaggedBinary is a decoded «data …» literal.
type TaggedBinary struct {
	Tag  string
	Data []byte
}

func (PlainText) parsed()    {}
func (TaggedBinary) parsed() {}

// Parser recognises data literals against a type table.
type Parser struct {
	table *typetable.Table
}

// NewParser returns a Parser over table, or over the default table when
// table is nil.
func NewParser(table *typetable.Table) *Parser {
	if table == nil {
		table = typetable.Default()
	}
	return &Parser{table: table}
}

// Parse classifies raw with the default type table.
func Parse(raw string) (Parsed, error) {
	return NewParser(nil).Parse(raw)
}

// Parse classifies raw once. A string that starts with the marker of an image
// tag or the generic binary tag must be a complete literal; otherwise a
// PayloadDecodeError is returned and no partial result.
func (p *Parser) Parse(raw string) (Parsed, error) {
	if !strings.HasPrefix(raw, openMarker) {
		return PlainText{Text: raw}, nil
	}

	rest := []rune(strings.TrimPrefix(raw, openMarker))
	if len(rest) < tagLength {
		return PlainText{Text: raw}, nil
	}
	tag := string(rest[:tagLength])
	if !p.marksLiteral(tag) {
		return PlainText{Text: raw}, nil
	}
	body := string(rest[tagLength:])

	if !strings.Contains(body, closeMarker) {
		return nil, errors.PayloadDecodeError(fmt.Errorf("unterminated %s literal", tag))
	}
	// Only the first closing marker is removed. Hex digits never contain it,
	// so anything after it makes the decode below fail or, for a marker in
	// the middle of the digits, joins the two runs.
	digits := strings.Replace(body, closeMarker, "", 1)

	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.PayloadDecodeError(fmt.Errorf("%s literal: %w", tag, err))
	}
	return TaggedBinary{Tag: tag, Data: data}, nil
}

func (p *Parser) marksLiteral(tag string) bool {
	return p.table.IsImage(tag) || tag == typetable.GenericBinaryTag
}
