// Package content turns parsed clipboard payloads into typed content and
// drives the query, parse and assemble steps for a single read.
package content

import (
	"fmt"

	"macclip/pkg/errors"
	"macclip/pkg/payload"
	"macclip/pkg/typetable"
)

type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindBinary Kind = "binary"
)

// Content is one of Text, Image or Binary. Values are built fresh for
// every read.
type Content interface {
	Kind() Kind
	MediaType() string
	Bytes() []byte
}

type Text struct {
	Text string
}

type Image struct {
	MIMEType string
	Data     []byte
}

type Binary struct {
	MIMEType string
	Data     []byte
}

func (Text) Kind() Kind { return KindText }
func (Text) MediaType() string { return "text/plain" }
func (t Text) Bytes() []byte { return []byte(t.Text) }
func (Image) Kind() Kind { return KindImage }
func (i Image) MediaType() string { return i.MIMEType }
func (i Image) Bytes() []byte { return i.Data }
func (Binary) Kind() Kind { return KindBinary }
func (b Binary) MediaType() string { return b.MIMEType }
func (b Binary) Bytes() []byte { return b.Data }

// Assembler maps parsed payloads to Content using a type table.
type Assembler struct {
	table *typetable.Table
}

// NewAssembler returns an Assembler over table, or over the default table
// when table is nil.
func NewAssembler(table *typetable.Table) *Assembler {
	if table == nil {
		table = typetable.Default()
	}
	return &Assembler{table: table}
}

// Table returns the type table the assembler resolves tags with.
func (a *Assembler) Table() *typetable.Table {
	return a.table
}

func (a *Assembler) Assemble(p payload.Parsed) (Content, error) {
	switch v := p.(type) {
	case payload.PlainText:
		return Text{Text: v.Text}, nil
	case payload.TaggedBinary:
		contentType := a.table.ToContentType(v.Tag)
		if a.table.IsImage(v.Tag) {
			return Image{MIMEType: contentType, Data: v.Data}, nil
		}
		return Binary{MIMEType: contentType, Data: v.Data}, nil
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unsupported payload %T", p))
	}
}
