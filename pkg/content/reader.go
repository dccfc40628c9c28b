package content

import (
	"context"
	"time"

	"macclip/pkg/errors"
	"macclip/pkg/logger"
	"macclip/pkg/payload"
	"macclip/pkg/query"

	"github.com/google/uuid"
)

// Reader reads the clipboard. It keeps no result between calls: every Read
// runs a new host query.
type Reader struct {
	querier   query.Querier
	assembler *Assembler
}

func NewReader(q query.Querier, a *Assembler) *Reader {
	if a == nil {
		a = NewAssembler(nil)
	}
	return &Reader{querier: q, assembler: a}
}

// Read queries the host, parses the result and assembles it. Failures are
// wrapped in a RetrievalError that keeps the cause.
func (r *Reader) Read(ctx context.Context) (Content, error) {
	log := logger.With("request_id", uuid.New().String())
	start := time.Now()

	raw, err := r.querier.QueryRaw(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("clipboard query failed")
		return nil, errors.RetrievalError(err)
	}

	parsed, err := payload.NewParser(r.assembler.Table()).Parse(raw)
	if err != nil {
		log.Warn().Err(err).Int("raw_bytes", len(raw)).Msg("clipboard payload rejected")
		return nil, errors.RetrievalError(err)
	}

	c, err := r.assembler.Assemble(parsed)
	if err != nil {
		log.Warn().Err(err).Msg("clipboard payload not assembled")
		return nil, errors.RetrievalError(err)
	}

	log.Debug().
		Str("kind", string(c.Kind())).
		Str("mime_type", c.MediaType()).
		Int("bytes", len(c.Bytes())).
		Dur("elapsed", time.Since(start)).
		Msg("clipboard read")
	return c, nil
}

// Format describes one entry of the clipboard info listing.
type Format struct {
	Tag         string `json:"tag" yaml:"tag"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Size        int64  `json:"size" yaml:"size"`
}

// Info lists the formats the clipboard currently offers.
func (r *Reader) Info(ctx context.Context) ([]Format, error) {
	raw, err := r.querier.QueryClipboardInfo(ctx)
	if err != nil {
		return nil, errors.RetrievalError(err)
	}
	infos, err := payload.ParseInfo(raw)
	if err != nil {
		return nil, errors.RetrievalError(err)
	}

	formats := make([]Format, 0, len(infos))
	for _, info := range infos {
		formats = append(formats, Format{
			Tag:         info.Tag,
			ContentType: r.assembler.Table().ToContentType(info.Tag),
			Size:        info.Size,
		})
	}
	return formats, nil
}
