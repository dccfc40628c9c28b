package payload

import (
	"fmt"
	"strconv"
	"strings"

	"macclip/pkg/errors"
)

// FormatInfo is one entry of the host's clipboard info listing.
type FormatInfo struct {
	Tag  string `json:"tag" yaml:"tag"`
	Size int64  `json:"size" yaml:"size"`
}

// ParseInfo reads a clipboard info listing such as
//
//	«class PNGf», 2843, «class 8BPS», 20328, string, 12
//
// or its braced source form {{«class PNGf», 2843}, {string, 12}}. Class
// literals are reduced to their 4-character code; named formats such as
// "Unicode text" are kept as they are.
func ParseInfo(raw string) ([]FormatInfo, error) {
	cleaned := strings.NewReplacer("{", "", "}", "").Replace(raw)

	var fields []string
	for _, f := range strings.Split(cleaned, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields)%2 != 0 {
		return nil, errors.PayloadDecodeError(fmt.Errorf("clipboard info has %d fields, want pairs", len(fields)))
	}

	infos := make([]FormatInfo, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		size, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return nil, errors.PayloadDecodeError(fmt.Errorf("size of %s: %w", fields[i], err))
		}
		infos = append(infos, FormatInfo{Tag: classCode(fields[i]), Size: size})
	}
	return infos, nil
}

func classCode(name string) string {
	if strings.HasPrefix(name, "«class ") && strings.HasSuffix(name, "»") {
		return strings.TrimSuffix(strings.TrimPrefix(name, "«class "), "»")
	}
	return name
}
