package cmd

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"macclip/pkg/content"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatTable is the default human-readable format
	FormatTable OutputFormat = "table"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs as YAML
	FormatYAML OutputFormat = "yaml"
)

// OutputWriter handles structured output formatting
type OutputWriter struct {
	format OutputFormat
	writer io.Writer
}

// NewOutputWriter creates a new output writer with the specified format
func NewOutputWriter(format string, w io.Writer) *OutputWriter {
	f := OutputFormat(format)
	if f != FormatJSON && f != FormatYAML {
		f = FormatTable // default
	}
	if w == nil {
		w = os.Stdout
	}
	return &OutputWriter{
		format: f,
		writer: w,
	}
}

// IsStructured returns true if the format is JSON or YAML
func (w *OutputWriter) IsStructured() bool {
	return w.format == FormatJSON || w.format == FormatYAML
}

// Write outputs the data in the configured format
func (w *OutputWriter) Write(data interface{}) error {
	switch w.format {
	case FormatJSON:
		encoder := json.NewEncoder(w.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(w.writer)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		// Table format is handled by individual commands
		return nil
	}
}

// ValidFormats returns a list of valid output formats
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// contentView is the structured form of a clipboard read.
type contentView struct {
	Kind     string `json:"kind" yaml:"kind"`
	MIMEType string `json:"mime_type" yaml:"mime_type"`
	Size     int    `json:"size" yaml:"size"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Data     string `json:"data,omitempty" yaml:"data,omitempty"`
}

func newContentView(c content.Content) contentView {
	v := contentView{
		Kind:     string(c.Kind()),
		MIMEType: c.MediaType(),
		Size:     len(c.Bytes()),
	}
	if t, ok := c.(content.Text); ok {
		v.Text = t.Text
	} else {
		v.Data = base64.StdEncoding.EncodeToString(c.Bytes())
	}
	return v
}

// FormatSize renders a byte count for tables.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

var headerColor = color.New(color.Bold, color.FgCyan)

func printHeader(w io.Writer, format string, a ...interface{}) {
	headerColor.Fprintf(w, format, a...)
}
