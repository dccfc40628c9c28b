package cmd

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"macclip/pkg/config"
	"macclip/pkg/content"
	"macclip/pkg/typetable"
)

func TestWriteContent(t *testing.T) {
	tests := []struct {
		name   string
		c      content.Content
		format string
		raw    bool
		want   string
	}{
		{
			name:   "text is written as is",
			c:      content.Text{Text: "Hello, world!"},
			format: "table",
			want:   "Hello, world!",
		},
		{
			name:   "binary raw to a pipe",
			c:      content.Binary{MIMEType: "application/octet-stream", Data: []byte("Hello")},
			format: "table",
			raw:    true,
			want:   "Hello",
		},
		{
			name:   "image summarised on a terminal",
			c:      content.Image{MIMEType: "image/png", Data: make([]byte, 2048)},
			format: "table",
			want:   "image: image/png, 2.0 KiB (use --out FILE or redirect stdout to save)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeContent(&buf, tt.c, tt.format, tt.raw); err != nil {
				t.Fatalf("writeContent() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("writeContent() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteContent_JSON(t *testing.T) {
	var buf bytes.Buffer
	c := content.Image{MIMEType: "image/png", Data: []byte{0x89, 0x50, 0x4e, 0x47}}
	if err := writeContent(&buf, c, "json", false); err != nil {
		t.Fatalf("writeContent() error: %v", err)
	}

	var view contentView
	if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if view.Kind != "image" || view.MIMEType != "image/png" || view.Size != 4 {
		t.Errorf("unexpected view %+v", view)
	}
	data, err := base64.StdEncoding.DecodeString(view.Data)
	if err != nil || !bytes.Equal(data, c.Data) {
		t.Errorf("data = %q (%v)", view.Data, err)
	}
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	formats := []content.Format{{Tag: "PNGf", ContentType: "image/png", Size: 2843}}
	if err := writeFormats(&buf, formats, "table"); err != nil {
		t.Fatalf("writeFormats() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"FORMAT", `"PNGf"`, "image/png", "2.8 KiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := writeFormats(&buf, nil, "table"); err != nil {
		t.Fatalf("writeFormats() error: %v", err)
	}
	if buf.String() != "Clipboard is empty.\n" {
		t.Errorf("empty output = %q", buf.String())
	}

	buf.Reset()
	if err := writeFormats(&buf, nil, "json"); err != nil {
		t.Fatalf("writeFormats() error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty json = %q", buf.String())
	}
}

func TestWriteTypeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTypeTable(&buf, typetable.Default(), "json"); err != nil {
		t.Fatalf("writeTypeTable() error: %v", err)
	}

	var rows []typeRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(rows) != len(typetable.Default().Entries()) {
		t.Fatalf("got %d rows", len(rows))
	}
	last := rows[len(rows)-1]
	if last.Tag != "DATA" || !last.Canonical {
		t.Errorf("last row = %+v, want canonical DATA", last)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// writeFakeHost installs a script standing in for osascript. It drains the
// script sent on stdin and prints the literal a real host would return.
func writeFakeHost(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake host is a shell script")
	}
	dir := t.TempDir()
	host := filepath.Join(dir, "osascript")
	script := "#!/bin/sh\ncat >/dev/null\nprintf '%s\\n' '" + output + "'\n"
	if err := os.WriteFile(host, []byte(script), 0755); err != nil {
		t.Fatalf("write fake host: %v", err)
	}

	cfg := filepath.Join(dir, "config.yaml")
	yaml := "host:\n  backend: osascript\n  command: " + host + "\n"
	if err := os.WriteFile(cfg, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfg
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		getOutFile, getQuiet, outputFormat, configPath = "", false, "table", ""
		preferFormats = nil
		for _, name := range []string{"format", "prefer", "timeout", "log-level"} {
			if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGetCommand_EndToEnd(t *testing.T) {
	cfg := writeFakeHost(t, "«data DATA48656c6c6f»")

	out, err := runRoot(t, "--config", cfg, "--log-level", "off", "get", "--quiet", "--format", "json")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var view contentView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out)
	}
	if view.Kind != "binary" || view.MIMEType != "application/octet-stream" {
		t.Errorf("unexpected view %+v", view)
	}
	if view.Data != base64.StdEncoding.EncodeToString([]byte("Hello")) {
		t.Errorf("data = %q", view.Data)
	}
}

func TestGetCommand_OutFile(t *testing.T) {
	cfg := writeFakeHost(t, "«data PNGf89504e47»")
	dest := filepath.Join(t.TempDir(), "clip.png")

	if _, err := runRoot(t, "--config", cfg, "--log-level", "off", "get", "--quiet", "--out", dest); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(data, []byte{0x89, 0x50, 0x4e, 0x47}) {
		t.Errorf("file contents = %x", data)
	}
}

func TestGetCommand_TextShapedLikeLiteral(t *testing.T) {
	cfg := writeFakeHost(t, "«data note to self»")

	out, err := runRoot(t, "--config", cfg, "--log-level", "off", "get", "--quiet")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != "«data note to self»" {
		t.Errorf("output = %q", out)
	}
}

func TestGetCommand_DecodeFailure(t *testing.T) {
	cfg := writeFakeHost(t, "«data PNGf8950")

	_, err := runRoot(t, "--config", cfg, "--log-level", "off", "get", "--quiet")
	if err == nil {
		t.Fatal("expected error for malformed literal")
	}
	if !strings.Contains(err.Error(), "Error retrieving content from the clipboard") {
		t.Errorf("error = %v", err)
	}
}

func TestPreferFlag(t *testing.T) {
	cfg := writeFakeHost(t, "«data DATA48656c6c6f»")

	_, err := runRoot(t, "--config", cfg, "--log-level", "off", "--prefer", "text,PNG", "get", "--quiet")
	if err == nil || !strings.Contains(err.Error(), "invalid --prefer format") {
		t.Fatalf("expected --prefer validation error, got %v", err)
	}
}

func TestGetContext_NoHostTimeout(t *testing.T) {
	prev := loadedConfig
	t.Cleanup(func() { loadedConfig = prev })
	loadedConfig = config.Default()
	loadedConfig.Host.Timeout = 10 * time.Millisecond

	ctx, cancel := GetContext(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); ok {
		t.Error("command context carries the host timeout; it belongs to the backend")
	}

	cancel()
	if ctx.Err() != context.Canceled {
		t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
	}
}

func TestVersionCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	out, err := runRoot(t, "--config", cfg, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "macclip version dev\n") {
		t.Errorf("output = %q", out)
	}
}
