// Package query runs clipboard inspection scripts on the host. Each call is
// a single synchronous process invocation; results are never reused.
package query

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"macclip/pkg/errors"
	"macclip/pkg/logger"
)

// Querier returns the raw textual result of a clipboard query.
type Querier interface {
	// QueryRaw returns the clipboard contents in the host's literal form.
	QueryRaw(ctx context.Context) (string, error)
	// QueryClipboardInfo returns the host's unparsed format/size listing.
	QueryClipboardInfo(ctx context.Context) (string, error)
}

// Runner starts name, writes stdin to it and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, stdin string) (string, error)
}

// ExecRunner runs commands with os/exec. Standard error is discarded.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, stdin string) (string, error) {
	cmd := exec.CommandContext(ctx, name)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stderr = io.Discard

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.ExecutionError(errors.FromContext(ctxErr, "clipboard query"))
		}
		return "", errors.ExecutionError(err)
	}
	return string(out), nil
}

// OSAScript queries the clipboard through osascript.
type OSAScript struct {
	command  string
	timeout  time.Duration
	runner   Runner
	contents string
}

type Option func(*OSAScript)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(o *OSAScript) { o.runner = r }
}

// WithTimeout bounds each query. Zero leaves the caller's context alone.
func WithTimeout(d time.Duration) Option {
	return func(o *OSAScript) { o.timeout = d }
}

// NewOSAScript returns a Querier that asks for formats in order of
// preference. command is usually "osascript".
func NewOSAScript(command string, formats []string, opts ...Option) (*OSAScript, error) {
	if command == "" {
		return nil, errors.ValidationError("osascript command must not be empty")
	}
	script, err := ContentsScript(formats)
	if err != nil {
		return nil, err
	}
	o := &OSAScript{
		command:  command,
		runner:   ExecRunner{},
		contents: script,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Script returns the contents script sent on every QueryRaw.
func (o *OSAScript) Script() string {
	return o.contents
}

func (o *OSAScript) QueryRaw(ctx context.Context) (string, error) {
	return o.run(ctx, "contents", o.contents)
}

func (o *OSAScript) QueryClipboardInfo(ctx context.Context) (string, error) {
	return o.run(ctx, "info", InfoScript())
}

func (o *OSAScript) run(ctx context.Context, kind, script string) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := o.runner.Run(ctx, o.command, script)
	if err != nil {
		logger.Debug().Err(err).Str("query", kind).Dur("elapsed", time.Since(start)).Msg("clipboard query failed")
		if _, ok := err.(*errors.Error); !ok {
			err = errors.ExecutionError(err)
		}
		return "", err
	}
	logger.Debug().Str("query", kind).Int("bytes", len(out)).Dur("elapsed", time.Since(start)).Msg("clipboard query")

	// osascript terminates every result with one newline of its own.
	return strings.TrimSuffix(out, "\n"), nil
}
