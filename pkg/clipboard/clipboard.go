// Package clipboard provides the "system" backend: a text-only clipboard
// reader for hosts without osascript. It reads through the platform tools
// (pbpaste, xclip/xsel/wl-paste, the Windows API) and presents the result in
// the same raw form the osascript backend produces, so the rest of the
// pipeline treats both alike.
package clipboard

import (
	"context"
	"fmt"
	"time"

	"macclip/pkg/errors"
	"macclip/pkg/query"

	atotto "github.com/atotto/clipboard"
)

var _ query.Querier = (*System)(nil)

// System reads plain text from the host clipboard.
type System struct {
	readAll func() (string, error)
	timeout time.Duration
}

// NewSystem returns a System backed by github.com/atotto/clipboard. A
// positive timeout bounds each read.
func NewSystem(timeout time.Duration) *System {
	return &System{readAll: atotto.ReadAll, timeout: timeout}
}

// Available reports whether the platform has a usable clipboard tool.
func Available() bool {
	return !atotto.Unsupported
}

func (s *System) QueryRaw(ctx context.Context) (string, error) {
	return s.read(ctx)
}

// QueryClipboardInfo reports a single text entry in the host's listing
// format, or nothing when the clipboard is empty.
func (s *System) QueryClipboardInfo(ctx context.Context) (string, error) {
	text, err := s.read(ctx)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	return fmt.Sprintf("string, %d", len(text)), nil
}

func (s *System) read(ctx context.Context) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := s.readAll()
		done <- result{text, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", errors.ExecutionError(r.err)
		}
		return r.text, nil
	case <-ctx.Done():
		return "", errors.ExecutionError(errors.FromContext(ctx.Err(), "clipboard read"))
	}
}
