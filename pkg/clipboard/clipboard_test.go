package clipboard

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"macclip/pkg/errors"
)

func TestSystem_QueryRaw(t *testing.T) {
	texts := []string{"first", "second"}
	s := &System{readAll: func() (string, error) {
		text := texts[0]
		texts = texts[1:]
		return text, nil
	}}

	for _, want := range []string{"first", "second"} {
		got, err := s.QueryRaw(context.Background())
		if err != nil {
			t.Fatalf("QueryRaw() error: %v", err)
		}
		if got != want {
			t.Errorf("QueryRaw() = %q, want %q", got, want)
		}
	}
}

func TestSystem_QueryClipboardInfo(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "text", text: "hello", want: "string, 5"},
		{name: "empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &System{readAll: func() (string, error) { return tt.text, nil }}
			got, err := s.QueryClipboardInfo(context.Background())
			if err != nil {
				t.Fatalf("QueryClipboardInfo() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("QueryClipboardInfo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSystem_ReadError(t *testing.T) {
	cause := stderrors.New("no clipboard utilities available")
	s := &System{readAll: func() (string, error) { return "", cause }}

	_, err := s.QueryRaw(context.Background())
	if !errors.IsExitCode(err, errors.ExitCodeExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause should be attached")
	}
}

func TestSystem_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	s := NewSystem(20 * time.Millisecond)
	s.readAll = func() (string, error) {
		<-release
		return "late", nil
	}

	_, err := s.QueryRaw(context.Background())
	if !errors.IsExitCode(err, errors.ExitCodeExecution) {
		t.Errorf("expected execution error, got %v", err)
	}
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if !errors.IsExitCode(err, errors.ExitCodeTimeout) {
		t.Errorf("expected timeout error, got %v", err)
	}
}

func TestSystem_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	s := &System{readAll: func() (string, error) {
		<-release
		return "late", nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := s.QueryRaw(ctx)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if !errors.IsExitCode(err, errors.ExitCodeCancellation) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}
