package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"macclip/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeExecution     ExitCode = 3
	ExitCodePayloadDecode ExitCode = 4
	ExitCodeValidation    ExitCode = 5
	ExitCodeFileOperation ExitCode = 6
	ExitCodeCancellation  ExitCode = 7
	ExitCodeTimeout       ExitCode = 8
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgRetrieval     = "Error retrieving content from the clipboard"
	ErrMsgExecution     = "Clipboard query failed"
	ErrMsgPayloadDecode = "Malformed clipboard data literal"
	ErrMsgInvalidInput  = "Invalid input provided"
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap prefixes err with message. An *Error keeps its code and suggestion.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

// IsExitCode reports whether any *Error in err's chain carries code.
func IsExitCode(err error, code ExitCode) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ExecutionError reports that the host clipboard capability could not be
// run or exited unsuccessfully.
func ExecutionError(err error) *Error {
	return &Error{
		Code:       ExitCodeExecution,
		Message:    ErrMsgExecution,
		Underlying: err,
		Suggestion: "Check that osascript is available and that the terminal has permission to read the clipboard.",
	}
}

// PayloadDecodeError reports a «data …» literal that could not be decoded.
func PayloadDecodeError(err error) *Error {
	return &Error{
		Code:       ExitCodePayloadDecode,
		Message:    ErrMsgPayloadDecode,
		Underlying: err,
	}
}

// RetrievalError is the generic failure shown to clipboard consumers. The
// cause stays attached for diagnostics and its exit code is preserved.
func RetrievalError(err error) *Error {
	if err == nil {
		return nil
	}
	code := ExitCodeGeneral
	if e, ok := err.(*Error); ok {
		code = e.Code
	}
	return &Error{
		Code:       code,
		Message:    ErrMsgRetrieval,
		Underlying: err,
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file or set the required environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func TimeoutError(operation string) *Error {
	return &Error{
		Code:       ExitCodeTimeout,
		Message:    fmt.Sprintf("Operation timed out: %s", operation),
		Suggestion: "Try again with a longer timeout using --timeout flag.",
	}
}

func CancelledError(operation string) *Error {
	return &Error{
		Code:    ExitCodeCancellation,
		Message: fmt.Sprintf("Operation cancelled: %s", operation),
	}
}

// FromContext turns a context error into a TimeoutError or CancelledError
// that wraps it. Any other error is returned unchanged.
func FromContext(err error, operation string) error {
	var e *Error
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		e = TimeoutError(operation)
	case stderrors.Is(err, context.Canceled):
		e = CancelledError(operation)
	default:
		return err
	}
	e.Underlying = err
	return e
}

// HandleReturn logs err, prints it to stderr and returns the exit code the
// caller should use.
func HandleReturn(err error) ExitCode {
	return handleTo(os.Stderr, err)
}

func handleTo(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Error()
		suggestion = e.Suggestion
		if s := innermostSuggestion(e.Underlying); suggestion == "" && s != "" {
			suggestion = s
		}

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, message)

	if suggestion != "" {
		yellow.Fprint(w, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(w, line)
			} else if strings.HasPrefix(line, "  -") {
				cyan.Fprintln(w, line)
			} else {
				fmt.Fprintln(w, "           "+line)
			}
		}
	}

	fmt.Fprintln(w)

	return exitCode
}

func innermostSuggestion(err error) string {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Suggestion != "" {
				return e.Suggestion
			}
			err = e.Underlying
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
