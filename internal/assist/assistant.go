package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// User-facing messages. These are the only error texts the UI ever shows.
const (
	SuggestFailedMessage = "Failed to get suggestions. Please try again."
	EnhanceFailedMessage = "Enhancement failed. Please try again."
)

var (
	// ErrRequestFailed matches every failed model call, whatever the cause.
	ErrRequestFailed = errors.New("request failed")
	// ErrBlankInput is returned when there is no text to work on.
	ErrBlankInput = errors.New("input is blank")
)

// Op names the flow a request belongs to.
type Op string

const (
	OpSuggest Op = "suggest"
	OpEnhance Op = "enhance"
)

// RequestError wraps a backend failure. It matches ErrRequestFailed.
type RequestError struct {
	Op  Op
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrRequestFailed, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// UserMessage returns the fixed message shown for a failure of this flow.
func (e *RequestError) UserMessage() string {
	return FailureMessage(e.Op)
}

// FailureMessage returns the fixed user-facing message for a failed op.
func FailureMessage(op Op) string {
	if op == OpEnhance {
		return EnhanceFailedMessage
	}
	return SuggestFailedMessage
}

// Assistant runs the two flows against a Generator.
type Assistant struct {
	gen Generator
}

// New returns an Assistant backed by gen.
func New(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Name reports the backend in use.
func (a *Assistant) Name() string {
	return a.gen.Name()
}

// Suggest asks for writing suggestions on text. Blank text yields no
// suggestions and no request.
func (a *Assistant) Suggest(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	raw, err := a.gen.Generate(ctx, SuggestionPrompt(text))
	if err != nil {
		return nil, &RequestError{Op: OpSuggest, Err: err}
	}
	return ParseSuggestions(raw), nil
}

// Enhance asks for a rewrite of text towards level. The reply is returned as is.
func (a *Assistant) Enhance(ctx context.Context, text string, level Level) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrBlankInput
	}
	out, err := a.gen.Generate(ctx, EnhancePrompt(text, level))
	if err != nil {
		return "", &RequestError{Op: OpEnhance, Err: err}
	}
	return out, nil
}
