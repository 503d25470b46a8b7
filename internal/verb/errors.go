package verb

import (
	"errors"
	"fmt"
)

// ErrorCode identifies why a verb could not be classified or conjugated.
type ErrorCode string

const (
	CodeEmptyInput        ErrorCode = "EMPTY_INPUT"
	CodeInvalidCharacters ErrorCode = "INVALID_CHARACTERS"
	CodeUnknownVerb       ErrorCode = "UNKNOWN_VERB"
	CodeAmbiguousVerb     ErrorCode = "AMBIGUOUS_VERB"
	CodeConjugationFailed ErrorCode = "CONJUGATION_FAILED"
)

// Sentinel errors, one per code. A *ConjugationError matches its sentinel with errors.Is.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrInvalidCharacters = errors.New("invalid characters")
	ErrUnknownVerb       = errors.New("unknown verb")
	ErrAmbiguousVerb     = errors.New("ambiguous verb")
	ErrConjugationFailed = errors.New("conjugation failed")
)

var sentinels = map[ErrorCode]error{
	CodeEmptyInput:        ErrEmptyInput,
	CodeInvalidCharacters: ErrInvalidCharacters,
	CodeUnknownVerb:       ErrUnknownVerb,
	CodeAmbiguousVerb:     ErrAmbiguousVerb,
	CodeConjugationFailed: ErrConjugationFailed,
}

// ConjugationError is the tagged error returned by classification and generation.
type ConjugationError struct {
	Code    ErrorCode
	Message string
}

func (e *ConjugationError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ConjugationError) Unwrap() error {
	return sentinels[e.Code]
}

// NewError creates a ConjugationError with a formatted message.
func NewError(code ErrorCode, format string, args ...any) *ConjugationError {
	return &ConjugationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code carried by err, or "" if err is not a ConjugationError.
func CodeOf(err error) ErrorCode {
	var ce *ConjugationError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
