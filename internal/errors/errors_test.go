package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parsing: invalid JSON syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: &AppError{Type: ErrorTypeInference, Message: "test message"},
			target: &AppError{
				Type:    ErrorTypeInference,
				Message: "different message",
				Err:     errors.New("some error"),
			},
			expected: true,
		},
		{
			name:     "different type",
			appError: &AppError{Type: ErrorTypeInput, Message: "test message"},
			target:   &AppError{Type: ErrorTypeParsing, Message: "test message"},
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: &AppError{Type: ErrorTypeInput, Message: "test message"},
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Is(tt.target)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInferenceErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "empty array",
			err:      &EmptyArrayError{Path: "user.tags"},
			sentinel: ErrEmptyArray,
			message:  `array "user.tags" is empty, cannot infer its element type`,
		},
		{
			name:     "unknown type with path",
			err:      &UnknownTypeError{Path: "a", Kind: "complex128"},
			sentinel: ErrUnknownType,
			message:  `unknown type at "a": complex128`,
		},
		{
			name:     "unknown type without path",
			err:      &UnknownTypeError{Kind: "chan int"},
			sentinel: ErrUnknownType,
			message:  "unknown type: chan int",
		},
		{
			name:     "null value",
			err:      &NullValueError{Path: "city"},
			sentinel: ErrNullValue,
			message:  `value at "city" is null, which has no column type (configure a null placeholder to allow it)`,
		},
		{
			name:     "not an object",
			err:      &NotObjectError{Kind: "array"},
			sentinel: ErrNotObject,
			message:  "top-level JSON value must be an object, got array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := NewInferenceError("failed to infer column types", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}
}

func TestEmptyArrayError_As(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewInferenceError("failed", &EmptyArrayError{Path: "arr"}))

	var emptyErr *EmptyArrayError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "arr", emptyErr.Path)
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("failed to read file", nil),
			expected: "Input error: failed to read file",
		},
		{
			name:     "parsing error",
			err:      NewParsingError("invalid JSON syntax", nil),
			expected: "JSON parsing error: invalid JSON syntax",
		},
		{
			name:     "inference error",
			err:      NewInferenceError("failed to infer column types", nil),
			expected: "Type inference error: failed to infer column types",
		},
		{
			name:     "inference error with cause",
			err:      NewInferenceError("failed to infer column types", &EmptyArrayError{Path: "arr"}),
			expected: `Type inference error: failed to infer column types: array "arr" is empty, cannot infer its element type`,
		},
		{
			name:     "generate error",
			err:      NewGenerateError("cannot build table", &NotObjectError{Kind: "string"}),
			expected: "Schema generation error: cannot build table: top-level JSON value must be an object, got string",
		},
		{
			name:     "argument error",
			err:      NewArgumentError("no JSON file specified", ErrMissingArgument),
			expected: "Argument error: no JSON file specified",
		},
		{
			name:     "config error",
			err:      NewConfigError("failed to load config", nil),
			expected: "Configuration error: failed to load config",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name:     "standard error - invalid JSON",
			err:      ErrInvalidJSON,
			expected: "Error: The input contains invalid JSON. Please check your JSON syntax.",
		},
		{
			name:     "standard error - missing argument",
			err:      ErrMissingArgument,
			expected: "Error: No JSON file specified. Run with -h for usage.",
		},
		{
			name:     "bare empty array error",
			err:      &EmptyArrayError{Path: "arr"},
			expected: `Error: array "arr" is empty, cannot infer its element type. Provide at least one element in every array.`,
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserFriendlyError(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
