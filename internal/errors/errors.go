package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrMissingArgument = errors.New("missing argument: a JSON file path is required")
	ErrEmptyArray      = errors.New("empty array: element type cannot be inferred")
	ErrUnknownType     = errors.New("unknown JSON value type")
	ErrNullValue       = errors.New("null value has no column type")
	ErrNotObject       = errors.New("top-level JSON value is not an object")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeParsing   ErrorType = "parsing"
	ErrorTypeInference ErrorType = "inference"
	ErrorTypeGenerate  ErrorType = "generate"
	ErrorTypeArgument  ErrorType = "argument"
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInput, Message: message, Err: err}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeParsing, Message: message, Err: err}
}

// NewInferenceError creates a new error related to column type inference
func NewInferenceError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInference, Message: message, Err: err}
}

// NewGenerateError creates a new error related to building the table definition
func NewGenerateError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeGenerate, Message: message, Err: err}
}

// NewArgumentError creates a new error related to command-line arguments
func NewArgumentError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeArgument, Message: message, Err: err}
}

// NewConfigError creates a new error related to the configuration file
func NewConfigError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeConfig, Message: message, Err: err}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeOutput, Message: message, Err: err}
}

// EmptyArrayError reports an array with no elements, whose element type
// therefore cannot be inferred. Path locates the array within the document.
type EmptyArrayError struct {
	Path string
}

func (e *EmptyArrayError) Error() string {
	return fmt.Sprintf("array %q is empty, cannot infer its element type", e.Path)
}

func (e *EmptyArrayError) Unwrap() error {
	return ErrEmptyArray
}

// UnknownTypeError reports a value outside the JSON value model.
type UnknownTypeError struct {
	Path string
	Kind string
}

func (e *UnknownTypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unknown type: %s", e.Kind)
	}
	return fmt.Sprintf("unknown type at %q: %s", e.Path, e.Kind)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// NullValueError reports a null value when no placeholder type is configured.
type NullValueError struct {
	Path string
}

func (e *NullValueError) Error() string {
	return fmt.Sprintf("value at %q is null, which has no column type (configure a null placeholder to allow it)", e.Path)
}

func (e *NullValueError) Unwrap() error {
	return ErrNullValue
}

// NotObjectError reports a top-level value that is not a JSON object.
type NotObjectError struct {
	Kind string
}

func (e *NotObjectError) Error() string {
	return fmt.Sprintf("top-level JSON value must be an object, got %s", e.Kind)
}

func (e *NotObjectError) Unwrap() error {
	return ErrNotObject
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeInference:
			if appErr.Err != nil {
				return fmt.Sprintf("Type inference error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Type inference error: %s", appErr.Message)
		case ErrorTypeGenerate:
			if appErr.Err != nil {
				return fmt.Sprintf("Schema generation error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Schema generation error: %s", appErr.Message)
		case ErrorTypeArgument:
			return fmt.Sprintf("Argument error: %s", appErr.Message)
		case ErrorTypeConfig:
			if appErr.Err != nil {
				return fmt.Sprintf("Configuration error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrMissingArgument) {
		return "Error: No JSON file specified. Run with -h for usage."
	}
	if errors.Is(err, ErrEmptyArray) {
		return fmt.Sprintf("Error: %v. Provide at least one element in every array.", err)
	}
	if errors.Is(err, ErrNullValue) {
		return fmt.Sprintf("Error: %v", err)
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
