package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/hiveschema/internal/errors"
	"github.com/mcncl/hiveschema/internal/models"
)

// Parse decodes exactly one JSON document from reader.
// Numbers keep their literal text so that "3.0" and "3" stay distinguishable.
func Parse(reader io.Reader) (models.Value, error) {
	counter := &countingReader{r: reader}
	decoder := json.NewDecoder(counter)
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if stderrors.Is(err, io.EOF) {
			if counter.n == 0 {
				return models.Value{}, errors.NewInputError("input is empty", errors.ErrEmptyInput)
			}
			return models.Value{}, errors.NewParsingError("input contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.Value{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d: %v", syntaxError.Offset, syntaxError),
				errors.ErrInvalidJSON,
			)
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return models.Value{}, errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
		}
		return models.Value{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// Only whitespace may follow the document.
	var trailing any
	if err := decoder.Decode(&trailing); err == nil {
		return models.Value{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return models.Value{}, errors.NewParsingError("invalid trailing data after first JSON value", errors.ErrInvalidJSON)
	}

	return toValue(raw, "")
}

// toValue converts the decoder's generic output into the tagged value model.
func toValue(raw any, path string) (models.Value, error) {
	switch v := raw.(type) {
	case nil:
		return models.NullValue(), nil
	case bool:
		return models.BoolValue(v), nil
	case json.Number:
		return models.NumberValue(v.String()), nil
	case string:
		return models.StringValue(v), nil
	case []any:
		items := make([]models.Value, len(v))
		for i, item := range v {
			converted, err := toValue(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return models.Value{}, err
			}
			items[i] = converted
		}
		return models.ArrayValue(items...), nil
	case map[string]any:
		fields := make(map[string]models.Value, len(v))
		for key, item := range v {
			converted, err := toValue(item, joinPath(path, key))
			if err != nil {
				return models.Value{}, err
			}
			fields[key] = converted
		}
		return models.ObjectValue(fields), nil
	default:
		return models.Value{}, &errors.UnknownTypeError{Path: path, Kind: fmt.Sprintf("%T", v)}
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// countingReader records how many bytes were read so that an empty input can
// be told apart from a whitespace-only one.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if jsonString == "" {
		return models.Value{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewParsingError("input string contains only whitespace", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrEmptyInput,
		)
	}

	return ParseString(string(data))
}
