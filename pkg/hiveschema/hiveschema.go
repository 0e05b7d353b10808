// Package hiveschema generates Hive CREATE TABLE definitions for the
// openx JSON SerDe from a sample JSON document.
//
// Columns and struct fields are emitted in ascending name order at every
// nesting level. Numbers whose literal text contains a decimal point become
// double, all other numbers int. Arrays are typed from their first element
// only, so an empty array is an error. JSON null is an error unless a
// placeholder type is configured with WithNullType.
package hiveschema

import (
	"io"
	"strings"

	"github.com/mcncl/hiveschema/internal/analyzer"
	"github.com/mcncl/hiveschema/internal/config"
	"github.com/mcncl/hiveschema/internal/errors"
	"github.com/mcncl/hiveschema/internal/generator"
	"github.com/mcncl/hiveschema/internal/parser"
)

// DefaultTableName is used when no table name is given.
const DefaultTableName = config.DefaultTableName

// SerDeClause is the storage format clause ending every definition.
const SerDeClause = generator.SerDeClause

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidJSON  = errors.ErrInvalidJSON
	ErrMultipleJSON = errors.ErrMultipleJSON
	ErrEmptyInput   = errors.ErrEmptyInput
	ErrEmptyArray   = errors.ErrEmptyArray
	ErrUnknownType  = errors.ErrUnknownType
	ErrNullValue    = errors.ErrNullValue
	ErrNotObject    = errors.ErrNotObject
)

// Typed errors carrying the location of the offending value, for use with errors.As.
type (
	EmptyArrayError  = errors.EmptyArrayError
	UnknownTypeError = errors.UnknownTypeError
	NullValueError   = errors.NullValueError
	NotObjectError   = errors.NotObjectError
)

// Option configures a Converter.
type Option func(*config.Config)

// WithNullType types JSON null values as typeName instead of failing.
// An empty or blank typeName keeps nulls an error.
func WithNullType(typeName string) Option {
	return func(c *config.Config) {
		if strings.TrimSpace(typeName) == "" {
			c.Nulls.Mode = config.NullModeFail
			return
		}
		c.Nulls.Mode = config.NullModePlaceholder
		c.Nulls.Placeholder = typeName
	}
}

// Converter turns JSON documents into table definitions. The table name and
// options are fixed at construction; a Converter is safe for concurrent use.
type Converter struct {
	tableName string
	generator *generator.Generator
}

// New creates a Converter for tableName. An empty name means DefaultTableName.
func New(tableName string, opts ...Option) *Converter {
	cfg := config.NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Validate() != nil {
		cfg.Nulls.Mode = config.NullModeFail
	}
	if tableName == "" {
		tableName = DefaultTableName
	}
	return &Converter{
		tableName: tableName,
		generator: generator.NewGenerator(analyzer.NewAnalyzerWithConfig(cfg)),
	}
}

// TableName returns the name used in generated definitions.
func (c *Converter) TableName() string {
	return c.tableName
}

// CreateHiveSchema returns the table definition for the JSON object in json.
func (c *Converter) CreateHiveSchema(json string) (string, error) {
	root, err := parser.ParseString(json)
	if err != nil {
		return "", err
	}
	return c.generator.GenerateTable(root, c.tableName)
}

// CreateHiveSchemaFromReader reads one JSON document from r and returns its table definition.
func (c *Converter) CreateHiveSchemaFromReader(r io.Reader) (string, error) {
	root, err := parser.Parse(r)
	if err != nil {
		return "", err
	}
	return c.generator.GenerateTable(root, c.tableName)
}

// Generate is shorthand for New(tableName).CreateHiveSchema(json).
func Generate(json, tableName string) (string, error) {
	return New(tableName).CreateHiveSchema(json)
}
