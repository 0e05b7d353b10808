package generator

import (
	"strings"

	"github.com/mcncl/hiveschema/internal/analyzer"
	"github.com/mcncl/hiveschema/internal/config"
	"github.com/mcncl/hiveschema/internal/errors"
	"github.com/mcncl/hiveschema/internal/models"
)

// SerDeClause is appended verbatim to every table definition.
const SerDeClause = "ROW FORMAT SERDE 'org.openx.data.jsonserde.JsonSerDe';"

// Generator builds CREATE TABLE definitions from parsed JSON objects
type Generator struct {
	analyzer *analyzer.Analyzer
}

// NewGenerator creates a new Generator using a for column types
func NewGenerator(a *analyzer.Analyzer) *Generator {
	if a == nil {
		a = analyzer.NewAnalyzer()
	}
	return &Generator{analyzer: a}
}

// Columns infers one column per top-level field of root, in sorted order.
func (g *Generator) Columns(root models.Value) ([]models.Field, error) {
	if root.Kind != models.Object {
		return nil, errors.NewGenerateError("cannot build a table from this document", &errors.NotObjectError{Kind: root.Kind.String()})
	}
	columns, err := g.analyzer.Fields(root, "")
	if err != nil {
		return nil, errors.NewInferenceError("failed to infer column types", err)
	}
	return columns, nil
}

// GenerateTable renders the table definition for root. An empty tableName
// falls back to config.DefaultTableName.
func (g *Generator) GenerateTable(root models.Value, tableName string) (string, error) {
	columns, err := g.Columns(root)
	if err != nil {
		return "", err
	}
	return Render(tableName, columns), nil
}

// Render assembles the definition text for already inferred columns.
func Render(tableName string, columns []models.Field) string {
	if tableName == "" {
		tableName = config.DefaultTableName
	}

	lines := make([]string, len(columns))
	for i, col := range columns {
		lines[i] = "  " + col.Name + " " + col.Type.String()
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE " + tableName + " (\n")
	if len(lines) > 0 {
		b.WriteString(strings.Join(lines, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString(")\n")
	b.WriteString(SerDeClause)
	return b.String()
}
