package analyzer

import (
	"sort"
	"strings"

	"github.com/mcncl/hiveschema/internal/config"
	"github.com/mcncl/hiveschema/internal/errors"
	"github.com/mcncl/hiveschema/internal/models"
)

// Analyzer infers column types from parsed JSON values.
// It holds no per-call state, so one instance can serve concurrent conversions.
type Analyzer struct {
	// nullType is emitted for JSON null; empty means null is an error.
	nullType string
}

// NewAnalyzer creates an Analyzer that rejects null values.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// NewAnalyzerWithConfig creates an Analyzer using the null handling in cfg.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	return &Analyzer{nullType: cfg.NullType()}
}

// SortedKeys returns the field names of an object in ascending byte order,
// which for UTF-8 strings is code point order.
func SortedKeys(fields map[string]models.Value) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Infer returns the type of v. path names v within the document and is only
// used to locate errors.
func (a *Analyzer) Infer(v models.Value, path string) (models.TypeInfo, error) {
	switch v.Kind {
	case models.Null, models.Bool, models.Number, models.String:
		return a.ScalarType(v, path)
	case models.Object:
		return a.inferObject(v, path)
	case models.Array:
		return a.inferArray(v, path)
	default:
		return models.TypeInfo{}, &errors.UnknownTypeError{Path: path, Kind: v.Kind.String()}
	}
}

// ScalarType maps a leaf value to its primitive type.
//
// Numbers are classified by their literal text: anything containing a decimal
// point is a double, everything else an int. An exponent without a decimal
// point such as 1e-3 is therefore an int.
func (a *Analyzer) ScalarType(v models.Value, path string) (models.TypeInfo, error) {
	switch v.Kind {
	case models.String:
		return models.PrimitiveOf(models.TypeString), nil
	case models.Bool:
		return models.PrimitiveOf(models.TypeBoolean), nil
	case models.Number:
		if strings.Contains(v.Text, ".") {
			return models.PrimitiveOf(models.TypeDouble), nil
		}
		return models.PrimitiveOf(models.TypeInt), nil
	case models.Null:
		if a.nullType == "" {
			return models.TypeInfo{}, &errors.NullValueError{Path: path}
		}
		return models.PrimitiveOf(a.nullType), nil
	default:
		return models.TypeInfo{}, &errors.UnknownTypeError{Path: path, Kind: v.Kind.String()}
	}
}

// Fields infers one field per key of an object, in sorted key order.
func (a *Analyzer) Fields(obj models.Value, path string) ([]models.Field, error) {
	keys := SortedKeys(obj.Fields)
	fields := make([]models.Field, 0, len(keys))
	for _, key := range keys {
		t, err := a.Infer(obj.Fields[key], joinPath(path, key))
		if err != nil {
			return nil, err
		}
		fields = append(fields, models.Field{Name: key, Type: t})
	}
	return fields, nil
}

func (a *Analyzer) inferObject(obj models.Value, path string) (models.TypeInfo, error) {
	fields, err := a.Fields(obj, path)
	if err != nil {
		return models.TypeInfo{}, err
	}
	return models.StructOf(fields...), nil
}

// inferArray types an array from its first element alone. Later elements are
// never inspected.
func (a *Analyzer) inferArray(arr models.Value, path string) (models.TypeInfo, error) {
	if len(arr.Items) == 0 {
		return models.TypeInfo{}, &errors.EmptyArrayError{Path: path}
	}
	elem, err := a.Infer(arr.Items[0], path+"[0]")
	if err != nil {
		return models.TypeInfo{}, err
	}
	return models.ArrayOf(elem), nil
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
