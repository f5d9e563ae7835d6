// Package schema provides declarative shape checks for decoded JSON values.
//
// A Shape is declared once per payload and used for both inbound arguments
// and parsed model output. Values are expected in the form produced by
// encoding/json when decoding into any: map[string]any, []any, string,
// float64, bool and nil.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalid is matched by every *ValidationError.
var ErrInvalid = errors.New("schema validation failed")

// Kind classifies a validation failure.
type Kind string

const (
	KindType     Kind = "type"
	KindRequired Kind = "required"
	KindLength   Kind = "length"
	KindCount    Kind = "count"
)

// ValidationError reports the first violation found and where it occurred.
type ValidationError struct {
	Kind   Kind
	Field  string // path such as "prompts[2].label"; empty for the root
	Detail string
}

func (e *ValidationError) Error() string {
	field := e.Field
	if field == "" {
		field = "value"
	}
	return fmt.Sprintf("%s: %s: %s", string(e.Kind), field, e.Detail)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Shape is a node in a declarative schema.
type Shape interface {
	check(path string, v any) error
}

// Validate checks v against s.
func Validate(s Shape, v any) error {
	return s.check("", v)
}

// ValidateStruct checks a Go value by round-tripping it through JSON first,
// so struct tags decide field names.
func ValidateStruct(s Shape, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding value for validation: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("decoding value for validation: %w", err)
	}
	return Validate(s, generic)
}

// StringShape matches a JSON string.
type StringShape struct {
	nonBlank bool
	maxLen   int
}

// String returns a shape accepting any string.
func String() *StringShape { return &StringShape{} }

// NonBlank rejects strings that are empty after trimming whitespace.
func (s *StringShape) NonBlank() *StringShape {
	c := *s
	c.nonBlank = true
	return &c
}

// MaxLen limits the string to n runes.
func (s *StringShape) MaxLen(n int) *StringShape {
	c := *s
	c.maxLen = n
	return &c
}

func (s *StringShape) check(path string, v any) error {
	str, ok := v.(string)
	if !ok {
		return &ValidationError{Kind: KindType, Field: path, Detail: "expected string, got " + typeName(v)}
	}
	if s.nonBlank && strings.TrimSpace(str) == "" {
		return &ValidationError{Kind: KindLength, Field: path, Detail: "must not be blank"}
	}
	if s.maxLen > 0 && utf8.RuneCountInString(str) > s.maxLen {
		return &ValidationError{Kind: KindLength, Field: path, Detail: fmt.Sprintf("longer than %d characters", s.maxLen)}
	}
	return nil
}

// ArrayShape matches a JSON array whose elements all match Elem.
type ArrayShape struct {
	elem Shape
	min  int
	max  int // 0 means unbounded
}

// Array returns a shape accepting arrays of elem.
func Array(elem Shape) *ArrayShape { return &ArrayShape{elem: elem} }

// Min requires at least n elements.
func (a *ArrayShape) Min(n int) *ArrayShape {
	c := *a
	c.min = n
	return &c
}

// Max allows at most n elements.
func (a *ArrayShape) Max(n int) *ArrayShape {
	c := *a
	c.max = n
	return &c
}

func (a *ArrayShape) check(path string, v any) error {
	items, ok := v.([]any)
	if !ok {
		return &ValidationError{Kind: KindType, Field: path, Detail: "expected array, got " + typeName(v)}
	}
	if len(items) < a.min {
		return &ValidationError{Kind: KindCount, Field: path, Detail: fmt.Sprintf("expected at least %d items, got %d", a.min, len(items))}
	}
	if a.max > 0 && len(items) > a.max {
		return &ValidationError{Kind: KindCount, Field: path, Detail: fmt.Sprintf("expected at most %d items, got %d", a.max, len(items))}
	}
	for i, item := range items {
		if err := a.elem.check(fmt.Sprintf("%s[%d]", path, i), item); err != nil {
			return err
		}
	}
	return nil
}

// Field describes one key of an object shape.
type Field struct {
	Name     string
	Shape    Shape
	Optional bool
}

// Required declares a key that must be present and non-null.
func Required(name string, s Shape) Field { return Field{Name: name, Shape: s} }

// Optional declares a key that may be absent or null.
func Optional(name string, s Shape) Field { return Field{Name: name, Shape: s, Optional: true} }

// ObjectShape matches a JSON object. Unknown keys are allowed.
type ObjectShape struct {
	fields []Field
}

// Object returns a shape with the given fields, checked in order.
func Object(fields ...Field) *ObjectShape { return &ObjectShape{fields: fields} }

func (o *ObjectShape) check(path string, v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return &ValidationError{Kind: KindType, Field: path, Detail: "expected object, got " + typeName(v)}
	}
	for _, f := range o.fields {
		fieldPath := f.Name
		if path != "" {
			fieldPath = path + "." + f.Name
		}
		val, present := obj[f.Name]
		if !present || val == nil {
			if f.Optional {
				continue
			}
			return &ValidationError{Kind: KindRequired, Field: fieldPath, Detail: "is required"}
		}
		if err := f.Shape.check(fieldPath, val); err != nil {
			return err
		}
	}
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
