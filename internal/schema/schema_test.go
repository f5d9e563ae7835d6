package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suggestionsShape = Object(
	Required("prompts", Array(Object(
		Required("label", String().NonBlank()),
		Required("question", String().NonBlank()),
	)).Min(3).Max(6)),
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestValidate_AcceptsConformingValue(t *testing.T) {
	v := decode(t, `{"prompts":[
		{"label":"a","question":"q1"},
		{"label":"b","question":"q2"},
		{"label":"c","question":"q3","extra":true}
	]}`)
	assert.NoError(t, Validate(suggestionsShape, v))
}

func TestValidate_ReportsFieldPath(t *testing.T) {
	v := decode(t, `{"prompts":[
		{"label":"a","question":"q1"},
		{"label":"b","question":"q2"},
		{"label":3,"question":"q3"}
	]}`)

	err := Validate(suggestionsShape, v)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, KindType, vErr.Kind)
	assert.Equal(t, "prompts[2].label", vErr.Field)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		raw   string
		kind  Kind
		field string
	}{
		{"missing key", suggestionsShape, `{}`, KindRequired, "prompts"},
		{"null key", suggestionsShape, `{"prompts":null}`, KindRequired, "prompts"},
		{"too few", suggestionsShape, `{"prompts":[]}`, KindCount, "prompts"},
		{"not object", suggestionsShape, `[1,2]`, KindType, ""},
		{"blank string", String().NonBlank(), `"   "`, KindLength, ""},
		{"too long", String().MaxLen(3), `"abcd"`, KindLength, ""},
		{"too many", Array(String()).Max(1), `["a","b"]`, KindCount, ""},
		{"element type", Array(String()), `["a",2]`, KindType, "[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.shape, decode(t, tt.raw))
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.kind, vErr.Kind)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestValidate_OptionalAllowsAbsentAndNull(t *testing.T) {
	shape := Object(
		Required("name", String().NonBlank()),
		Optional("link", String()),
	)
	assert.NoError(t, Validate(shape, decode(t, `{"name":"x"}`)))
	assert.NoError(t, Validate(shape, decode(t, `{"name":"x","link":null}`)))

	err := Validate(shape, decode(t, `{"name":"x","link":5}`))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "link", vErr.Field)
}

func TestMaxLen_CountsRunes(t *testing.T) {
	assert.NoError(t, Validate(String().MaxLen(3), "äöü"))
}

func TestBuilders_DoNotMutateReceiver(t *testing.T) {
	base := String()
	_ = base.NonBlank()
	assert.NoError(t, Validate(base, ""))
}

func TestValidateStruct_UsesJSONTags(t *testing.T) {
	type input struct {
		ProjectName  string   `json:"projectName"`
		Technologies []string `json:"technologies"`
	}
	shape := Object(
		Required("projectName", String().NonBlank()),
		Required("technologies", Array(String().NonBlank()).Min(1)),
	)

	assert.NoError(t, ValidateStruct(shape, input{ProjectName: "p", Technologies: []string{"Go"}}))

	err := ValidateStruct(shape, input{ProjectName: "p"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "technologies", vErr.Field)
	assert.Equal(t, KindRequired, vErr.Kind)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Kind: KindCount, Field: "prompts", Detail: "expected at least 3 items, got 1"}
	assert.Equal(t, "count: prompts: expected at least 3 items, got 1", err.Error())
	assert.Equal(t, "type: value: expected string, got null", (&ValidationError{Kind: KindType, Detail: "expected string, got null"}).Error())
}
