package intelligence

import "github.com/alexanderramin/devterm/internal/schema"

var portfolioContextShape = schema.Object(
	schema.Required("aboutMe", schema.String()),
	schema.Required("skills", schema.Array(schema.String())),
	schema.Required("projects", schema.Array(schema.Object(
		schema.Required("name", schema.String()),
		schema.Required("title", schema.String()),
		schema.Required("technologies", schema.String()),
		schema.Required("description", schema.String()),
		schema.Optional("link", schema.String()),
	))),
	schema.Required("experience", schema.Array(schema.Object(
		schema.Required("company", schema.String()),
		schema.Required("role", schema.String()),
		schema.Required("period", schema.String()),
		schema.Required("description", schema.String()),
	))),
	schema.Required("contact", schema.Array(schema.Object(
		schema.Required("name", schema.String()),
		schema.Required("value", schema.String()),
		schema.Required("link", schema.String()),
	))),
)

var askInputShape = schema.Object(
	schema.Required("question", schema.String().NonBlank().MaxLen(500)),
	schema.Required("portfolio", portfolioContextShape),
)

var askOutputShape = schema.Object(
	schema.Required("answer", schema.String().NonBlank()),
)

var projectDescriptionInputShape = schema.Object(
	schema.Required("projectName", schema.String().NonBlank()),
	schema.Required("technologies", schema.String().NonBlank()),
	schema.Required("briefOverview", schema.String().NonBlank()),
)

var projectDescriptionOutputShape = schema.Object(
	schema.Required("projectDescription", schema.String().NonBlank()),
)

var skillsOutputShape = schema.Array(schema.String().NonBlank()).Min(1)

// Labels and questions may be blank here; sanitizing decides what survives.
var promptSuggestionsOutputShape = schema.Object(
	schema.Required("prompts", schema.Array(schema.Object(
		schema.Required("label", schema.String()),
		schema.Required("question", schema.String()),
	)).Min(3).Max(6)),
)
