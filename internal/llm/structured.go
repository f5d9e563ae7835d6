package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/devterm/internal/schema"
)

var fencedBlock = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)```")

// ExtractPayload returns the part of raw model output most likely to be a
// JSON document. It never fails; malformed input is returned trimmed so the
// decode step reports it.
func ExtractPayload(raw string) string {
	candidate := raw
	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}
	candidate = strings.TrimSpace(candidate)

	if json.Valid([]byte(candidate)) {
		return candidate
	}

	start := strings.IndexByte(candidate, '{')
	end := strings.LastIndexByte(candidate, '}')
	if start >= 0 && end > start {
		return candidate[start : end+1]
	}
	return candidate
}

// DecodeJSON extracts the payload from raw, checks it against shape, and
// only then decodes it into T. Both failures wrap ErrInvalidOutput; shape
// failures also carry the *schema.ValidationError.
func DecodeJSON[T any](raw string, shape schema.Shape) (T, error) {
	var zero T
	payload := ExtractPayload(raw)

	var generic any
	if err := json.Unmarshal([]byte(payload), &generic); err != nil {
		return zero, fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}

	if shape != nil {
		if err := schema.Validate(shape, generic); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrInvalidOutput, err)
		}
	}

	var result T
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return result, nil
}
