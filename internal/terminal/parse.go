package terminal

import "strings"

// Line is one tokenised input line.
type Line struct {
	// Command is the lowercased first token.
	Command string
	// Args are the remaining tokens, lowercased.
	Args []string
	// RawArgs is everything after the command token with its case kept.
	RawArgs string
}

// ParseLine splits input on whitespace. A blank line yields a zero Line.
func ParseLine(input string) Line {
	input = strings.TrimSpace(input)
	if input == "" {
		return Line{}
	}

	cmd := strings.Fields(input)[0]
	rest := strings.TrimSpace(input[len(cmd):])

	var args []string
	for _, f := range strings.Fields(rest) {
		args = append(args, strings.ToLower(f))
	}
	return Line{Command: strings.ToLower(cmd), Args: args, RawArgs: rest}
}

// quotedQuestion returns the text between a leading and trailing double
// quote. The text must be non-blank.
func quotedQuestion(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 2 || !strings.HasPrefix(raw, `"`) || !strings.HasSuffix(raw, `"`) {
		return "", false
	}
	q := strings.TrimSpace(raw[1 : len(raw)-1])
	if q == "" {
		return "", false
	}
	return q, true
}
