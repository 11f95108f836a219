package service

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSONObject pulls the first top-level JSON object out of raw model
// output. Models wrap payloads in markdown fences or prose, so everything
// before the first '{' and after the last '}' is discarded. If the remaining
// text still fails to parse (typically a truncated response), the text is cut
// back to the last position where braces balance and parsed once more.
func ExtractJSONObject(raw string, v any) error {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return errNoJSONObject
	}
	candidate := raw[start : end+1]

	if err := json.Unmarshal([]byte(candidate), v); err == nil {
		return nil
	}

	repaired, ok := truncateToBalanced(candidate)
	if !ok {
		return errNoJSONObject
	}
	return json.Unmarshal([]byte(repaired), v)
}

// truncateToBalanced cuts s back to the last '}' at which all opened braces
// are closed, ignoring braces inside string literals.
func truncateToBalanced(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	lastBalanced := -1

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					lastBalanced = i
				}
			}
		}
	}

	if lastBalanced < 0 {
		return "", false
	}
	return s[:lastBalanced+1], true
}
