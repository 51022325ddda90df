package llm

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// ExtractJSON pulls a JSON value out of free-form model output. It strips
// markdown code fences, then takes the outermost {...} span, then the
// outermost [...] span, then the trimmed text itself. It never fails.
func ExtractJSON(text string) (extracted string) {
	if text == "" {
		return extracted
	}

	cleaned := stripCodeFences(text)

	// Outermost object span
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		extracted = cleaned[start : end+1]
		return extracted
	}

	// Outermost array span
	start = strings.Index(cleaned, "[")
	end = strings.LastIndex(cleaned, "]")
	if start != -1 && end > start {
		extracted = cleaned[start : end+1]
		return extracted
	}

	extracted = strings.TrimSpace(cleaned)
	return extracted
}

// Normalize extracts a JSON value from raw model output and decodes it into
// out. It reports whether out was populated; on any parse or shape failure,
// or an empty value, the caller keeps its fallback. It never panics and
// never returns an error.
func Normalize(raw string, out interface{}) (ok bool) {
	extracted := ExtractJSON(raw)
	if extracted == "" {
		return ok
	}

	if !gjson.Valid(extracted) {
		logrus.WithField("text", truncateForLog(extracted)).Debug("model output is not valid JSON")
		return ok
	}

	// Empty values fall through to the caller's fallback, matching the
	// treatment of unparseable text.
	if isEmptyValue(gjson.Parse(extracted)) {
		return ok
	}

	err := json.Unmarshal([]byte(extracted), out)
	if err != nil {
		logrus.WithField("reason", err.Error()).Debug("model output does not match expected shape")
		return ok
	}

	ok = true
	return ok
}

// stripCodeFences removes markdown code fence markers from each line.
func stripCodeFences(text string) (cleaned string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		stripped := line
		if strings.HasPrefix(stripped, "```json") {
			stripped = strings.TrimLeft(stripped[len("```json"):], " \t")
		} else if strings.HasPrefix(stripped, "```") {
			stripped = strings.TrimLeft(stripped[len("```"):], " \t")
		}
		if trailing := strings.TrimRight(stripped, " \t"); strings.HasSuffix(trailing, "```") {
			stripped = trailing[:len(trailing)-len("```")]
		}
		lines[i] = stripped
	}

	cleaned = strings.Join(lines, "\n")
	return cleaned
}

// isEmptyValue reports whether a parsed JSON value carries no content:
// null, false, zero, empty string, empty object, or empty array.
func isEmptyValue(value gjson.Result) (empty bool) {
	switch value.Type {
	case gjson.Null:
		empty = true
	case gjson.False:
		empty = true
	case gjson.Number:
		empty = value.Num == 0
	case gjson.String:
		empty = value.Str == ""
	case gjson.True:
		empty = false
	case gjson.JSON:
		if value.IsObject() {
			empty = len(value.Map()) == 0
		} else if value.IsArray() {
			empty = len(value.Array()) == 0
		}
	}
	return empty
}

// truncateForLog bounds diagnostic output.
func truncateForLog(text string) (truncated string) {
	const limit = 200
	truncated = text
	if len(truncated) > limit {
		truncated = truncated[:limit] + "..."
	}
	return truncated
}
