package jsonstatus

import (
	"encoding/json"
	"strings"

	"github.com/opsgrid/checks/internal/check"
)

// Indicator is one label/value pair extracted from the health object.
type Indicator struct {
	Label    string
	RawValue string
}

// ParseIndicators decodes a flat JSON object into indicators, preserving
// the order keys appear in the body. Values must be scalars; numbers and
// booleans are stringified as written. Strict JSON forbids duplicate
// keys but lenient emitters produce them anyway; the last occurrence
// wins, keeping the position of the first.
func ParseIndicators(body string) ([]Indicator, error) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, check.Parsef("body is not well-formed JSON: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, check.Parsef("body is not a JSON object")
	}

	var indicators []Indicator
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, check.Parsef("body is not well-formed JSON: %v", err)
		}
		key := keyTok.(string)
		if key == "" {
			return nil, check.Parsef("object contains an empty attribute name")
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, check.Parsef("body is not well-formed JSON: %v", err)
		}

		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			if v {
				value = "true"
			} else {
				value = "false"
			}
		case nil:
			value = "null"
		default:
			// json.Delim: nested object or array.
			return nil, check.Parsef("attribute %q is not a scalar value", key)
		}

		if i, seen := index[key]; seen {
			indicators[i].RawValue = value
			continue
		}
		index[key] = len(indicators)
		indicators = append(indicators, Indicator{Label: key, RawValue: value})
	}

	// Consume the closing brace and make sure nothing trails it.
	if _, err := dec.Token(); err != nil {
		return nil, check.Parsef("body is not well-formed JSON: %v", err)
	}
	if dec.More() {
		return nil, check.Parsef("unexpected data after JSON object")
	}

	return indicators, nil
}
