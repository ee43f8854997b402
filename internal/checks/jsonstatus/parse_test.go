package jsonstatus

import (
	"testing"
)

func TestParseIndicators(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []Indicator
	}{
		{
			name: "preserves appearance order",
			body: `{"zebra": "PASS", "apple": "FAIL", "mango": "WARN"}`,
			expected: []Indicator{
				{"zebra", "PASS"},
				{"apple", "FAIL"},
				{"mango", "WARN"},
			},
		},
		{
			name:     "empty object",
			body:     `{}`,
			expected: nil,
		},
		{
			name: "scalars are stringified",
			body: `{"count": 3, "ratio": 0.5, "up": true, "down": false, "missing": null}`,
			expected: []Indicator{
				{"count", "3"},
				{"ratio", "0.5"},
				{"up", "true"},
				{"down", "false"},
				{"missing", "null"},
			},
		},
		{
			name: "duplicate keys last occurrence wins",
			body: `{"svc": "PASS", "other": "PASS", "svc": "FAIL"}`,
			expected: []Indicator{
				{"svc", "FAIL"},
				{"other", "PASS"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIndicators(tt.body)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d indicators, expected %d: %v", len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("indicator %d = %+v, expected %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseIndicatorsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "hello world"},
		{"html body", "<html><body>busy</body></html>"},
		{"top-level array", `["PASS", "FAIL"]`},
		{"top-level string", `"PASS"`},
		{"nested object", `{"svc": {"state": "PASS"}}`},
		{"nested array", `{"svc": ["PASS"]}`},
		{"truncated object", `{"svc": "PASS"`},
		{"empty body", ""},
		{"empty attribute name", `{"": "PASS"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseIndicators(tt.body); err == nil {
				t.Errorf("expected error for body %q", tt.body)
			}
		})
	}
}
