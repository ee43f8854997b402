// Package check defines the contract shared by all checks.
package check

import "github.com/opsgrid/checks/internal/nagios"

// Verdict is the terminal outcome of one check run: the overall status
// and the single summary line printed to stdout.
type Verdict struct {
	Status  nagios.Status
	Message string
}

// Description is the self-description format for checks.
type Description struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Version     string    `json:"version"`
	Subcommand  string    `json:"subcommand,omitempty"`
	Arguments   Arguments `json:"arguments"`
}

// Arguments describes required and optional check arguments.
type Arguments struct {
	Required map[string]ArgumentSpec `json:"required,omitempty"`
	Optional map[string]ArgumentSpec `json:"optional,omitempty"`
}

// ArgumentSpec describes a single argument.
type ArgumentSpec struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Default     any      `json:"default,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}
