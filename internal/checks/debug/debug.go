// Package debug provides the debug check, used to exercise the exit-code
// contract from a monitoring host without touching a real endpoint.
package debug

import (
	"github.com/opsgrid/checks/internal/check"
	"github.com/opsgrid/checks/internal/nagios"
)

// Name is the check subcommand name.
const Name = "debug"

// GetDescription returns the check description.
func GetDescription() check.Description {
	return check.Description{
		Name:        "debug",
		Description: "Debug check for testing status handling",
		Version:     "1.0.0",
		Subcommand:  Name,
		Arguments: check.Arguments{
			Optional: map[string]check.ArgumentSpec{
				"mode": {
					Type:        "string",
					Description: "Status to report",
					Default:     "ok",
					Enum:        []string{"ok", "warning", "critical", "unknown"},
				},
				"message": {
					Type:        "string",
					Description: "Custom message to return",
				},
			},
		},
	}
}

// Run reports the requested status with either the custom or a canned
// message. An unrecognized mode is UNKNOWN.
func Run(mode, message string) *check.Verdict {
	var status nagios.Status
	var fallback string

	switch mode {
	case "ok":
		status = nagios.StatusOK
		fallback = "Debug check completed successfully"
	case "warning":
		status = nagios.StatusWarning
		fallback = "Debug check simulated warning"
	case "critical":
		status = nagios.StatusCritical
		fallback = "Debug check simulated critical failure"
	case "unknown":
		status = nagios.StatusUnknown
		fallback = "Debug check simulated unknown"
	default:
		return &check.Verdict{Status: nagios.StatusUnknown, Message: "Invalid mode: " + mode}
	}

	if message == "" {
		message = fallback
	}

	return &check.Verdict{Status: status, Message: message}
}
