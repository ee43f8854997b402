// Package nagios defines the four-state status model shared by all checks.
package nagios

// Status is a Nagios plugin status. The numeric value doubles as the
// process exit code, which is a fixed contract with the monitoring host.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the upper-case status name used in summary lines.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
// 0 = OK, 1 = WARNING, 2 = CRITICAL, 3 = UNKNOWN.
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return StatusUnknown.ExitCode()
	}
	return int(s)
}

// Worst returns the more severe of two statuses. UNKNOWN outranks
// everything: a host we could not analyze is an operational failure.
func Worst(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}
