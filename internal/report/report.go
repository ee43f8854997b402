// Package report groups classified indicator labels and renders the
// one-line summary every check prints.
package report

import (
	"fmt"
	"strings"

	"github.com/opsgrid/checks/internal/nagios"
)

// Buckets groups indicator labels by their classified status. Labels keep
// the order they were added within each group; the order carries no
// ranking meaning.
type Buckets struct {
	labels [nagios.StatusUnknown + 1][]string
}

// New returns an empty bucket set.
func New() *Buckets {
	return &Buckets{}
}

// Add appends a label to the group for the given status.
func (b *Buckets) Add(status nagios.Status, label string) {
	if status < nagios.StatusOK || status > nagios.StatusUnknown {
		status = nagios.StatusUnknown
	}
	b.labels[status] = append(b.labels[status], label)
}

// Labels returns the labels recorded for the given status.
func (b *Buckets) Labels(status nagios.Status) []string {
	return b.labels[status]
}

// Count returns the number of labels recorded for the given status.
func (b *Buckets) Count(status nagios.Status) int {
	return len(b.labels[status])
}

// Overall reduces the buckets to one status: the most severe of
// OK/WARNING/CRITICAL with at least one label. The UNKNOWN group is
// reported but does not count toward severity here; callers that want
// UNKNOWN to elevate the run fold it in themselves. No indicators at
// all means there was nothing to judge, which is UNKNOWN.
func (b *Buckets) Overall() nagios.Status {
	overall := nagios.StatusUnknown
	for _, s := range []nagios.Status{nagios.StatusOK, nagios.StatusWarning, nagios.StatusCritical} {
		if len(b.labels[s]) > 0 {
			overall = s
		}
	}
	return overall
}

// Summary renders the buckets as one line. Groups appear in fixed order
// OK, WARNING, CRITICAL as "<LEVEL>: <comma-separated labels>", joined
// by " / ". Empty groups are omitted, except UNKNOWN which is always
// rendered last as a bare count.
func (b *Buckets) Summary() string {
	var parts []string
	for _, s := range []nagios.Status{nagios.StatusOK, nagios.StatusWarning, nagios.StatusCritical} {
		if len(b.labels[s]) > 0 {
			parts = append(parts, s.String()+": "+strings.Join(b.labels[s], ", "))
		}
	}
	parts = append(parts, fmt.Sprintf("UNKNOWN: %d", len(b.labels[nagios.StatusUnknown])))
	return strings.Join(parts, " / ")
}
