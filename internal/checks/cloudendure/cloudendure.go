// Package cloudendure provides the CloudEndure replication check.
//
// The check logs into the CloudEndure API, lists the replicated
// machines in the account's mirror location, and judges each one by its
// replication state and the age of its last consistent sync point.
package cloudendure

import (
	"context"
	"fmt"
	"strconv"
	"time"

	units "github.com/docker/go-units"
	"github.com/opsgrid/checks/internal/check"
	"github.com/opsgrid/checks/internal/nagios"
	"github.com/opsgrid/checks/internal/report"
)

// Name is the check subcommand name.
const Name = "cloudendure"

// Default sync-delay tolerances. Any delay up to the warning threshold
// is forgiven; beyond the critical threshold replication is considered
// broken.
const (
	DefaultWarningSyncDelay  = 15 * time.Second
	DefaultCriticalSyncDelay = 900 * time.Second
)

// Check evaluates CloudEndure replication status.
type Check struct {
	Client            *Client
	WarningSyncDelay  time.Duration
	CriticalSyncDelay time.Duration

	// Now is the reference time for sync-delay math. Defaults to
	// time.Now; fixed in tests.
	Now func() time.Time
}

// GetDescription returns the check description.
func GetDescription() check.Description {
	return check.Description{
		Name:        "cloudendure",
		Description: "Check the sync status of CloudEndure replication",
		Version:     "1.0.0",
		Subcommand:  Name,
		Arguments: check.Arguments{
			Required: map[string]check.ArgumentSpec{
				"username": {
					Type:        "string",
					Description: "User name for the CloudEndure account",
				},
				"password": {
					Type:        "string",
					Description: "Password for the CloudEndure account",
				},
			},
			Optional: map[string]check.ArgumentSpec{
				"hostname": {
					Type:        "string",
					Description: `Hostname of instance to check, or "all"`,
					Default:     "all",
				},
			},
		},
	}
}

// Run executes the check for one host or for "all".
func (c *Check) Run(ctx context.Context, username, password, hostname string) (*check.Verdict, error) {
	if username == "" {
		return nil, &check.UsageError{Msg: "username argument is required"}
	}
	if password == "" {
		return nil, &check.UsageError{Msg: "password argument is required"}
	}
	if hostname == "" {
		hostname = "all"
	}

	if err := c.Client.Login(ctx, username, password); err != nil {
		return nil, err
	}
	defer c.Client.Logout(ctx)

	location, err := c.Client.MirrorLocation(ctx)
	if err != nil {
		return nil, err
	}

	machines, err := c.Client.ListMachines(ctx, location)
	if err != nil {
		return nil, err
	}

	if hostname == "all" {
		return c.checkAll(machines), nil
	}
	return c.checkOne(machines, hostname, username), nil
}

// checkAll folds every machine into one line and one worst-case status.
func (c *Check) checkAll(machines []Machine) *check.Verdict {
	buckets := report.New()
	for _, m := range machines {
		status, _ := c.evaluate(m)
		buckets.Add(status, m.Name)
	}

	overall := buckets.Overall()
	if buckets.Count(nagios.StatusUnknown) > 0 {
		overall = nagios.StatusUnknown
	}

	return &check.Verdict{
		Status:  overall,
		Message: "Status of all: " + buckets.Summary(),
	}
}

// checkOne reports a single named machine. A hostname we cannot find in
// the account is a big problem, not an unknown.
func (c *Check) checkOne(machines []Machine, hostname, username string) *check.Verdict {
	for _, m := range machines {
		if m.Name == hostname {
			status, message := c.evaluate(m)
			return &check.Verdict{Status: status, Message: message}
		}
	}
	return &check.Verdict{
		Status:  nagios.StatusCritical,
		Message: fmt.Sprintf("Could not find the specified hostname %q in account %q !!", hostname, username),
	}
}

// evaluate judges one machine. The replication state string is checked
// first; the timestamp of a non-replicating host is null, so the state
// check has to win.
func (c *Check) evaluate(m Machine) (nagios.Status, string) {
	if m.ReplicationState == "Not Replicated" {
		return nagios.StatusCritical, fmt.Sprintf("%s (%s) is Not Replicated!", m.Name, m.ID)
	}

	lastSync, ok := syncTime(m.LastConsistencyTime)
	if !ok {
		return nagios.StatusUnknown, fmt.Sprintf("%s lastConsistencyTime is not an integer!", m.Name)
	}

	lastSyncStr := time.Unix(lastSync, 0).Format("2006-01-02 15:04:05")
	delay := c.now().Sub(time.Unix(lastSync, 0))

	switch {
	case delay > c.CriticalSyncDelay:
		return nagios.StatusCritical, fmt.Sprintf("%s has not had an update since %s (%s ago)", m.Name, lastSyncStr, units.HumanDuration(delay))
	case delay > c.WarningSyncDelay:
		return nagios.StatusWarning, fmt.Sprintf("%s has not had an update since %s (%s ago)", m.Name, lastSyncStr, units.HumanDuration(delay))
	default:
		return nagios.StatusOK, fmt.Sprintf("%s last update %s", m.Name, lastSyncStr)
	}
}

func (c *Check) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// syncTime extracts lastConsistencyTime as a Unix timestamp. The API
// reports null for hosts that are not replicating, and nothing forbids
// other non-integer shapes.
func syncTime(raw []byte) (int64, bool) {
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
