// Package jsonstatus provides the JSON health-object check.
//
// The check fetches a URL that returns a flat JSON object of health
// indicators, compares each value against the caller's OK and Warning
// marker strings, and reduces the result to one Nagios status.
package jsonstatus

import (
	"context"
	"strings"

	"github.com/opsgrid/checks/internal/check"
	"github.com/opsgrid/checks/internal/nagios"
	"github.com/opsgrid/checks/internal/report"
)

// Name is the check subcommand name.
const Name = "json-url"

// GetDescription returns the check description.
func GetDescription() check.Description {
	return check.Description{
		Name:        "json-url",
		Description: "Check a URL returning a flat JSON object of health indicators",
		Version:     "1.0.0",
		Subcommand:  Name,
		Arguments: check.Arguments{
			Required: map[string]check.ArgumentSpec{
				"url": {
					Type:        "string",
					Description: "URL to be checked",
				},
				"ok_string": {
					Type:        "string",
					Description: "Text string which indicates OK",
				},
			},
			Optional: map[string]check.ArgumentSpec{
				"warn_string": {
					Type:        "string",
					Description: "Text string which indicates Warning",
				},
			},
		},
	}
}

// Classify maps one indicator value to a status. Matching is
// case-sensitive substring containment, evaluated in fixed priority
// order: the OK marker wins even when the value contains both markers.
// An empty warn marker means step two is skipped entirely, so every
// non-OK indicator is CRITICAL.
func Classify(rawValue, okMarker, warnMarker string) nagios.Status {
	if strings.Contains(rawValue, okMarker) {
		return nagios.StatusOK
	}
	if warnMarker != "" && strings.Contains(rawValue, warnMarker) {
		return nagios.StatusWarning
	}
	return nagios.StatusCritical
}

// Run executes the check: fetch, parse, classify, aggregate.
func Run(ctx context.Context, fetcher Fetcher, url, okMarker, warnMarker string) (*check.Verdict, error) {
	if url == "" {
		return nil, &check.UsageError{Msg: "url argument is required"}
	}
	if okMarker == "" {
		return nil, &check.UsageError{Msg: "ok_string argument is required"}
	}

	body, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	indicators, err := ParseIndicators(body)
	if err != nil {
		return nil, err
	}

	buckets := report.New()
	for _, ind := range indicators {
		buckets.Add(Classify(ind.RawValue, okMarker, warnMarker), ind.Label)
	}

	return &check.Verdict{
		Status:  buckets.Overall(),
		Message: "Status of all attributes: " + buckets.Summary(),
	}, nil
}
