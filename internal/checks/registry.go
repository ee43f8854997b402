// Package checks provides the built-in check registry.
package checks

import (
	"github.com/opsgrid/checks/internal/check"
	"github.com/opsgrid/checks/internal/checks/cloudendure"
	"github.com/opsgrid/checks/internal/checks/debug"
	"github.com/opsgrid/checks/internal/checks/jsonstatus"
)

// GetAllDescriptions returns descriptions of all built-in checks.
func GetAllDescriptions() []check.Description {
	return []check.Description{
		cloudendure.GetDescription(),
		debug.GetDescription(),
		jsonstatus.GetDescription(),
	}
}
