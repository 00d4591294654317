// Package generic is the fallback classifier for kinds without a dedicated
// classifier. It probes the status document for widely shared conventions.
//
// # Cascade (in priority order, stopping at first match)
//
//  1. status.health.status: Argo CD Application health (healthy, degraded,
//     progressing, suspended)
//  2. status.sync.status: Argo CD sync state (Synced, OutOfSync)
//  3. status.phase: common controller phase strings; unrecognized non-empty
//     phases pass through as the label with neutral styling
//  4. status.conditions[]: a Ready or Available condition
//  5. Unknown
package generic

import (
	"strings"

	"github.com/casperakos/kubesail-sub001/internal/types"
	"github.com/casperakos/kubesail-sub001/internal/util"
)

type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Name() string {
	return "generic"
}

// Handles returns nil: the generic classifier is dispatched as the registry
// fallback, not registered to specific kinds.
func (c *Classifier) Handles() []types.KindMatch {
	return nil
}

func (c *Classifier) Classify(res types.CustomResource) types.StatusResult {
	if result, ok := fromHealth(res.Status); ok {
		return result
	}
	if result, ok := fromSync(res.Status); ok {
		return result
	}
	if result, ok := fromPhase(res.Status); ok {
		return result
	}
	if result, ok := fromConditions(res.Status); ok {
		return result
	}
	return types.Unknown()
}

func fromHealth(status map[string]interface{}) (types.StatusResult, bool) {
	health := util.SafeNestedString(status, "health", "status")
	switch strings.ToLower(health) {
	case "healthy":
		return types.StatusResult{Label: health, Severity: types.SeveritySuccess}, true
	case "degraded":
		return types.StatusResult{Label: health, Severity: types.SeverityFailure}, true
	case "progressing":
		return types.StatusResult{Label: health, Severity: types.SeverityProgressing}, true
	case "suspended":
		return types.StatusResult{Label: health, Severity: types.SeverityWarning}, true
	}
	return types.StatusResult{}, false
}

func fromSync(status map[string]interface{}) (types.StatusResult, bool) {
	sync := util.SafeNestedString(status, "sync", "status")
	switch strings.ToLower(sync) {
	case "synced":
		return types.StatusResult{Label: sync, Severity: types.SeveritySuccess}, true
	case "outofsync":
		return types.StatusResult{Label: sync, Severity: types.SeverityWarning}, true
	}
	return types.StatusResult{}, false
}

func fromPhase(status map[string]interface{}) (types.StatusResult, bool) {
	phase := util.SafeNestedString(status, "phase")
	if phase == "" {
		return types.StatusResult{}, false
	}
	switch strings.ToLower(phase) {
	case "running", "active", "ready":
		return types.StatusResult{Label: phase, Severity: types.SeveritySuccess}, true
	case "pending", "progressing":
		return types.StatusResult{Label: phase, Severity: types.SeverityProgressing}, true
	case "failed", "error":
		return types.StatusResult{Label: phase, Severity: types.SeverityFailure}, true
	default:
		return types.StatusResult{Label: phase, Severity: types.SeverityUnknown}, true
	}
}

func fromConditions(status map[string]interface{}) (types.StatusResult, bool) {
	conditions := util.SafeConditions(status, "conditions")
	for _, condType := range []string{"Ready", "Available"} {
		if c := util.FindCondition(conditions, condType); c != nil {
			if c.Status == "True" {
				return types.StatusResult{Label: "Ready", Severity: types.SeveritySuccess}, true
			}
			return types.StatusResult{Label: "Not Ready", Severity: types.SeverityWarning}, true
		}
	}
	return types.StatusResult{}, false
}
