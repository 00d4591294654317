// Package cnpg classifies CloudNativePG Cluster and Backup resources.
//
// CNPG phase strings are long descriptive sentences ("Cluster in healthy
// state", "Setting up primary"), so Cluster matching is by substring rather
// than exact value. When the phase matches nothing, the Ready condition is
// the fallback signal, with its reason used as the display label.
package cnpg

import (
	"strings"

	"github.com/casperakos/kubesail-sub001/internal/types"
	"github.com/casperakos/kubesail-sub001/internal/util"
)

// APIGroup is the CloudNativePG API group prefix this classifier is bound to.
const APIGroup = "postgresql.cnpg.io"

type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Name() string {
	return "cloudnative-pg"
}

func (c *Classifier) Handles() []types.KindMatch {
	return []types.KindMatch{
		{Kind: "Cluster", APIGroup: APIGroup},
		{Kind: "Backup", APIGroup: APIGroup},
	}
}

func (c *Classifier) Classify(res types.CustomResource) types.StatusResult {
	switch res.Kind {
	case "Cluster":
		return classifyCluster(res)
	case "Backup":
		return classifyBackup(res)
	}
	return types.Unknown()
}

func classifyCluster(res types.CustomResource) types.StatusResult {
	phase := util.SafeNestedString(res.Status, "phase")
	lower := strings.ToLower(phase)

	switch {
	case strings.Contains(lower, "healthy"):
		return types.StatusResult{Label: "Healthy", Severity: types.SeveritySuccess}
	case strings.Contains(lower, "setting up"),
		strings.Contains(lower, "initializing"),
		strings.Contains(lower, "waiting for"):
		return types.StatusResult{Label: phase, Severity: types.SeverityProgressing}
	case strings.Contains(lower, "upgrade"):
		return types.StatusResult{Label: phase, Severity: types.SeverityWarning}
	case strings.Contains(lower, "failed"), strings.Contains(lower, "error"):
		return types.StatusResult{Label: phase, Severity: types.SeverityFailure}
	}

	// No phase match: fall back to the Ready condition.
	conditions := util.SafeConditions(res.Status, "conditions")
	ready := util.FindCondition(conditions, "Ready")
	if ready == nil {
		return types.Unknown()
	}

	if ready.Reason == "ClusterIsNotReady" {
		return types.StatusResult{Label: "Not Ready", Severity: types.SeverityWarning}
	}

	label := ready.Reason
	switch ready.Status {
	case "True":
		if label == "" {
			label = "Ready"
		}
		return types.StatusResult{Label: label, Severity: types.SeveritySuccess}
	case "False":
		if label == "" {
			label = "Not Ready"
		}
		return types.StatusResult{Label: label, Severity: types.SeverityFailure}
	}
	return types.Unknown()
}

func classifyBackup(res types.CustomResource) types.StatusResult {
	phase := util.SafeNestedString(res.Status, "phase")
	switch strings.ToLower(phase) {
	case "completed":
		return types.StatusResult{Label: "Completed", Severity: types.SeveritySuccess}
	case "running":
		return types.StatusResult{Label: "Running", Severity: types.SeverityProgressing}
	case "failed":
		return types.StatusResult{Label: "Failed", Severity: types.SeverityFailure}
	case "pending":
		return types.StatusResult{Label: "Pending", Severity: types.SeverityWarning}
	}
	return types.Unknown()
}
