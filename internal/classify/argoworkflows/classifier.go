// Package argoworkflows classifies Argo Workflow resources by status.phase.
package argoworkflows

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
	return "argo-workflows"
}

func (c *Classifier) Handles() []types.KindMatch {
	return []types.KindMatch{
		{Kind: "Workflow"},
	}
}

func (c *Classifier) Classify(res types.CustomResource) types.StatusResult {
	phase := util.SafeNestedString(res.Status, "phase")
	if phase == "" {
		return types.Unknown()
	}

	// The label keeps the controller's casing; only the severity is mapped.
	switch strings.ToLower(phase) {
	case "succeeded":
		return types.StatusResult{Label: phase, Severity: types.SeveritySuccess}
	case "failed", "error":
		return types.StatusResult{Label: phase, Severity: types.SeverityFailure}
	case "running":
		return types.StatusResult{Label: phase, Severity: types.SeverityProgressing}
	case "pending":
		return types.StatusResult{Label: phase, Severity: types.SeverityWarning}
	default:
		// Unrecognized phases pass through with neutral styling.
		return types.StatusResult{Label: phase, Severity: types.SeverityUnknown}
	}
}
