// Package argocd classifies Argo CD ApplicationSet resources.
//
// ApplicationSets report a conditions array rather than a phase. Condition
// types are checked in priority order: ErrorOccurred beats ResourcesUpToDate
// beats ParametersGenerated, so a generation error is never masked by a
// stale "up to date" condition.
package argocd

import (
	"github.com/casperakos/kubesail-sub001/internal/types"
	"github.com/casperakos/kubesail-sub001/internal/util"
)

type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Name() string {
	return "argocd"
}

func (c *Classifier) Handles() []types.KindMatch {
	return []types.KindMatch{
		{Kind: "ApplicationSet"},
	}
}

func (c *Classifier) Classify(res types.CustomResource) types.StatusResult {
	conditions := util.SafeConditions(res.Status, "conditions")
	if len(conditions) == 0 {
		return types.Unknown()
	}

	if util.ConditionTrue(conditions, "ErrorOccurred") {
		return types.StatusResult{Label: "Error", Severity: types.SeverityFailure}
	}

	if upToDate := util.FindCondition(conditions, "ResourcesUpToDate"); upToDate != nil {
		if upToDate.Status == "True" {
			return types.StatusResult{Label: "Up to Date", Severity: types.SeveritySuccess}
		}
		return types.StatusResult{Label: "Out of Date", Severity: types.SeverityWarning}
	}

	if util.ConditionTrue(conditions, "ParametersGenerated") {
		return types.StatusResult{Label: "Active", Severity: types.SeveritySuccess}
	}

	return types.Unknown()
}
