// Package argoevents classifies Argo Events EventSource and Sensor resources.
//
// Both kinds report a conditions array where all conditions must be True for
// the resource to be operational. A false Deployed condition is a failure;
// any other false condition means the resource runs but is not fully
// configured.
package argoevents

import (
	"github.com/casperakos/kubesail-sub001/internal/types"
	"github.com/casperakos/kubesail-sub001/internal/util"
)

type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Name() string {
	return "argo-events"
}

func (c *Classifier) Handles() []types.KindMatch {
	return []types.KindMatch{
		{Kind: "EventSource"},
		{Kind: "Sensor"},
	}
}

func (c *Classifier) Classify(res types.CustomResource) types.StatusResult {
	conditions := util.SafeConditions(res.Status, "conditions")
	if len(conditions) == 0 {
		return types.Unknown()
	}

	switch res.Kind {
	case "EventSource":
		return classifyConditions(conditions, "Running", []string{"SourcesProvided"})
	case "Sensor":
		return classifyConditions(conditions, "Active", []string{"DependenciesProvided", "TriggersProvided"})
	}
	return types.Unknown()
}

// classifyConditions evaluates the Deployed condition plus the kind-specific
// configuration conditions. healthyLabel is used when everything is True.
func classifyConditions(conditions []util.Condition, healthyLabel string, configTypes []string) types.StatusResult {
	deployed := util.FindCondition(conditions, "Deployed")
	if deployed != nil && deployed.Status == "False" {
		return types.StatusResult{Label: "Not Deployed", Severity: types.SeverityFailure}
	}

	if deployed != nil && deployed.Status == "True" {
		for _, condType := range configTypes {
			if c := util.FindCondition(conditions, condType); c != nil && c.Status == "False" {
				return types.StatusResult{Label: "Not Configured", Severity: types.SeverityWarning}
			}
		}
		allProvided := true
		for _, condType := range configTypes {
			if !util.ConditionTrue(conditions, condType) {
				allProvided = false
				break
			}
		}
		if allProvided {
			return types.StatusResult{Label: healthyLabel, Severity: types.SeveritySuccess}
		}
	}

	return types.Unknown()
}
