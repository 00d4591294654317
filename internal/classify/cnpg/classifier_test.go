package cnpg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casperakos/kubesail-sub001/internal/testutil"
	"github.com/casperakos/kubesail-sub001/internal/types"
)

func TestClassify_ClusterHealthy(t *testing.T) {
	res := testutil.LoadFixture(t, "testdata/cluster_healthy.yaml")
	result := New().Classify(res)
	assert.Equal(t, types.StatusResult{Label: "Healthy", Severity: types.SeveritySuccess}, result)
}

func TestClassify_ClusterInitializing(t *testing.T) {
	res := testutil.LoadFixture(t, "testdata/cluster_initializing.yaml")
	result := New().Classify(res)
	assert.Equal(t, types.SeverityProgressing, result.Severity)
	assert.Equal(t, "Setting up primary", result.Label, "descriptive phases pass through")
}

func TestClassify_ClusterPhaseSubstrings(t *testing.T) {
	tests := []struct {
		phase string
		want  types.Severity
	}{
		{phase: "Cluster in healthy state", want: types.SeveritySuccess},
		{phase: "Initializing replica", want: types.SeverityProgressing},
		{phase: "Waiting for instances to become active", want: types.SeverityProgressing},
		{phase: "Upgrade in progress", want: types.SeverityWarning},
		{phase: "Failed to start", want: types.SeverityFailure},
		{phase: "Unexpected error", want: types.SeverityFailure},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			res := testutil.MakeResource("Cluster", "postgresql.cnpg.io/v1",
				map[string]interface{}{"phase": tt.phase})
			assert.Equal(t, tt.want, c.Classify(res).Severity)
		})
	}
}

func TestClassify_ClusterReadyConditionFallback(t *testing.T) {
	res := testutil.LoadFixture(t, "testdata/cluster_not_ready.yaml")
	result := New().Classify(res)
	assert.Equal(t, types.StatusResult{Label: "Not Ready", Severity: types.SeverityWarning}, result)
}

func TestClassify_ClusterReadyTrueUsesReasonAsLabel(t *testing.T) {
	res := testutil.MakeResource("Cluster", "postgresql.cnpg.io/v1",
		testutil.Conditions([]string{"Ready", "True", "ClusterIsReady"}))
	result := New().Classify(res)
	assert.Equal(t, types.StatusResult{Label: "ClusterIsReady", Severity: types.SeveritySuccess}, result)
}

func TestClassify_ClusterNoSignal(t *testing.T) {
	res := testutil.MakeResource("Cluster", "postgresql.cnpg.io/v1", nil)
	assert.Equal(t, types.Unknown(), New().Classify(res))
}

func TestClassify_BackupPhases(t *testing.T) {
	res := testutil.LoadFixture(t, "testdata/backup_completed.yaml")
	result := New().Classify(res)
	assert.Equal(t, types.StatusResult{Label: "Completed", Severity: types.SeveritySuccess}, result)

	tests := []struct {
		phase string
		want  types.StatusResult
	}{
		{phase: "running", want: types.StatusResult{Label: "Running", Severity: types.SeverityProgressing}},
		{phase: "failed", want: types.StatusResult{Label: "Failed", Severity: types.SeverityFailure}},
		{phase: "pending", want: types.StatusResult{Label: "Pending", Severity: types.SeverityWarning}},
		{phase: "archiving", want: types.Unknown()},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			b := testutil.MakeResource("Backup", "postgresql.cnpg.io/v1",
				map[string]interface{}{"phase": tt.phase})
			assert.Equal(t, tt.want, c.Classify(b))
		})
	}
}
