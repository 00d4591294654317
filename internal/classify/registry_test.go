package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/casperakos/kubesail-sub001/internal/testutil"
	"github.com/casperakos/kubesail-sub001/internal/types"
)

// stubClassifier returns a fixed result for configured kind matches.
type stubClassifier struct {
	name    string
	matches []types.KindMatch
	result  types.StatusResult
	panics  bool
}

func (s *stubClassifier) Name() string               { return s.name }
func (s *stubClassifier) Handles() []types.KindMatch { return s.matches }
func (s *stubClassifier) Classify(types.CustomResource) types.StatusResult {
	if s.panics {
		panic("boom")
	}
	return s.result
}

func newTestRegistry(t *testing.T, classifiers ...types.Classifier) *Registry {
	t.Helper()
	fallback := &stubClassifier{
		name:   "fallback",
		result: types.Unknown(),
	}
	r := NewRegistry(fallback, zap.NewNop())
	for _, c := range classifiers {
		require.NoError(t, r.Register(c))
	}
	return r
}

func TestRegister_DuplicateName(t *testing.T) {
	r := newTestRegistry(t, &stubClassifier{name: "dup"})
	err := r.Register(&stubClassifier{name: "dup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegister_DuplicateKindGroup(t *testing.T) {
	r := newTestRegistry(t, &stubClassifier{
		name:    "first",
		matches: []types.KindMatch{{Kind: "Widget", APIGroup: "example.io"}},
	})
	err := r.Register(&stubClassifier{
		name:    "second",
		matches: []types.KindMatch{{Kind: "Widget", APIGroup: "example.io"}},
	})
	require.Error(t, err)
}

func TestForResource_GroupPrefixBeatsKindWide(t *testing.T) {
	kindWide := &stubClassifier{
		name:    "kind-wide",
		matches: []types.KindMatch{{Kind: "Cluster"}},
	}
	grouped := &stubClassifier{
		name:    "grouped",
		matches: []types.KindMatch{{Kind: "Cluster", APIGroup: "postgresql.cnpg.io"}},
	}
	r := newTestRegistry(t, kindWide, grouped)

	res := testutil.MakeResource("Cluster", "postgresql.cnpg.io/v1", nil)
	assert.Equal(t, "grouped", r.ForResource(res).Name())

	res.APIVersion = "other.io/v1"
	assert.Equal(t, "kind-wide", r.ForResource(res).Name())
}

func TestForResource_FallsBack(t *testing.T) {
	r := newTestRegistry(t, &stubClassifier{
		name:    "workflows",
		matches: []types.KindMatch{{Kind: "Workflow"}},
	})

	res := testutil.MakeResource("Mystery", "example.io/v1", nil)
	assert.Equal(t, "fallback", r.ForResource(res).Name())
}

func TestClassify_RecoversFromPanic(t *testing.T) {
	r := newTestRegistry(t, &stubClassifier{
		name:    "broken",
		matches: []types.KindMatch{{Kind: "Widget"}},
		panics:  true,
	})

	result := r.Classify(testutil.MakeResource("Widget", "example.io/v1", nil))
	assert.Equal(t, types.Unknown(), result)
}

func TestClassify_EmptyResourceIsTotal(t *testing.T) {
	r := NewDefaultRegistry(zap.NewNop())

	result := r.Classify(types.CustomResource{})
	assert.Equal(t, types.Unknown(), result)
}

func TestNewDefaultRegistry_Dispatch(t *testing.T) {
	r := NewDefaultRegistry(zap.NewNop())

	tests := []struct {
		kind       string
		apiVersion string
		classifier string
	}{
		{kind: "ApplicationSet", apiVersion: "argoproj.io/v1alpha1", classifier: "argocd"},
		{kind: "Workflow", apiVersion: "argoproj.io/v1alpha1", classifier: "argo-workflows"},
		{kind: "EventSource", apiVersion: "argoproj.io/v1alpha1", classifier: "argo-events"},
		{kind: "Sensor", apiVersion: "argoproj.io/v1alpha1", classifier: "argo-events"},
		{kind: "Cluster", apiVersion: "postgresql.cnpg.io/v1", classifier: "cloudnative-pg"},
		{kind: "Backup", apiVersion: "postgresql.cnpg.io/v1", classifier: "cloudnative-pg"},
		{kind: "Cluster", apiVersion: "clusters.example.io/v1", classifier: "generic"},
		{kind: "Application", apiVersion: "argoproj.io/v1alpha1", classifier: "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"_"+tt.apiVersion, func(t *testing.T) {
			res := testutil.MakeResource(tt.kind, tt.apiVersion, nil)
			assert.Equal(t, tt.classifier, r.ForResource(res).Name())
		})
	}
}
