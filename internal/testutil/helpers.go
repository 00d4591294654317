// Package testutil provides shared test helpers. Import this in test files
// to avoid duplicating fixture loading and resource builders.
package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/yaml"

	"github.com/casperakos/kubesail-sub001/internal/types"
)

// LoadFixture reads a YAML file and returns it as a CustomResource snapshot.
// Fails the test immediately if the file can't be read or parsed.
func LoadFixture(t *testing.T, path string) types.CustomResource {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read fixture %s", path)
	obj := &unstructured.Unstructured{}
	require.NoError(t, yaml.Unmarshal(data, &obj.Object), "failed to parse fixture %s", path)
	return types.FromUnstructured(obj)
}

// MakeResource builds a test resource with the given status document.
func MakeResource(kind, apiVersion string, status map[string]interface{}) types.CustomResource {
	return types.CustomResource{
		Name:       "test-" + kind,
		Namespace:  "default",
		Kind:       kind,
		APIVersion: apiVersion,
		Status:     status,
	}
}

// Conditions builds a status document holding only a conditions array.
// Each entry is {type, status} or {type, status, reason}.
func Conditions(entries ...[]string) map[string]interface{} {
	conditions := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		c := map[string]interface{}{"type": e[0], "status": e[1]}
		if len(e) > 2 {
			c["reason"] = e[2]
		}
		conditions = append(conditions, c)
	}
	return map[string]interface{}{"conditions": conditions}
}
