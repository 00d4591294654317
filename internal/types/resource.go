package types

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// CustomResource is a snapshot of a single custom resource as fetched from
// the cluster. Spec and Status are opaque documents whose concrete shape
// depends on the owning controller; no shared schema is assumed.
type CustomResource struct {
	Name       string
	Namespace  string // empty = cluster-scoped
	Kind       string
	APIVersion string

	// Age is the compact relative age string rendered at fetch time,
	// e.g. "3d", "5h", "12m". Parsed by the age package.
	Age string

	Labels map[string]string
	Spec   map[string]interface{}
	Status map[string]interface{}
}

// FromUnstructured converts a fetched object into a CustomResource snapshot.
// The age string is left empty; the fetch layer fills it in because only it
// knows the reference time of the snapshot.
func FromUnstructured(obj *unstructured.Unstructured) CustomResource {
	res := CustomResource{
		Name:       obj.GetName(),
		Namespace:  obj.GetNamespace(),
		Kind:       obj.GetKind(),
		APIVersion: obj.GetAPIVersion(),
		Labels:     obj.GetLabels(),
	}
	if spec, ok := obj.Object["spec"].(map[string]interface{}); ok {
		res.Spec = spec
	}
	if status, ok := obj.Object["status"].(map[string]interface{}); ok {
		res.Status = status
	}
	return res
}

// Parameter is a named workflow argument as it appears under
// spec.arguments.parameters or a node's outputs.parameters.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SpecParameters returns the workflow argument parameters from
// spec.arguments.parameters, or nil when absent or malformed.
func (r CustomResource) SpecParameters() []Parameter {
	args, ok := r.Spec["arguments"].(map[string]interface{})
	if !ok {
		return nil
	}
	raw, ok := args["parameters"].([]interface{})
	if !ok {
		return nil
	}
	params := make([]Parameter, 0, len(raw))
	for _, p := range raw {
		m, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		value, _ := m["value"].(string)
		params = append(params, Parameter{Name: name, Value: value})
	}
	return params
}
