package util

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// SafeNestedString returns the string at the given field path, or "" if missing/wrong type.
func SafeNestedString(obj map[string]interface{}, fields ...string) string {
	if obj == nil {
		return ""
	}
	val, found, err := unstructured.NestedString(obj, fields...)
	if err != nil || !found {
		return ""
	}
	return val
}

// SafeNestedMap returns the nested map, or nil if missing.
func SafeNestedMap(obj map[string]interface{}, fields ...string) map[string]interface{} {
	if obj == nil {
		return nil
	}
	val, found, err := unstructured.NestedMap(obj, fields...)
	if err != nil || !found {
		return nil
	}
	return val
}

// SafeNestedSlice returns the nested slice, or nil if missing.
func SafeNestedSlice(obj map[string]interface{}, fields ...string) []interface{} {
	if obj == nil {
		return nil
	}
	val, found, err := unstructured.NestedSlice(obj, fields...)
	if err != nil || !found {
		return nil
	}
	return val
}

// SafeStringFromMap extracts a string value from a map by key.
// Returns "" if key is missing or value is not a string.
func SafeStringFromMap(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	val, ok := m[key]
	if !ok {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}

// Condition is one entry of a status.conditions array, reduced to the fields
// the classifiers dispatch on. Status carries the raw string ("True",
// "False", "Unknown") exactly as the controller reported it.
type Condition struct {
	Type    string
	Status  string
	Reason  string
	Message string
}

// SafeConditions returns the conditions array at the given path, skipping
// entries that are not condition-shaped. Returns nil when the path is
// missing or holds the wrong type.
func SafeConditions(obj map[string]interface{}, fields ...string) []Condition {
	raw := SafeNestedSlice(obj, fields...)
	if raw == nil {
		return nil
	}
	conditions := make([]Condition, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		conditions = append(conditions, Condition{
			Type:    SafeStringFromMap(m, "type"),
			Status:  SafeStringFromMap(m, "status"),
			Reason:  SafeStringFromMap(m, "reason"),
			Message: SafeStringFromMap(m, "message"),
		})
	}
	return conditions
}

// FindCondition returns the first condition with the given type, or nil.
func FindCondition(conditions []Condition, condType string) *Condition {
	for i := range conditions {
		if conditions[i].Type == condType {
			return &conditions[i]
		}
	}
	return nil
}

// ConditionTrue reports whether the condition with the given type exists and
// has status "True".
func ConditionTrue(conditions []Condition, condType string) bool {
	c := FindCondition(conditions, condType)
	return c != nil && c.Status == "True"
}
