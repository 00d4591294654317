package types

// KindMatch describes the resources a classifier can evaluate.
// An empty APIGroup matches the kind regardless of API group.
type KindMatch struct {
	Kind     string
	APIGroup string // matched as a prefix of the resource's apiVersion
}

// Classifier derives a normalized StatusResult from one family of
// controller-specific resource shapes.
//
// The registry routes resources to the appropriate classifier based on
// kind and apiVersion matching.
//
// Contract:
//   - Must not modify the input resource.
//   - Must be total: malformed or partial documents resolve to Unknown,
//     never to a panic or an error.
//   - Implementations must be safe for concurrent use.
type Classifier interface {
	// Name returns a unique identifier for this classifier, used in
	// logging and registry bookkeeping.
	Name() string

	// Handles returns the kind/group combinations this classifier covers.
	// Return nil for a default classifier dispatched only as fallback.
	Handles() []KindMatch

	// Classify derives the normalized status for the resource.
	Classify(res CustomResource) StatusResult
}
