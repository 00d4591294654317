// Package classify routes custom resources to kind-specific classifiers and
// guarantees a total, never-failing mapping to a normalized StatusResult.
package classify

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/casperakos/kubesail-sub001/internal/types"
)

// Registry maintains the mapping of kind/group combinations to classifiers.
// It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	classifiers map[string]types.Classifier // name → classifier
	byKind      map[string][]kindEntry      // kind → entries, checked in registration order
	fallback    types.Classifier

	logger *zap.Logger
}

type kindEntry struct {
	groupPrefix string // empty matches any apiVersion
	classifier  types.Classifier
}

// NewRegistry creates an empty registry with the given fallback classifier.
// The fallback handles every resource no specific classifier matches.
func NewRegistry(fallback types.Classifier, logger *zap.Logger) *Registry {
	return &Registry{
		classifiers: make(map[string]types.Classifier),
		byKind:      make(map[string][]kindEntry),
		fallback:    fallback,
		logger:      logger.Named("classify"),
	}
}

// Register adds a classifier, mapping every KindMatch it returns.
// Returns an error if the name or an identical kind/group pair is taken.
func (r *Registry) Register(c types.Classifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.classifiers[name]; exists {
		return fmt.Errorf("classifier %q already registered", name)
	}

	for _, match := range c.Handles() {
		for _, existing := range r.byKind[match.Kind] {
			if existing.groupPrefix == match.APIGroup {
				return fmt.Errorf("kind %q group %q already registered to %q, cannot register to %q",
					match.Kind, match.APIGroup, existing.classifier.Name(), name)
			}
		}
		r.byKind[match.Kind] = append(r.byKind[match.Kind], kindEntry{
			groupPrefix: match.APIGroup,
			classifier:  c,
		})
	}

	r.classifiers[name] = c
	return nil
}

// ForResource returns the classifier that will evaluate the given resource.
// Lookup order: kind with matching group prefix, kind with no group
// constraint, then the fallback.
func (r *Registry) ForResource(res types.CustomResource) types.Classifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var kindWide types.Classifier
	for _, entry := range r.byKind[res.Kind] {
		if entry.groupPrefix == "" {
			if kindWide == nil {
				kindWide = entry.classifier
			}
			continue
		}
		if strings.Contains(res.APIVersion, entry.groupPrefix) {
			return entry.classifier
		}
	}
	if kindWide != nil {
		return kindWide
	}
	return r.fallback
}

// ForName returns the classifier with the given name, or nil.
func (r *Registry) ForName(name string) types.Classifier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classifiers[name]
}

// Classify derives the normalized status for the resource. It never panics:
// a misbehaving classifier resolves to the terminal Unknown result.
func (r *Registry) Classify(res types.CustomResource) (result types.StatusResult) {
	c := r.ForResource(res)

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("Classifier panicked, resolving to Unknown",
				zap.String("classifier", c.Name()),
				zap.String("kind", res.Kind),
				zap.String("name", res.Name),
				zap.Any("recovered", rec),
			)
			result = types.Unknown()
		}
	}()

	return c.Classify(res)
}
