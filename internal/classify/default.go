package classify

import (
	"go.uber.org/zap"

	"github.com/casperakos/kubesail-sub001/internal/classify/argocd"
	"github.com/casperakos/kubesail-sub001/internal/classify/argoevents"
	"github.com/casperakos/kubesail-sub001/internal/classify/argoworkflows"
	"github.com/casperakos/kubesail-sub001/internal/classify/cnpg"
	"github.com/casperakos/kubesail-sub001/internal/classify/generic"
)

// NewDefaultRegistry builds a registry with every built-in classifier
// registered and the generic classifier as fallback.
func NewDefaultRegistry(logger *zap.Logger) *Registry {
	r := NewRegistry(generic.New(), logger)

	// Registration cannot fail here: the built-in classifiers have unique
	// names and disjoint kind/group pairs.
	_ = r.Register(argocd.New())
	_ = r.Register(argoworkflows.New())
	_ = r.Register(argoevents.New())
	_ = r.Register(cnpg.New())

	return r
}
