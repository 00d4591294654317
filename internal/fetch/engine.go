// Package fetch lists custom resources through the dynamic client and
// converts them into the snapshot records the derivation core consumes.
// All classification and decoding happens downstream on these immutable
// snapshots; this package is the only place that touches the cluster.
package fetch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"

	"github.com/casperakos/kubesail-sub001/internal/age"
	"github.com/casperakos/kubesail-sub001/internal/types"
)

const (
	// Rate limit for list calls during a multi-GVR snapshot.
	listRateLimit = 10
	listRateBurst = 20
)

// Engine fetches resource snapshots on demand. It holds no cache: stale
// snapshots are discarded by the caller and refetched whole.
type Engine struct {
	logger  *zap.Logger
	client  dynamic.Interface
	limiter *rate.Limiter

	// now is injectable for deterministic age strings in tests.
	now func() time.Time
}

// NewEngine creates a snapshot engine over the given dynamic client.
func NewEngine(logger *zap.Logger, client dynamic.Interface) *Engine {
	return &Engine{
		logger:  logger.Named("fetch"),
		client:  client,
		limiter: rate.NewLimiter(listRateLimit, listRateBurst),
		now:     time.Now,
	}
}

// SetClock overrides the reference time used for age rendering.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// List fetches all objects of the given GVR and converts them to snapshot
// records. Pass an empty namespace to list across all namespaces.
func (e *Engine) List(ctx context.Context, gvr schema.GroupVersionResource, namespace string) ([]types.CustomResource, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	list, err := e.client.Resource(gvr).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", gvr.String(), err)
	}

	now := e.now()
	resources := make([]types.CustomResource, 0, len(list.Items))
	for i := range list.Items {
		obj := &list.Items[i]
		res := types.FromUnstructured(obj)
		if created := obj.GetCreationTimestamp(); !created.IsZero() {
			res.Age = age.Format(created.Time, now)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// Snapshot lists every GVR in turn, concatenating the results. A failing
// GVR is logged and skipped so one missing CRD does not empty the whole
// snapshot; the error is returned only when every list failed.
func (e *Engine) Snapshot(ctx context.Context, gvrs []schema.GroupVersionResource, namespace string) ([]types.CustomResource, error) {
	var all []types.CustomResource
	var lastErr error
	failed := 0

	for _, gvr := range gvrs {
		resources, err := e.List(ctx, gvr, namespace)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.logger.Warn("Snapshot list failed, skipping GVR",
				zap.String("gvr", gvr.String()),
				zap.Error(err),
			)
			failed++
			lastErr = err
			continue
		}
		all = append(all, resources...)
	}

	if failed == len(gvrs) && failed > 0 {
		return nil, lastErr
	}
	return all, nil
}
