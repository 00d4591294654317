package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/casperakos/kubesail-sub001/internal/age"
	"github.com/casperakos/kubesail-sub001/internal/fetch"
)

// bucketOrder fixes the display order of timeline groups.
var bucketOrder = []age.Bucket{age.BucketRecent, age.BucketToday, age.BucketYesterday, age.BucketOlder}

func timelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Group resources into Recent/Today/Yesterday/Older",
		Long: `Bucket objects of a resource type by age.

Examples:
  sailctl timeline -g argoproj.io -v v1alpha1 -r workflows`,
		RunE: runTimeline,
	}

	addGVRFlags(cmd)
	return cmd
}

func runTimeline(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	engine := fetch.NewEngine(zap.NewNop(), client)
	resources, err := engine.List(context.Background(), flagGVR(), gvrFlags.namespace)
	if err != nil {
		return err
	}

	now := time.Now()
	grouped := make(map[age.Bucket][]string)
	for _, res := range resources {
		b := age.BucketFor(res.Age, now)
		grouped[b] = append(grouped[b], res.Name)
	}

	report := TimelineReport{}
	for _, b := range bucketOrder {
		if len(grouped[b]) == 0 {
			continue
		}
		report.Buckets = append(report.Buckets, TimelineBucket{
			Bucket:    string(b),
			Resources: grouped[b],
		})
	}

	return outputResult(report, outputFmt)
}
