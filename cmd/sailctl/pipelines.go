package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/casperakos/kubesail-sub001/internal/fetch"
	"github.com/casperakos/kubesail-sub001/internal/pipeline"
	"github.com/casperakos/kubesail-sub001/internal/types"
)

// workflowGVR is where Argo workflow objects live.
var workflowGVR = schema.GroupVersionResource{
	Group:    "argoproj.io",
	Version:  "v1alpha1",
	Resource: "workflows",
}

func pipelinesCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "pipelines [workflow-name]",
		Short: "Show derived pipeline executions for workflows",
		Long: `Derive pipeline-execution descriptors for Argo workflows, merging
scan-filter node outputs with identifiers decoded from the argument blob.

Examples:
  # All workflows in a namespace
  sailctl pipelines -n imaging

  # One workflow, JSON output
  sailctl pipelines my-workflow -n imaging -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipelines(namespace, args)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Namespace (default: all)")
	return cmd
}

func runPipelines(namespace string, args []string) error {
	client, err := getClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger := zap.NewNop()
	engine := fetch.NewEngine(logger, client)
	correlator := pipeline.New(logger)

	resources, err := engine.List(context.Background(), workflowGVR, namespace)
	if err != nil {
		return err
	}

	for _, res := range resources {
		if len(args) == 1 && res.Name != args[0] {
			continue
		}
		executions := correlator.Correlate(res)
		report := PipelineReport{
			Workflow:   res.Name,
			Executions: toOutputExecutions(executions),
			Names:      correlator.Names(executions),
		}
		if err := outputResult(report, outputFmt); err != nil {
			return err
		}
	}
	return nil
}

func toOutputExecutions(executions []types.PipelineExecution) []PipelineExecution {
	out := make([]PipelineExecution, 0, len(executions))
	for _, e := range executions {
		out = append(out, PipelineExecution{
			PatientID:                  e.PatientID,
			PipelineID:                 e.PipelineID,
			PipelineRunID:              e.PipelineRunID,
			TriggeringScanID:           e.TriggeringScanID,
			TriggeringStudyInstanceUID: e.TriggeringStudyInstanceUID,
			TriggeringUploadSessionID:  e.TriggeringUploadSessionID,
		})
	}
	return out
}
