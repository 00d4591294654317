package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/casperakos/kubesail-sub001/internal/classify"
	"github.com/casperakos/kubesail-sub001/internal/fetch"
)

var gvrFlags struct {
	group     string
	version   string
	resource  string
	namespace string
}

func addGVRFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&gvrFlags.group, "group", "g", "", "API group of the resource")
	cmd.Flags().StringVarP(&gvrFlags.version, "version", "v", "", "API version of the resource")
	cmd.Flags().StringVarP(&gvrFlags.resource, "resource", "r", "", "Plural resource name")
	cmd.Flags().StringVarP(&gvrFlags.namespace, "namespace", "n", "", "Namespace (default: all)")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("resource")
}

func flagGVR() schema.GroupVersionResource {
	return schema.GroupVersionResource{
		Group:    gvrFlags.group,
		Version:  gvrFlags.version,
		Resource: gvrFlags.resource,
	}
}

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Classify every object of a resource type",
		Long: `List all objects of a custom resource type and derive a canonical
status label and severity for each.

Examples:
  # Classify Argo workflows
  sailctl status -g argoproj.io -v v1alpha1 -r workflows

  # Classify CNPG clusters, JSON output
  sailctl status -g postgresql.cnpg.io -v v1 -r clusters -o json`,
		RunE: runStatus,
	}

	addGVRFlags(cmd)
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger := zap.NewNop()
	engine := fetch.NewEngine(logger, client)
	registry := classify.NewDefaultRegistry(logger)

	resources, err := engine.List(context.Background(), flagGVR(), gvrFlags.namespace)
	if err != nil {
		return err
	}

	report := StatusReport{Total: len(resources)}
	for _, res := range resources {
		result := registry.Classify(res)
		report.Resources = append(report.Resources, ResourceStatus{
			Name:      res.Name,
			Namespace: res.Namespace,
			Kind:      res.Kind,
			Age:       res.Age,
			Label:     result.Label,
			Severity:  string(result.Severity),
		})
	}

	return outputResult(report, outputFmt)
}
