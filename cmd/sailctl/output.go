package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/yaml"
)

// ResourceStatus is one row of the status command output.
type ResourceStatus struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace,omitempty"`
	Kind      string `json:"kind"`
	Age       string `json:"age,omitempty"`
	Label     string `json:"label"`
	Severity  string `json:"severity"`
}

// StatusReport is the result of the status command.
type StatusReport struct {
	Resources []ResourceStatus `json:"resources"`
	Total     int              `json:"total"`
}

// PipelineReport is the result of the pipelines command.
type PipelineReport struct {
	Workflow   string              `json:"workflow"`
	Executions []PipelineExecution `json:"executions"`
	Names      []string            `json:"names,omitempty"`
}

// PipelineExecution mirrors the derived execution descriptor for output.
type PipelineExecution struct {
	PatientID                  string `json:"patientId,omitempty"`
	PipelineID                 string `json:"pipelineId,omitempty"`
	PipelineRunID              string `json:"pipelineRunId,omitempty"`
	TriggeringScanID           string `json:"triggeringScanId,omitempty"`
	TriggeringStudyInstanceUID string `json:"triggeringStudyInstanceUid,omitempty"`
	TriggeringUploadSessionID  string `json:"triggeringUploadSessionId,omitempty"`
}

// TimelineReport is the result of the timeline command.
type TimelineReport struct {
	Buckets []TimelineBucket `json:"buckets"`
}

// TimelineBucket groups resources sharing an age bucket.
type TimelineBucket struct {
	Bucket    string   `json:"bucket"`
	Resources []string `json:"resources"`
}

// getClientFunc is the function used to create a Kubernetes dynamic client.
// It can be overridden in tests to inject a fake client.
var getClientFunc = defaultGetClient

func getClient() (dynamic.Interface, error) {
	return getClientFunc()
}

func defaultGetClient() (dynamic.Interface, error) {
	// Use in-cluster config or kubeconfig
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		rules,
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
	if err != nil {
		return nil, err
	}

	return dynamic.NewForConfig(config)
}

// outputResult outputs the result in the specified format.
func outputResult(result interface{}, format string) error {
	switch format {
	case "json":
		return outputJSON(result)
	case "yaml":
		return outputYAML(result)
	default:
		return outputTable(result)
	}
}

func outputJSON(result interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputYAML(result interface{}) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func outputTable(result interface{}) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch r := result.(type) {
	case StatusReport:
		return outputStatusTable(w, r)
	case PipelineReport:
		return outputPipelineTable(w, r)
	case TimelineReport:
		return outputTimelineTable(w, r)
	default:
		// Fall back to JSON for unknown types
		return outputJSON(result)
	}
}

func outputStatusTable(w *tabwriter.Writer, r StatusReport) error {
	fmt.Fprintf(w, "TOTAL\t%d\n\n", r.Total)
	fmt.Fprintln(w, "NAMESPACE\tNAME\tKIND\tAGE\tSTATUS\tSEVERITY")
	for _, res := range r.Resources {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Namespace, res.Name, res.Kind, res.Age, res.Label, res.Severity)
	}
	return nil
}

func outputPipelineTable(w *tabwriter.Writer, r PipelineReport) error {
	fmt.Fprintf(w, "WORKFLOW\t%s\n", r.Workflow)
	if len(r.Names) > 0 {
		fmt.Fprintf(w, "PIPELINES\t%s\n", strings.Join(r.Names, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PIPELINE\tRUN\tPATIENT\tSCAN\tSESSION")
	for _, e := range r.Executions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.PipelineID, e.PipelineRunID, e.PatientID, e.TriggeringScanID, e.TriggeringUploadSessionID)
	}
	return nil
}

func outputTimelineTable(w *tabwriter.Writer, r TimelineReport) error {
	for _, b := range r.Buckets {
		fmt.Fprintf(w, "%s\t(%d)\n", b.Bucket, len(b.Resources))
		for _, name := range b.Resources {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	return nil
}
