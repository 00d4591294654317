package types

// Severity is the canonical five-way classification used to drive consistent
// status presentation across unrelated controllers.
type Severity string

const (
	SeveritySuccess     Severity = "Success"
	SeverityWarning     Severity = "Warning"
	SeverityFailure     Severity = "Failure"
	SeverityProgressing Severity = "Progressing"
	SeverityUnknown     Severity = "Unknown"
)

// StatusResult is the normalized status derived from a CustomResource.
// Every resource maps to exactly one StatusResult; the mapping is total
// and deterministic.
type StatusResult struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Unknown is the terminal result for resource shapes the cascade does not
// recognize. Absence of data is a valid display state, not an error.
func Unknown() StatusResult {
	return StatusResult{Label: "Unknown", Severity: SeverityUnknown}
}

// DecodedParameters holds the business identifiers recovered from the
// binary-encoded workflow argument blob. Every field is independently
// optional; an empty string means its pattern did not match.
type DecodedParameters struct {
	PatientID         string `json:"patientId,omitempty"`
	UploadSessionID   string `json:"uploadSessionId,omitempty"`
	StudyInstanceUID  string `json:"studyInstanceUid,omitempty"`
	ScanID            string `json:"scanId,omitempty"`
	SeriesInstanceUID string `json:"seriesInstanceUid,omitempty"`
	Namespace         string `json:"namespace,omitempty"`
}

// PipelineExecution identifies one triggered processing pipeline and the
// business identifiers that initiated it. Derived per workflow resource,
// never persisted. The JSON tags match the snake_case keys the scan-filter
// node emits in its selected-pipelines output.
type PipelineExecution struct {
	PatientID                  string `json:"patient_id,omitempty"`
	PipelineID                 string `json:"pipeline_id,omitempty"`
	PipelineRunID              string `json:"pipeline_run_id,omitempty"`
	TriggeringScanID           string `json:"triggering_scan_id,omitempty"`
	TriggeringStudyInstanceUID string `json:"triggering_study_instance_uid,omitempty"`
	TriggeringUploadSessionID  string `json:"triggering_upload_session_id,omitempty"`
}
