package pipeline

import (
	"encoding/json"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/casperakos/kubesail-sub001/internal/types"
	"github.com/casperakos/kubesail-sub001/internal/util"
	"github.com/casperakos/kubesail-sub001/internal/wireblob"
)

// scan-filter node display names, with and without the retry suffix.
var scanFilterNames = map[string]bool{
	"scan-filter":    true,
	"scan-filter(0)": true,
}

const selectedPipelinesParam = "selected-pipelines"

// Correlator derives pipeline executions from workflow resources.
type Correlator struct {
	logger *zap.Logger
}

// New creates a Correlator.
func New(logger *zap.Logger) *Correlator {
	return &Correlator{logger: logger.Named("pipeline")}
}

// Correlate returns the pipeline executions triggered by the given workflow
// resource, in deterministic order. Missing or malformed data yields an
// empty slice, never an error.
func (c *Correlator) Correlate(res types.CustomResource) []types.PipelineExecution {
	results := c.fromScanFilterNodes(res)

	if len(results) == 0 {
		// Fallback: synthesize a single execution from the argument blob.
		decoded := c.decodeArguments(res)
		if decoded != nil && (decoded.PatientID != "" || decoded.UploadSessionID != "") {
			results = append(results, types.PipelineExecution{
				PatientID:                  decoded.PatientID,
				TriggeringScanID:           decoded.ScanID,
				TriggeringStudyInstanceUID: decoded.StudyInstanceUID,
				TriggeringUploadSessionID:  decoded.UploadSessionID,
			})
		}
		return results
	}

	// Backfill patient IDs the node output omits.
	needsPatient := false
	for i := range results {
		if results[i].PatientID == "" {
			needsPatient = true
			break
		}
	}
	if needsPatient {
		if decoded := c.decodeArguments(res); decoded != nil && decoded.PatientID != "" {
			for i := range results {
				if results[i].PatientID == "" {
					results[i].PatientID = decoded.PatientID
				}
			}
		}
	}
	return results
}

// Names returns the deduplicated, order-preserving list of normalized
// pipeline names for tag display. Normalization strips the leading
// PIPELINE_ID_ (or PIPELINE_) prefix case-insensitively.
func (c *Correlator) Names(executions []types.PipelineExecution) []string {
	var names []string
	for _, e := range executions {
		if e.PipelineID == "" {
			continue
		}
		names = append(names, NormalizeName(e.PipelineID))
	}
	return util.UniqueStrings(names)
}

// NormalizeName strips the machine prefix from a pipeline identifier.
func NormalizeName(id string) string {
	upper := strings.ToUpper(id)
	if strings.HasPrefix(upper, "PIPELINE_ID_") {
		return id[len("PIPELINE_ID_"):]
	}
	if strings.HasPrefix(upper, "PIPELINE_") {
		return id[len("PIPELINE_"):]
	}
	return id
}

// fromScanFilterNodes walks status.nodes for scan-filter outputs. Node maps
// are iterated in sorted key order so results are deterministic.
func (c *Correlator) fromScanFilterNodes(res types.CustomResource) []types.PipelineExecution {
	nodes := util.SafeNestedMap(res.Status, "nodes")
	if nodes == nil {
		return nil
	}

	keys := make([]string, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var results []types.PipelineExecution
	for _, key := range keys {
		node, ok := nodes[key].(map[string]interface{})
		if !ok {
			continue
		}
		if !scanFilterNames[util.SafeStringFromMap(node, "displayName")] {
			continue
		}

		value, found := selectedPipelines(node)
		if !found {
			continue
		}

		parsed, err := parseSelectedPipelines(value)
		if err != nil {
			c.logger.Warn("Unparseable selected-pipelines output",
				zap.String("workflow", res.Name),
				zap.String("node", key),
				zap.Error(err),
			)
			continue
		}
		results = append(results, parsed...)
	}
	return results
}

// selectedPipelines returns the selected-pipelines output parameter value.
func selectedPipelines(node map[string]interface{}) (string, bool) {
	params := util.SafeNestedSlice(node, "outputs", "parameters")
	for _, p := range params {
		m, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		if util.SafeStringFromMap(m, "name") == selectedPipelinesParam {
			return util.SafeStringFromMap(m, "value"), true
		}
	}
	return "", false
}

// parseSelectedPipelines accepts either a JSON array of executions or a
// single execution object, which is wrapped in a one-element list.
func parseSelectedPipelines(value string) ([]types.PipelineExecution, error) {
	var list []types.PipelineExecution
	if err := json.Unmarshal([]byte(value), &list); err == nil {
		return list, nil
	}

	var single types.PipelineExecution
	if err := json.Unmarshal([]byte(value), &single); err != nil {
		return nil, err
	}
	return []types.PipelineExecution{single}, nil
}

// decodeArguments runs the blob decoder over the workflow's argument
// parameters, logging diagnostics at debug level.
func (c *Correlator) decodeArguments(res types.CustomResource) *types.DecodedParameters {
	decoded, diags := wireblob.Decode(res.SpecParameters())
	for _, d := range diags {
		c.logger.Debug("Argument blob decode diagnostic",
			zap.String("workflow", res.Name),
			zap.String("reason", d.Reason),
			zap.String("detail", d.Detail),
		)
	}
	return decoded
}
