package wireblob

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/casperakos/kubesail-sub001/internal/types"
)

// parameter name substrings identifying the encoded blob, in precedence order.
var blobNameHints = []string{"dicom-extract", "base64", "msg-bytes"}

var (
	// UUID-shaped ASCII run (8-4-4-4-12 hex groups), anywhere in the buffer.
	uploadSessionPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

	// Token immediately preceding a raw 0x12 tag byte, itself preceded by a
	// newline/carriage-return boundary.
	patientPattern = regexp.MustCompile(`[\r\n]([0-9A-Za-z_-]+)\x12`)

	// Digit/dot run between 0x12 0x08 and the next 0x1a.
	studyPattern = regexp.MustCompile(`\x12\x08([0-9.]+)\x1a`)

	// Digit/dot/underscore run between 0x1a 0x12 and the next 0x22.
	scanPattern = regexp.MustCompile(`\x1a\x12([0-9._]+)\x22`)

	// Digit/dot run between 0x22 0x09 and the next 0x2a.
	seriesPattern = regexp.MustCompile(`\x22\x09([0-9.]+)\x2a`)

	// Alphanumeric/dash run between 0x2a 0x04 and end-of-buffer.
	namespacePattern = regexp.MustCompile(`\x2a\x04([0-9A-Za-z-]+)`)
)

// Diagnostic explains why all or part of a decode produced no data.
// Diagnostics replace side-effecting logs so callers can inspect, surface,
// or drop them as they see fit.
type Diagnostic struct {
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// Decode extracts identifiers from the first parameter that looks like the
// encoded blob. Returns (nil, diags) when no candidate parameter exists or
// its value is not valid base64. A non-nil result may still have any subset
// of its fields empty; per-field pattern misses are normal and produce no
// diagnostics.
func Decode(params []types.Parameter) (result *types.DecodedParameters, diags []Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			diags = append(diags, Diagnostic{
				Reason: "pattern-engine",
				Detail: fmt.Sprintf("%v", r),
			})
		}
	}()

	value, found := selectBlobParameter(params)
	if !found {
		return nil, []Diagnostic{{Reason: "no-parameter"}}
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, []Diagnostic{{Reason: "base64", Detail: err.Error()}}
	}

	decoded := &types.DecodedParameters{
		UploadSessionID:   firstMatch(uploadSessionPattern, raw, 0),
		PatientID:         firstMatch(patientPattern, raw, 1),
		StudyInstanceUID:  firstMatch(studyPattern, raw, 1),
		ScanID:            firstMatch(scanPattern, raw, 1),
		SeriesInstanceUID: firstMatch(seriesPattern, raw, 1),
		Namespace:         firstMatch(namespacePattern, raw, 1),
	}
	return decoded, nil
}

// selectBlobParameter picks the encoded parameter by name-substring hint,
// honoring hint precedence over parameter order.
func selectBlobParameter(params []types.Parameter) (string, bool) {
	for _, hint := range blobNameHints {
		for _, p := range params {
			if strings.Contains(p.Name, hint) {
				return p.Value, true
			}
		}
	}
	return "", false
}

// firstMatch returns the given capture group of the first match, or "".
func firstMatch(re *regexp.Regexp, buf []byte, group int) string {
	m := re.FindSubmatch(buf)
	if m == nil || group >= len(m) {
		return ""
	}
	return string(m[group])
}
