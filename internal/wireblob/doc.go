// Package wireblob recovers structured business identifiers from the
// base64-encoded binary argument attached to ingest workflows.
//
// # Contract
//
// The blob is an undocumented, protobuf-like encoding. No schema is
// available; extraction relies on positional byte patterns reverse-engineered
// from sample payloads. Specific byte values (0x12, 0x1a, 0x22, 0x2a, ...)
// are treated as field delimiters.
//
// Every field is independently optional:
//   - a missed pattern leaves that field empty and never aborts the others
//   - invalid base64 or an absent source parameter yields a nil result
//   - Decode never panics; failures are reported as Diagnostic values
//
// Extracted values are advisory, not authoritative. The delimiters are
// heuristics and are not guaranteed to generalize to payloads the samples
// did not cover.
package wireblob
