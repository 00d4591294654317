// Package pipeline derives pipeline-execution descriptors for ingest
// workflows by merging two sources of truth:
//
//  1. The scan-filter node's selected-pipelines output: authoritative JSON
//     emitted by the workflow itself.
//  2. The decoded workflow argument blob: best-effort identifiers recovered
//     by the wireblob package, used as fallback when the node output is
//     missing and to backfill patient IDs the node output omits.
//
// JSON parse errors on node outputs are logged as non-fatal diagnostics and
// treated as "no primary data"; Correlate never returns an error.
package pipeline
