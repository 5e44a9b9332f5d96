// Package harness runs batches of generated instances through CLE and
// Frank (both Phase-II extractors), cross-checks the three resulting
// costs and the dual-feasibility certificate, and accumulates a tabular
// TestReport one row per case, mirroring the volume-testing driver the
// reference implementation ran ad hoc.
package harness
