// Package gpbridge bridges an external geoprocessing runtime's diagnostics
// into a leveled logging facility.
//
// The runtime owns a proprietary message-severity vocabulary, an ambient
// buffer holding the last invocation's messages, and a process-wide failure
// threshold. gpbridge merges those into ordinary Go logging:
//
//   - pkg/logging maps the runtime's numeric severity codes onto named log
//     levels, shifting codes that collide with the reserved NOTSET sentinel,
//     and writes both the workflow narration stream and the relayed
//     tool-message stream in a fixed, alignable line format.
//
//   - pkg/bridge wraps tool invocations: each call's signature is logged,
//     the failure threshold is raised for the duration of the call and
//     restored on every exit path, every message the runtime produced is
//     relayed in order at its mapped level, and failures are re-raised to
//     the caller after diagnostics are recorded.
//
//   - pkg/gp defines the runtime surface and ships an in-memory stub for
//     tests and starter workflows.
//
// cmd/gpbridge is a ready-to-adapt starter workflow wiring the pieces
// together behind a small CLI.
package gpbridge
