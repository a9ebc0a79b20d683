// Package triage implements the task-rotation intents: adding tasks,
// dismissing active tasks, and changing the selection mode.
//
// Every intent runs as one store transaction, so the read-classify-select-splice
// sequence of a dismissal is never interleaved with another mutation. Results
// are returned as explicit values; validation failures are sentinel errors the
// caller can tell apart from "applied".
package triage
