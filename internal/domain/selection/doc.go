// Package selection implements the replacement strategy used when an active
// task is dismissed: given a backlog pool, the task being dismissed, and the
// board's selection mode, it picks which backlog task takes the free slot.
//
// The core function, Select, is pure. It never mutates the pool or the
// reference task, and the only non-determinism (Chaos mode) comes from an
// injected RandomSource so callers and tests control it.
package selection
