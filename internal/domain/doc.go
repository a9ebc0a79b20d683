// Package domain contains the core triage entities: tasks, the three
// collections a task can live in, and the board that holds them together
// with the active selection mode. It is independent of any storage or
// delivery mechanism.
package domain
