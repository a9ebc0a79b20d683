// Package store defines the interface for holding triage state.
// It abstracts how the board is kept and how mutations are serialized from
// the service layer, so the rotation rules stay independent of the
// concurrency mechanism behind them.
package store
