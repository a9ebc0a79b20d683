// Package events provides types and interfaces for observing board changes.
//
// The triage service emits an event after every committed intent, so
// observers such as loggers or a presentation layer can react without
// polling. Emitters know nothing about their handlers.
//
// The primary components are:
// - BoardEvent: describes one committed change to the board
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
