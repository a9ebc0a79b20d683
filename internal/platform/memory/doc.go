// Package memory provides the in-process implementation of store.BoardStore.
// State lives only for the lifetime of the process.
package memory
