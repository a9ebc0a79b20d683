// Package api handles incoming HTTP requests, request validation and response
// formatting. It adapts the triage service to JSON over HTTP: handlers decode
// and validate input, call one service intent, and map service errors to
// status codes without leaking internal detail.
package api
