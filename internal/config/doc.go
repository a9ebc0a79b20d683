// Package config loads server settings from defaults, an optional config.yaml
// in the working directory and TRIAGE_* environment variables, in increasing
// order of precedence, and validates the result before anything starts.
package config
