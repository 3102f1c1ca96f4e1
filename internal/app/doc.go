// Package app wires the LabPulse server together: configuration, logging,
// the analytics service, the HTTP router with its middleware chain, and
// graceful startup and shutdown.
package app
