// Package http provides the HTTP transport layer for the LabPulse API.
//
// # Structure
//
// Handlers are thin adapters: they decode and validate request bodies,
// guard input sizes, delegate to the services layer, and render JSON
// responses. All error responses go through the shared error handler so
// clients always see the same structured shape.
//
// # Routes
//
// AnalyticsHandler mounts the statistics, forecasting, anomaly and
// staffing operations under the version prefix. HealthHandler serves the
// liveness and version probes.
package http
