// Package timeouts defines shared timeout constants used across services.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// BackendRequest caps the time allowed for a single call from the admin
// surface to the FAQ backend.
const BackendRequest = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ActivityWrite caps a single write to the admin activity store.
const ActivityWrite = 2 * time.Second
