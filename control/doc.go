// Package control
// Author: momentics <momentics@gmail.com>
//
// Host-side configuration and runtime metrics for servers embedding hioload-wire.
//
// Provides:
//   - Typed configuration loaded from JSON, validated before use
//   - A snapshot store with reload listeners for configuration updates
//   - Prometheus counters for parse, build, handshake and frame outcomes
//
// The wire packages themselves hold no configuration or counters; hosts feed
// results into this package.
package control
