// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable buffers for connection hosts.
// Read buffers are recycled between connections so a busy accept loop does
// not allocate a fresh preamble buffer per client.
package pool
