// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-wire/pool"
)

// MinRead is the free space guaranteed before each read.
const MinRead = 4096

// ErrInterrupted is returned by Fill once Interrupt has been called.
var ErrInterrupted = errors.New("transport: connection interrupted")

// NetConn couples a net.Conn with a pooled, growable read buffer. Parsers
// work on Buffered() in place; the host calls Discard once a unit is consumed.
type NetConn struct {
	conn net.Conn
	pool *pool.BytePool
	buf  *[]byte
	idle time.Duration

	interrupted atomic.Bool
}

// NewNetConn initializes a new NetConn. idle bounds every Fill; zero disables it.
func NewNetConn(conn net.Conn, bp *pool.BytePool, idle time.Duration) *NetConn {
	return &NetConn{
		conn: conn,
		pool: bp,
		buf:  bp.GetBuffer(),
		idle: idle,
	}
}

// Buffered returns the unconsumed bytes read so far. The slice is valid
// until the next Fill, Discard or Close.
func (n *NetConn) Buffered() []byte {
	return *n.buf
}

// Fill performs one read, appending to the buffer.
func (n *NetConn) Fill() (int, error) {
	if n.idle > 0 {
		n.conn.SetReadDeadline(time.Now().Add(n.idle))
	}
	// checked after arming the deadline so a concurrent Interrupt always wins
	if n.interrupted.Load() {
		return 0, ErrInterrupted
	}
	b := *n.buf
	if cap(b)-len(b) < MinRead {
		grown := make([]byte, len(b), 2*cap(b)+MinRead)
		copy(grown, b)
		b = grown
	}
	k, err := n.conn.Read(b[len(b):cap(b)])
	*n.buf = b[:len(b)+k]
	if err != nil && n.interrupted.Load() {
		err = ErrInterrupted
	}
	return k, err
}

// Interrupt makes a pending Fill return promptly and every later Fill fail
// with ErrInterrupted. Writes are unaffected. Safe to call from any goroutine.
func (n *NetConn) Interrupt() {
	n.interrupted.Store(true)
	n.conn.SetReadDeadline(time.Now())
}

// Discard drops the first k buffered bytes.
func (n *NetConn) Discard(k int) {
	b := *n.buf
	if k >= len(b) {
		*n.buf = b[:0]
		return
	}
	*n.buf = b[:copy(b, b[k:])]
}

// Write sends buf as is.
func (n *NetConn) Write(buf []byte) (int, error) {
	return n.conn.Write(buf)
}

// WriteBuffers sends the slices in order, using writev where available.
func (n *NetConn) WriteBuffers(bufs ...[]byte) error {
	nb := net.Buffers(bufs)
	_, err := nb.WriteTo(n.conn)
	return err
}

// RemoteAddr returns the peer address.
func (n *NetConn) RemoteAddr() net.Addr {
	return n.conn.RemoteAddr()
}

// Close returns the buffer to the pool and closes the connection.
func (n *NetConn) Close() error {
	if n.buf != nil {
		n.pool.PutBuffer(n.buf)
		n.buf = nil
	}
	return n.conn.Close()
}
