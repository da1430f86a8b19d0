// File: adapters/handler_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Message handler glue and middleware for hosts serving decoded frames.

package adapters

import (
	"fmt"
	"log"

	"github.com/momentics/hioload-wire/control"
	"github.com/momentics/hioload-wire/protocol"
)

// Message is one decoded and unmasked data or control frame.
type Message struct {
	Opcode  protocol.Opcode
	Final   bool
	Payload []byte
}

// Writer sends a single frame back to the peer.
type Writer interface {
	WriteMessage(op protocol.Opcode, payload []byte) error
}

// Handler processes one inbound message.
type Handler interface {
	Handle(w Writer, msg Message) error
}

// HandlerFunc converts a function into a Handler.
type HandlerFunc func(w Writer, msg Message) error

// Handle calls the underlying function.
func (f HandlerFunc) Handle(w Writer, msg Message) error {
	return f(w, msg)
}

// MiddlewareHandler wraps a base Handler and applies middleware in chain.
type MiddlewareHandler struct {
	handler    Handler
	middleware []func(Handler) Handler
}

// NewMiddlewareHandler creates a new MiddlewareHandler for the given base handler.
func NewMiddlewareHandler(handler Handler) *MiddlewareHandler {
	return &MiddlewareHandler{handler: handler}
}

// Use appends a middleware to the chain. The first middleware added runs outermost.
func (m *MiddlewareHandler) Use(mw func(Handler) Handler) *MiddlewareHandler {
	m.middleware = append(m.middleware, mw)
	return m
}

// Handle applies all middleware then calls the base handler.
func (m *MiddlewareHandler) Handle(w Writer, msg Message) error {
	handler := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		handler = m.middleware[i](handler)
	}
	return handler.Handle(w, msg)
}

// EchoHandler writes every data message back with the same opcode.
var EchoHandler = HandlerFunc(func(w Writer, msg Message) error {
	return w.WriteMessage(msg.Opcode, msg.Payload)
})

// LoggingMiddleware logs each message and any handler error.
func LoggingMiddleware(prefix string) func(Handler) Handler {
	return func(next Handler) Handler {
		return HandlerFunc(func(w Writer, msg Message) error {
			log.Printf("%s %s frame, %d bytes", prefix, msg.Opcode, len(msg.Payload))
			err := next.Handle(w, msg)
			if err != nil {
				log.Printf("%s handler error: %v", prefix, err)
			}
			return err
		})
	}
}

// RecoveryMiddleware turns a handler panic into an error.
func RecoveryMiddleware(next Handler) Handler {
	return HandlerFunc(func(w Writer, msg Message) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("adapters: handler panic: %v", r)
			}
		}()
		return next.Handle(w, msg)
	})
}

// MetricsMiddleware counts every inbound message on m.
func MetricsMiddleware(m *control.Metrics) func(Handler) Handler {
	return func(next Handler) Handler {
		return HandlerFunc(func(w Writer, msg Message) error {
			m.ObserveFrame(control.DirectionIn, msg.Opcode)
			return next.Handle(w, msg)
		})
	}
}
