package adapters

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/momentics/hioload-wire/control"
	"github.com/momentics/hioload-wire/protocol"
)

type recordWriter struct {
	ops      []protocol.Opcode
	payloads [][]byte
}

func (r *recordWriter) WriteMessage(op protocol.Opcode, payload []byte) error {
	r.ops = append(r.ops, op)
	r.payloads = append(r.payloads, append([]byte(nil), payload...))
	return nil
}

func TestMiddlewareOrder(t *testing.T) {
	var trace []string
	tag := func(name string) func(Handler) Handler {
		return func(next Handler) Handler {
			return HandlerFunc(func(w Writer, msg Message) error {
				trace = append(trace, name)
				return next.Handle(w, msg)
			})
		}
	}
	h := NewMiddlewareHandler(EchoHandler).Use(tag("outer")).Use(tag("inner"))

	w := &recordWriter{}
	if err := h.Handle(w, Message{Opcode: protocol.OpcodeText, Final: true, Payload: []byte("hi")}); err != nil {
		t.Fatal(err)
	}
	if len(trace) != 2 || trace[0] != "outer" || trace[1] != "inner" {
		t.Errorf("trace = %v", trace)
	}
	if len(w.ops) != 1 || w.ops[0] != protocol.OpcodeText || !bytes.Equal(w.payloads[0], []byte("hi")) {
		t.Errorf("echo wrote %v %q", w.ops, w.payloads)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := NewMiddlewareHandler(HandlerFunc(func(Writer, Message) error { panic("boom") })).
		Use(RecoveryMiddleware)
	if err := h.Handle(&recordWriter{}, Message{}); err == nil {
		t.Fatal("panic not converted to error")
	}

	want := errors.New("plain")
	h = NewMiddlewareHandler(HandlerFunc(func(Writer, Message) error { return want })).
		Use(RecoveryMiddleware)
	if err := h.Handle(&recordWriter{}, Message{}); !errors.Is(err, want) {
		t.Errorf("err = %v", err)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := control.NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	h := NewMiddlewareHandler(EchoHandler).Use(MetricsMiddleware(m))
	for i := 0; i < 3; i++ {
		if err := h.Handle(&recordWriter{}, Message{Opcode: protocol.OpcodeBinary}); err != nil {
			t.Fatal(err)
		}
	}
	n, err := testutil.GatherAndCount(reg, "hioload_wire_frames_total")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("series = %d", n)
	}
}
