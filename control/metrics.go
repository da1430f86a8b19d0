// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus counters for wire-level outcomes. Results are labelled with
// api.ErrorCode names, so "ok" is the success label everywhere.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-wire/api"
	"github.com/momentics/hioload-wire/protocol"
)

// Frame directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Metrics groups the counters a host updates per request, response and frame.
type Metrics struct {
	requests   *prometheus.CounterVec
	responses  *prometheus.CounterVec
	handshakes *prometheus.CounterVec
	frames     *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hioload_wire",
			Name:      "requests_total",
			Help:      "Request preambles parsed, by result.",
		}, []string{"result"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hioload_wire",
			Name:      "responses_total",
			Help:      "Response preambles built, by result.",
		}, []string{"result"}),
		handshakes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hioload_wire",
			Name:      "handshakes_total",
			Help:      "WebSocket upgrade attempts, by result.",
		}, []string{"result"}),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hioload_wire",
			Name:      "frames_total",
			Help:      "WebSocket frames decoded or encoded, by direction and opcode.",
		}, []string{"direction", "opcode"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.responses, m.handshakes, m.frames} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRequest counts one ParseRequest outcome.
func (m *Metrics) ObserveRequest(err error) {
	m.requests.WithLabelValues(api.CodeOf(err).String()).Inc()
}

// ObserveResponse counts one ResponseBuilder.Build outcome.
func (m *Metrics) ObserveResponse(err error) {
	m.responses.WithLabelValues(api.CodeOf(err).String()).Inc()
}

// ObserveHandshake counts one upgrade outcome.
func (m *Metrics) ObserveHandshake(err error) {
	m.handshakes.WithLabelValues(api.CodeOf(err).String()).Inc()
}

// ObserveFrame counts one frame.
func (m *Metrics) ObserveFrame(direction string, op protocol.Opcode) {
	m.frames.WithLabelValues(direction, op.String()).Inc()
}
