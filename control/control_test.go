package control

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/momentics/hioload-wire/httpmsg"
	"github.com/momentics/hioload-wire/protocol"
)

func TestParseConfigOverDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"listen_addr":"127.0.0.1:8080","status_text":{"500":"Internal Server Error"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("listen_addr = %q", cfg.ListenAddr)
	}
	if cfg.MaxFramePayload != DefaultConfig().MaxFramePayload {
		t.Errorf("default not kept: %d", cfg.MaxFramePayload)
	}
	table := cfg.StatusTable()
	if table.Text(httpmsg.StatusNotImplemented) != "Internal Server Error" {
		t.Errorf("override missing: %q", table.Text(httpmsg.StatusNotImplemented))
	}
	if table.Text(httpmsg.StatusOK) != "OK" {
		t.Error("defaults lost")
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	bad := []string{
		`{"listen_addr":""}`,
		`{"max_header_bytes":0}`,
		`{"max_frame_payload":0}`,
		`{"status_text":{"42":"nope"}}`,
		`{not json`,
	}
	for _, in := range bad {
		if _, err := ParseConfig([]byte(in)); !errors.Is(err, errInvalidConfig) {
			t.Errorf("%s: err = %v", in, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.json")
	if err := os.WriteFile(path, []byte(`{"server_name":"edge-1"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerName != "edge-1" {
		t.Errorf("server_name = %q", cfg.ServerName)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestConfigStoreUpdate(t *testing.T) {
	cs := NewConfigStore(DefaultConfig())
	var got []string
	cs.OnReload(func(c Config) { got = append(got, c.ServerName) })

	next := DefaultConfig()
	next.ServerName = "reloaded"
	next.StatusText = map[int]string{418: "teapot"}
	if err := cs.Update(next); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "reloaded" {
		t.Errorf("listeners saw %v", got)
	}

	snap := cs.Snapshot()
	snap.StatusText[418] = "mutated"
	if cs.Snapshot().StatusText[418] != "teapot" {
		t.Error("snapshot aliases store state")
	}

	invalid := DefaultConfig()
	invalid.ListenAddr = ""
	if err := cs.Update(invalid); err == nil {
		t.Error("invalid config accepted")
	}
	if cs.Snapshot().ServerName != "reloaded" || len(got) != 1 {
		t.Error("invalid update applied")
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}

	m.ObserveRequest(nil)
	m.ObserveRequest(httpmsg.ErrUnknownMethod)
	m.ObserveRequest(httpmsg.ErrUnknownMethod.WithContext("offset", 0))
	m.ObserveResponse(httpmsg.ErrNeedRedirectURI)
	m.ObserveHandshake(protocol.ErrMissingKey)
	m.ObserveFrame(DirectionIn, protocol.OpcodeText)
	m.ObserveFrame(DirectionIn, protocol.OpcodeText)
	m.ObserveFrame(DirectionOut, protocol.OpcodeClose)

	checks := []struct {
		c    prometheus.Collector
		want float64
	}{
		{m.requests.WithLabelValues("ok"), 1},
		{m.requests.WithLabelValues("unknown_method"), 2},
		{m.responses.WithLabelValues("need_redirect_uri"), 1},
		{m.handshakes.WithLabelValues("missing_key"), 1},
		{m.frames.WithLabelValues(DirectionIn, "text"), 2},
		{m.frames.WithLabelValues(DirectionOut, "close"), 1},
	}
	for i, c := range checks {
		if got := testutil.ToFloat64(c.c); got != c.want {
			t.Errorf("check %d: got %v, want %v", i, got, c.want)
		}
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("duplicate registration accepted")
	}
}
