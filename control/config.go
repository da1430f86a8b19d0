// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed host configuration with JSON loading and a thread-safe snapshot store.

package control

import (
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/momentics/hioload-wire/api"
	"github.com/momentics/hioload-wire/httpmsg"
)

// Config holds the host settings consumed by the example servers.
type Config struct {
	ListenAddr  string `json:"listen_addr"`
	MetricsAddr string `json:"metrics_addr"`
	ServerName  string `json:"server_name"`
	AuthRealm   string `json:"auth_realm"`

	// MaxHeaderBytes bounds the request preamble a host buffers before parsing.
	MaxHeaderBytes int `json:"max_header_bytes"`

	// MaxFramePayload bounds the payload a host accepts in one frame.
	MaxFramePayload uint64 `json:"max_frame_payload"`

	// StatusText overrides or extends the reason-phrase table.
	StatusText map[int]string `json:"status_text,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      ":9001",
		MetricsAddr:     ":9101",
		ServerName:      "hioload-wire",
		AuthRealm:       "hioload",
		MaxHeaderBytes:  8192,
		MaxFramePayload: 1 << 20,
	}
}

var errInvalidConfig = api.NewError(api.ErrCodeInvalidConfig, "control: invalid config")

// Validate checks that every field is usable.
func (c Config) Validate() error {
	switch {
	case c.ListenAddr == "":
		return errInvalidConfig.WithContext("field", "listen_addr")
	case c.MaxHeaderBytes <= 0:
		return errInvalidConfig.WithContext("field", "max_header_bytes")
	case c.MaxFramePayload == 0:
		return errInvalidConfig.WithContext("field", "max_frame_payload")
	}
	for code := range c.StatusText {
		if code < 100 || code > 999 {
			return errInvalidConfig.WithContext("field", "status_text").WithContext("code", code)
		}
	}
	return nil
}

// StatusTable returns the default reason phrases overlaid with StatusText.
func (c Config) StatusTable() httpmsg.StatusTable {
	overrides := make(map[httpmsg.StatusCode]string, len(c.StatusText))
	for code, text := range c.StatusText {
		overrides[httpmsg.StatusCode(code)] = text
	}
	return httpmsg.DefaultStatusTable().Extend(overrides)
}

// ParseConfig decodes JSON over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errInvalidConfig.WithContext("cause", err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a JSON config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ConfigStore holds the current Config and notifies listeners on update.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg.
func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{config: cfg}
}

// Snapshot returns a copy of the current config.
func (cs *ConfigStore) Snapshot() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	cfg := cs.config
	if cs.config.StatusText != nil {
		cfg.StatusText = make(map[int]string, len(cs.config.StatusText))
		for k, v := range cs.config.StatusText {
			cfg.StatusText[k] = v
		}
	}
	return cfg
}

// Update validates and installs cfg, then calls every listener with it.
func (cs *ConfigStore) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cs.mu.Lock()
	cs.config = cfg
	listeners := make([]func(Config), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// OnReload registers a listener called after each successful Update.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
