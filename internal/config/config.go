// Package config resolves the bridge's runtime settings from environment
// variables and CLI flags, with flags taking precedence over env vars
// (spec §4.7/ambient configuration). There is no config file format — the
// source tool this bridges similarly takes everything from environment
// and invocation arguments.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds every tunable the bridge needs at startup.
type Config struct {
	OSCHost        string
	OSCSendPort    int
	OSCReceivePort int
	RequestTimeout time.Duration
	ProbeTimeout   time.Duration
	LogLevel       string
	LogFile        string
	HTTPAddr       string
	DebugWSAddr    string
}

// Defaults mirror AbletonOSC's stock port assignment.
const (
	DefaultOSCHost        = "127.0.0.1"
	DefaultOSCSendPort    = 11000
	DefaultOSCReceivePort = 11001
	DefaultRequestTimeout = 2 * time.Second
	DefaultProbeTimeout   = 3 * time.Second
	DefaultLogLevel       = "info"
	DefaultHTTPAddr       = ":8719"
)

// Load reads environment variables first, then lets flag.FlagSet entries
// on top of fs override them. Call fs.Parse(args) after Load returns to
// finish flag parsing; Load only registers the flags and seeds their
// defaults from the environment.
func Load(fs *flag.FlagSet) *Config {
	cfg := &Config{
		OSCHost:        envOr("ABLETON_OSC_HOST", DefaultOSCHost),
		OSCSendPort:    envIntOr("ABLETON_OSC_SEND_PORT", DefaultOSCSendPort),
		OSCReceivePort: envIntOr("ABLETON_OSC_RECEIVE_PORT", DefaultOSCReceivePort),
		RequestTimeout: envDurationOr("ABLETON_OSC_TIMEOUT", DefaultRequestTimeout),
		ProbeTimeout:   envDurationOr("ABLETON_OSC_PROBE_TIMEOUT", DefaultProbeTimeout),
		LogLevel:       envOr("ABLETON_OSC_LOG_LEVEL", DefaultLogLevel),
		LogFile:        envOr("ABLETON_OSC_LOG_FILE", ""),
		HTTPAddr:       envOr("ABLETON_OSC_HTTP_ADDR", DefaultHTTPAddr),
		DebugWSAddr:    envOr("ABLETON_OSC_DEBUG_WS_ADDR", ""),
	}

	fs.StringVar(&cfg.OSCHost, "osc-host", cfg.OSCHost, "DAW host for outbound OSC")
	fs.IntVar(&cfg.OSCSendPort, "osc-send-port", cfg.OSCSendPort, "UDP port the DAW's remote script listens on")
	fs.IntVar(&cfg.OSCReceivePort, "osc-receive-port", cfg.OSCReceivePort, "UDP port this bridge listens on for replies")
	fs.DurationVar(&cfg.RequestTimeout, "osc-timeout", cfg.RequestTimeout, "per-request correlator timeout")
	fs.DurationVar(&cfg.ProbeTimeout, "probe-timeout", cfg.ProbeTimeout, "connect_ableton liveness probe timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs here instead of stderr (empty logs to stderr)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "address for the health/status HTTP surface (empty disables)")
	fs.StringVar(&cfg.DebugWSAddr, "debug-ws-addr", cfg.DebugWSAddr, "address for the optional websocket debug console (empty disables)")

	return cfg
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDurationOr(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
