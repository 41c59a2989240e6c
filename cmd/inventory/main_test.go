package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sir_venger/inventory_lite/internal/config"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name      string
		addr      string
		host      string
		port      int
		cache     string
		wantAddr  string
		wantCache string
	}{
		{name: "no flags", addr: ":3000", wantAddr: ":3000", wantCache: "./cache"},
		{name: "port only", addr: ":3000", port: 8080, wantAddr: ":8080", wantCache: "./cache"},
		{name: "host only", addr: ":3000", host: "127.0.0.1", wantAddr: "127.0.0.1:3000", wantCache: "./cache"},
		{name: "both and cache", addr: "0.0.0.0:1", host: "localhost", port: 9, cache: "/tmp/c", wantAddr: "localhost:9", wantCache: "/tmp/c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.ListenAddr = tc.addr

			applyFlags(cfg, tc.host, tc.port, tc.cache)

			assert.Equal(t, tc.wantAddr, cfg.ListenAddr)
			assert.Equal(t, tc.wantCache, cfg.CacheDir)
		})
	}
}
