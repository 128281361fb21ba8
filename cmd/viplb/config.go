/**
 * Copyright (c) 2025, Simeon Miteff.
 *
 * See LICENSE.TXT in the root directory of this source tree.
 */

package main

import (
	"fmt"
	"os"

	"github.com/gravwell/gcfg"
)

const (
	defaultBindAddress    = "127.0.0.1:9874"
	defaultMetricsAddress = "127.0.0.1:9875"
	defaultMaxVIPs        = 1024
	defaultMaxFlows       = 65536
)

type captureConfig struct {
	Snap_Len int
}

type cfgType struct {
	Global struct {
		Bind_Address    string
		Metrics_Address string
		Max_VIPs        int
		Max_Flows       int
		Log_Level       string
	}
	// Each [Capture "name"] section attaches the pipelines to one
	// interface; the section name is the interface.
	Capture map[string]*captureConfig
}

func defaultConfig() *cfgType {
	var cfg cfgType
	cfg.Global.Bind_Address = defaultBindAddress
	cfg.Global.Metrics_Address = defaultMetricsAddress
	cfg.Global.Max_VIPs = defaultMaxVIPs
	cfg.Global.Max_Flows = defaultMaxFlows
	cfg.Global.Log_Level = "info"
	return &cfg
}

// GetConfig loads the daemon configuration. A missing file is not an
// error: everything has a default and captures are optional.
func GetConfig(path string) (*cfgType, error) {
	cfg := defaultConfig()
	if path == `` {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *cfgType) Verify() error {
	if c.Global.Bind_Address == `` {
		return fmt.Errorf("Bind-Address must not be empty")
	}
	if c.Global.Max_VIPs <= 0 {
		return fmt.Errorf("Max-VIPs must be positive, got %d", c.Global.Max_VIPs)
	}
	if c.Global.Max_Flows <= 0 {
		return fmt.Errorf("Max-Flows must be positive, got %d", c.Global.Max_Flows)
	}
	for name, capt := range c.Capture {
		if capt == nil {
			return fmt.Errorf("invalid capture section %q", name)
		}
		if capt.Snap_Len < 0 {
			return fmt.Errorf("capture %q: Snap-Len must not be negative", name)
		}
	}
	return nil
}
