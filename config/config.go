// Package config holds TOML-backed host configuration: a struct-of-structs
// shape with a well-defined zero-value default, so a missing or partial
// file still leaves the host runnable.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Memory MemoryConfig `toml:"memory"`
	Run    RunConfig    `toml:"run"`
	Debug  DebugConfig  `toml:"debug"`
}

type MemoryConfig struct {
	RAMEnd   uint16 `toml:"ram_end"`   // top of the plain RAM region, mapped [0, RAMEnd]
	StackTop uint16 `toml:"stack_top"` // informational only; the stack page is fixed at $0100
	LoadBase uint16 `toml:"load_base"` // not read by cmd/run6502, which takes the load address from --load-at
}

type RunConfig struct {
	CycleBudget int64  `toml:"cycle_budget"` // 0 means unbounded
	ByCycles    bool   `toml:"by_cycles"`    // false debits one per instruction instead
	TracePath   string `toml:"trace_path"`   // "", "stdout", "stderr", or a file path
}

type DebugConfig struct {
	Listen  string   `toml:"listen"` // not read by cmd/run6502, whose --debug flag starts the rpc server
	Modules []string `toml:"modules"`
}

// Default returns the configuration a bare run6502 invocation uses: 64K of
// RAM, an unbounded cycle-accounted run, no tracing, no debugger.
func Default() Config {
	return Config{
		Memory: MemoryConfig{RAMEnd: 0xFFFF, LoadBase: 0x0600},
		Run:    RunConfig{ByCycles: true},
	}
}

// Load reads and decodes a TOML configuration file, starting from Default
// so an incomplete file still yields sane values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
