package pipeline

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config holds the three output roots. All three must be set before any
// module is processed; a missing one is fatal up front.
type Config struct {
	ProtoOutDir      string `hcl:"proto_outdir,optional"`
	ServerStubOutDir string `hcl:"server_stub_outdir,optional"`
	ClientOutDir     string `hcl:"client_outdir,optional"`
}

// ConfigError is a pre-processing failure: bad configuration, unreadable
// input. It maps to exit code 2.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// LoadConfig reads output roots from an HCL file. Values set on the
// command line override the file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, &ConfigError{Msg: fmt.Sprintf("config %s: %v", path, err)}
	}
	return &cfg, nil
}

// Validate checks that every output root is configured.
func (c *Config) Validate() error {
	required := []struct {
		name, val string
	}{
		{"proto_outdir", c.ProtoOutDir},
		{"server_stub_outdir", c.ServerStubOutDir},
		{"client_outdir", c.ClientOutDir},
	}
	for _, r := range required {
		if r.val == "" {
			return &ConfigError{Msg: r.name + " cannot be empty"}
		}
	}
	return nil
}
