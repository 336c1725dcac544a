// Package pipeline drives a compilation run: lower each module, emit its
// proto text, persist change-aware, and render the stub artifacts. One
// invocation compiles a fixed module set and exits; any resolution failure
// aborts the run with no output for the failing module.
package pipeline

import (
	"fmt"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/agentic-research/yang2proto/api"
	"github.com/agentic-research/yang2proto/internal/emit"
	"github.com/agentic-research/yang2proto/internal/lower"
	"github.com/agentic-research/yang2proto/internal/stubgen"
	"github.com/agentic-research/yang2proto/internal/writeback"
	"github.com/agentic-research/yang2proto/internal/yang"
)

// Compiler holds the per-run state: configuration, the target filesystem
// and the change-aware writer over it.
type Compiler struct {
	cfg     Config
	builder *lower.Builder
	writer  *writeback.Writer
	fs      billy.Filesystem
	log     zerolog.Logger
}

// Result summarizes a run for callers and tests.
type Result struct {
	// Modules are the compiled modules that declare RPCs, in input order.
	Modules []*api.Module
	// Written lists every file the run actually rewrote.
	Written []string
}

func New(cfg Config, fs billy.Filesystem, log zerolog.Logger) *Compiler {
	return &Compiler{
		cfg:     cfg,
		builder: lower.New(log),
		writer:  writeback.New(fs, log),
		fs:      fs,
		log:     log,
	}
}

// Run compiles the given module statement trees. Each module is fully
// built and emitted before the next begins; the registration and client
// artifacts accumulate across all modules and are written once at the end.
func (c *Compiler) Run(modules []*yang.Statement) (*Result, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	for _, dir := range []string{c.cfg.ProtoOutDir, c.cfg.ServerStubOutDir, c.cfg.ClientOutDir} {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, &ConfigError{Msg: fmt.Sprintf("create output dir %s: %v", dir, err)}
		}
	}

	res := &Result{}
	for _, root := range modules {
		if root.Keyword == "submodule" {
			continue
		}
		c.log.Info().Str("module", root.Module.Name).Msg("processing module")
		mod, err := c.builder.Module(root)
		if err != nil {
			return nil, err
		}

		protoPath := filepath.Join(c.cfg.ProtoOutDir, mod.NamePlain, mod.NamePlain+".proto")
		changed, err := c.write(res, protoPath, []byte(emit.Proto(mod)))
		if err != nil {
			return nil, err
		}

		if len(mod.Rpcs) == 0 {
			continue
		}
		res.Modules = append(res.Modules, mod)
		if !changed {
			c.log.Info().Str("module", root.Module.Name).Msg("skip unchanged module")
			continue
		}
		stub, err := stubgen.Server(mod)
		if err != nil {
			return nil, err
		}
		stubPath := filepath.Join(c.cfg.ServerStubOutDir, mod.NamePlain, mod.NamePlain+".go")
		if _, err := c.write(res, stubPath, stub); err != nil {
			return nil, err
		}
	}

	prefix := stubgen.Prefix(res.Modules)

	register, err := stubgen.Register(res.Modules)
	if err != nil {
		return nil, err
	}
	if _, err := c.write(res, filepath.Join(c.cfg.ServerStubOutDir, prefix+"_register.go"), register); err != nil {
		return nil, err
	}

	support, err := stubgen.Support()
	if err != nil {
		return nil, err
	}
	if _, err := c.write(res, filepath.Join(c.cfg.ServerStubOutDir, "gnoiyang.go"), support); err != nil {
		return nil, err
	}

	client, err := stubgen.Client(res.Modules)
	if err != nil {
		return nil, err
	}
	clientPath := filepath.Join(c.cfg.ClientOutDir, "gnoi_"+prefix+"_client", "main.go")
	if _, err := c.write(res, clientPath, client); err != nil {
		return nil, err
	}

	return res, nil
}

func (c *Compiler) write(res *Result, path string, content []byte) (bool, error) {
	changed, err := c.writer.Write(path, content)
	if err != nil {
		return false, err
	}
	if changed {
		res.Written = append(res.Written, path)
	}
	return changed, nil
}
