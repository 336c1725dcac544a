// Package stubgen renders the generated-code artifacts from fixed
// templates: per-module server-handler skeletons, the aggregate service
// registration file with its companion, and the client dispatch program.
// Every rendered artifact is gofumpt-formatted and syntax-validated
// before it reaches the writer, so formatting noise never causes spurious
// rewrites and a template regression fails the run instead of writing a
// broken file.
package stubgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/agentic-research/yang2proto/api"
)

var (
	serverTmpl   = template.Must(template.New("server").Parse(serverTemplate))
	supportTmpl  = template.Must(template.New("support").Parse(supportTemplate))
	registerTmpl = template.Must(template.New("register").Parse(registerTemplate))
	clientTmpl   = template.Must(template.New("client").Parse(clientTemplate))
)

type serverData struct {
	Mod      *api.Module
	PbBase   string
	NeedJSON bool
}

type aggregateData struct {
	Modules  []*api.Module
	PbBase   string
	NeedJSON bool
}

// Server renders the server-handler skeleton for one module.
func Server(mod *api.Module) ([]byte, error) {
	return render(serverTmpl, serverData{
		Mod:      mod,
		PbBase:   pbImportBase,
		NeedJSON: needJSON(mod.Rpcs),
	})
}

// Support renders the fixed companion file the handlers hang off.
func Support() ([]byte, error) {
	return render(supportTmpl, nil)
}

// Register renders the aggregate service-registration file.
func Register(mods []*api.Module) ([]byte, error) {
	return render(registerTmpl, aggregateData{Modules: mods, PbBase: pbImportBase})
}

// Client renders the aggregate client dispatch program.
func Client(mods []*api.Module) ([]byte, error) {
	var rpcs []*api.Rpc
	for _, m := range mods {
		rpcs = append(rpcs, m.Rpcs...)
	}
	return render(clientTmpl, aggregateData{
		Modules:  mods,
		PbBase:   pbImportBase,
		NeedJSON: needJSON(rpcs),
	})
}

// Prefix names the module family for the aggregate artifacts: "sonic"
// when any compiled module belongs to the SONiC namespace, otherwise
// "openconfig".
func Prefix(mods []*api.Module) string {
	for _, m := range mods {
		if strings.HasPrefix(m.NamePlain, "sonic") || strings.HasPrefix(m.NamePlain, "Sonic") {
			return "sonic"
		}
	}
	return "openconfig"
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	formatted, err := formatGo(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s stub: %w", tmpl.Name(), err)
	}
	if err := validateGo(formatted); err != nil {
		return nil, fmt.Errorf("validate %s stub: %w", tmpl.Name(), err)
	}
	return formatted, nil
}

// needJSON reports whether any handler actually moves a payload; an
// all-empty module would otherwise render an unused encoding/json import.
func needJSON(rpcs []*api.Rpc) bool {
	for _, r := range rpcs {
		if !r.InputEmpty || !r.OutputEmpty {
			return true
		}
	}
	return false
}
