package stubgen

// pbImportBase is the Go import path the generated stubs assume the
// compiled proto packages live under, one package per module directory.
const pbImportBase = "github.com/sonic-net/sonic-gnmi/proto/gnoi"

// serverTemplate renders one module's server-handler skeleton: the import
// header plus one handler method per RPC on the shared Server type.
// Handlers marshal the request payload, hand it to the data-layer action
// hook under the RPC's wire route, and fill the response; empty-input and
// empty-output methods skip the corresponding half.
const serverTemplate = `// Code generated by yang2proto for module {{.Mod.NamePlain}}. DO NOT EDIT.

package gnoiyang

import (
	"context"
{{- if .NeedJSON}}
	"encoding/json"
{{- end}}

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "{{.PbBase}}/{{.Mod.NamePlain}}"
)
{{range .Mod.Rpcs}}
// {{.Method}} implements the {{$.Mod.Name}}Service {{.Method}} RPC.
func (srv *Server) {{.Method}}(ctx context.Context, req *pb.{{.Request}}) (*pb.{{.Response}}, error) {
{{- if .InputEmpty}}
	var payload []byte
{{- else}}
	payload, err := json.Marshal(req.GetInput())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "marshal input: %v", err)
	}
{{- end}}
	reply, err := srv.Action(ctx, "{{.Path}}", payload)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	resp := &pb.{{.Response}}{}
{{- if .OutputEmpty}}
	_ = reply
{{- else}}
	if err := json.Unmarshal(reply, &resp.Output); err != nil {
		return nil, status.Errorf(codes.Internal, "unmarshal output: %v", err)
	}
{{- end}}
	return resp, nil
}
{{end -}}
`

// supportTemplate renders the fixed companion file shared by all generated
// handlers: the server type and the data-layer hook it dispatches through.
const supportTemplate = `// Code generated by yang2proto. DO NOT EDIT.

package gnoiyang

import "context"

// ActionFunc hands an RPC invocation to the data layer: the schema path of
// the method as the wire route, plus the JSON payload of its input.
type ActionFunc func(ctx context.Context, path string, payload []byte) ([]byte, error)

// Server hosts every YANG-generated gNOI service.
type Server struct {
	Action ActionFunc
}
`

// registerTemplate renders the aggregate service-registration file
// covering every compiled module.
const registerTemplate = `// Code generated by yang2proto. DO NOT EDIT.

package gnoiyang

import (
	"google.golang.org/grpc"
{{range .Modules}}
	pb_{{.NamePlain}} "{{$.PbBase}}/{{.NamePlain}}"
{{- end}}
)

// RegisterYangServices registers every YANG-generated gNOI service with
// the gRPC server.
func RegisterYangServices(s *grpc.Server, srv *Server) {
{{- range .Modules}}
	pb_{{.NamePlain}}.Register{{.Name}}ServiceServer(s, srv)
{{- end}}
}
`

// clientTemplate renders the aggregate client dispatch program: a flag
// driven module/RPC switch that builds the typed request, calls the
// server, and prints the response.
const clientTemplate = `// Code generated by yang2proto. DO NOT EDIT.

package main

import (
	"context"
{{- if .NeedJSON}}
	"encoding/json"
{{- end}}
	"flag"
	"fmt"
	"os"

	"google.golang.org/grpc"
{{range .Modules}}
	pb_{{.NamePlain}} "{{$.PbBase}}/{{.NamePlain}}"
{{- end}}
)

var (
	module = flag.String("module", "", "gNOI module name")
	rpc    = flag.String("rpc", "", "RPC in the selected module to call")
	target = flag.String("target", "localhost:8080", "address:port of the gNOI server")
	jsonIn = flag.String("jsonin", "", "RPC arguments in JSON format")
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Parse()
	conn, err := grpc.Dial(*target, grpc.WithInsecure())
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	ctx := context.Background()

	switch *module {
{{- range $m := .Modules}}
	case "{{$m.Name}}":
		c := pb_{{$m.NamePlain}}.New{{$m.Name}}ServiceClient(conn)
		switch *rpc {
{{- range $r := $m.Rpcs}}
		case "{{$r.Method}}":
			req := &pb_{{$m.NamePlain}}.{{$r.Request}}{}
{{- if not $r.InputEmpty}}
			if *jsonIn != "" {
				if err := json.Unmarshal([]byte(*jsonIn), req); err != nil {
					fatal(err)
				}
			}
{{- end}}
			resp, err := c.{{$r.Method}}(ctx, req)
			if err != nil {
				fatal(err)
			}
{{- if $r.OutputEmpty}}
			_ = resp
			fmt.Println("{{$r.Method}}: OK")
{{- else}}
			out, err := json.Marshal(resp)
			if err != nil {
				fatal(err)
			}
			fmt.Println(string(out))
{{- end}}
{{- end}}
		default:
			fatal(fmt.Errorf("unknown RPC %q in module %q", *rpc, *module))
		}
{{- end}}
	default:
		fatal(fmt.Errorf("unknown module %q", *module))
	}
}
`
