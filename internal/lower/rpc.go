package lower

import (
	"strings"

	"github.com/agentic-research/yang2proto/api"
	"github.com/agentic-research/yang2proto/internal/yang"
)

// rpc extracts one RPC statement into a method descriptor plus its request
// and response wrapper messages. Both wrappers always exist: when the
// source input or output substatement is absent (or childless) the wrapper
// stays empty and the corresponding flag is set, so generated method
// signatures never change shape.
func (b *Builder) rpc(node *yang.Statement, mod *api.Module) error {
	r := &api.Rpc{
		Name:     api.Pascal(mod.NamePlain + "_" + node.Arg),
		Method:   api.Pascal(node.Arg),
		Request:  api.Pascal(node.Arg + "-request"),
		Response: api.Pascal(node.Arg + "-response"),
		Path:     yang.PathString(node),
	}

	request := &api.Container{Name: r.Request}
	mod.Containers = append(mod.Containers, request)
	if input := node.SearchOne("input"); input != nil && len(input.Children) > 0 {
		if err := b.payload(input, request, mod, "Input", "input"); err != nil {
			return err
		}
	} else {
		mod.HasEmpty = true
		r.InputEmpty = true
	}

	response := &api.Container{Name: r.Response}
	mod.Containers = append(mod.Containers, response)
	if output := node.SearchOne("output"); output != nil && len(output.Children) > 0 {
		if err := b.payload(output, response, mod, "Output", "output"); err != nil {
			return err
		}
	} else {
		mod.HasEmpty = true
		r.OutputEmpty = true
	}

	mod.Rpcs = append(mod.Rpcs, r)
	return nil
}

// payload lowers an input or output statement's children into a nested
// container on the wrapper, plus the single field that addresses it. The
// field's JSON tag is module-qualified ("<module>:input") so payloads
// round-trip against RESTCONF-style JSON.
func (b *Builder) payload(node *yang.Statement, wrapper *api.Container, mod *api.Module, typeName, fieldName string) error {
	nested := &api.Container{Name: typeName}
	if err := b.children(node, &nested.Body, mod); err != nil {
		return err
	}
	wrapper.Containers = append(wrapper.Containers, nested)

	// The input/output frame is transparent in qualified paths, so the
	// last segment names the RPC and carries the owning module.
	owner := mod.NamePlain
	if seg := yang.LastSegment(node); strings.Contains(seg, ":") {
		owner = seg[:strings.IndexByte(seg, ':')]
	}
	wrapper.Leafs = append(wrapper.Leafs, &api.Leaf{
		Name:     fieldName,
		Type:     typeName,
		JSONName: owner + ":" + fieldName,
	})
	return nil
}
