// Package emit serializes compiled modules into proto3 text. Output is a
// pure function of the compiled tree: same module in, byte-identical text
// out, which is what lets the change-aware writer gate stub regeneration
// on a simple byte comparison.
package emit

import (
	"fmt"
	"strings"

	"github.com/agentic-research/yang2proto/api"
)

const indent = "    "

// Proto renders one module's proto3 schema. Order is fixed: headers, one
// wrapper message per top-level leaf, top-level lists, top-level
// containers, then the service block when the module declares RPCs.
func Proto(mod *api.Module) string {
	var blocks []string

	var header strings.Builder
	header.WriteString("syntax = \"proto3\";\n\n")
	fmt.Fprintf(&header, "package gnoi.%s;\n", mod.Name)
	if mod.HasValueType {
		header.WriteString("\nimport \"google/protobuf/struct.proto\";\n")
	}
	blocks = append(blocks, header.String())

	for _, leaf := range mod.Leafs {
		blocks = append(blocks, leafWrapper(leaf))
	}
	for _, list := range mod.Lists {
		var b strings.Builder
		writeMessage(&b, list.Name, &list.Body, 0)
		blocks = append(blocks, b.String())
	}
	for _, c := range mod.Containers {
		var b strings.Builder
		writeMessage(&b, c.Name, &c.Body, 0)
		blocks = append(blocks, b.String())
	}

	if len(mod.Rpcs) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "service %sService {\n", mod.Name)
		for _, r := range mod.Rpcs {
			fmt.Fprintf(&b, "%srpc %s(%s) returns(%s) {}\n", indent, r.Method, r.Request, r.Response)
		}
		b.WriteString("}\n")
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n")
}

// leafWrapper emits a top-level leaf as its own single-field message so it
// stays addressable from generated code. A declared enum precedes the
// wrapper.
func leafWrapper(leaf *api.Leaf) string {
	var b strings.Builder
	if leaf.Enum != nil {
		writeEnum(&b, leaf, 0)
	}
	fmt.Fprintf(&b, "message %s {\n", leaf.Name)
	writeField(&b, leaf, 1, 1)
	b.WriteString("}\n")
	return b.String()
}

// writeMessage emits one message block: nested lists first, then nested
// containers, then fields. Field numbers are strictly sequential from 1 in
// append order within every message.
func writeMessage(b *strings.Builder, name string, body *api.Body, level int) {
	sp := strings.Repeat(indent, level)
	fmt.Fprintf(b, "%smessage %s {\n", sp, name)
	for _, list := range body.Lists {
		writeMessage(b, list.Name, &list.Body, level+1)
	}
	for _, c := range body.Containers {
		writeMessage(b, c.Name, &c.Body, level+1)
	}
	for i, leaf := range body.Leafs {
		if leaf.Enum != nil {
			writeEnum(b, leaf, level+1)
		}
		writeField(b, leaf, i+1, level+1)
	}
	fmt.Fprintf(b, "%s}\n", sp)
}

// writeEnum emits the enum declared by a leaf, immediately before the leaf
// itself. The enum is named from the leaf's PascalCase identifier, which
// the builder has already recorded as the leaf's type.
func writeEnum(b *strings.Builder, leaf *api.Leaf, level int) {
	sp := strings.Repeat(indent, level)
	fmt.Fprintf(b, "%senum %s {\n", sp, leaf.Type)
	for i, member := range leaf.Enum.Members {
		fmt.Fprintf(b, "%s%s%s = %d;\n", sp, indent, member, i)
	}
	fmt.Fprintf(b, "%s}\n", sp)
}

func writeField(b *strings.Builder, leaf *api.Leaf, tag, level int) {
	sp := strings.Repeat(indent, level)
	repeated := ""
	if leaf.Repeated {
		repeated = "repeated "
	}
	fmt.Fprintf(b, "%s%s%s %s = %d [json_name = \"%s\"];\n",
		sp, repeated, leaf.Type, leaf.Name, tag, leaf.JSONName)
}
