// Package resolve maps declared YANG leaf types onto the fixed set of
// proto3 target types, chasing typedef and leafref indirection. Resolution
// is all-or-nothing: any failure aborts the whole compilation run.
package resolve

import (
	"fmt"
	"strings"

	"github.com/agentic-research/yang2proto/internal/yang"
)

// ValueType is the generic structured-value placeholder every union type
// collapses to. Member-type information is discarded; this is a known
// lossy simplification.
const ValueType = "google.protobuf.Value"

// EnumSentinel is returned for enumeration types; the caller must run the
// enum through CompileEnum before the leaf is usable.
const EnumSentinel = "enum"

// baseTypes is the closed set of atomic YANG type keywords. Anything else
// is treated as a typedef reference and chased.
var baseTypes = map[string]bool{
	"int8": true, "int16": true, "int32": true, "int64": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"decimal64": true, "string": true, "boolean": true, "enumeration": true,
	"bits": true, "binary": true, "leafref": true, "identityref": true,
	"empty": true, "union": true, "instance-identifier": true,
}

// protoTypes is the fixed YANG-to-proto3 mapping table. Signed and
// unsigned integers widen to 32 or 64 bits; decimal64 maps to sint64;
// empty, identityref and instance-identifier have no proto equivalent and
// map to string.
var protoTypes = map[string]string{
	"binary":              "bytes",
	"bits":                "bytes",
	"boolean":             "bool",
	"decimal64":           "sint64",
	"empty":               "string",
	"int8":                "int32",
	"int16":               "int32",
	"int32":               "int32",
	"int64":               "int64",
	"string":              "string",
	"uint8":               "uint32",
	"uint16":              "uint32",
	"uint32":              "uint32",
	"uint64":              "uint64",
	"union":               ValueType,
	"enumeration":         EnumSentinel,
	"identityref":         "string",
	"instance-identifier": "string",
}

// ResolutionError is fatal: an unresolvable typedef, prefix or reference
// target. The offending node is named so diagnostics stay actionable.
type ResolutionError struct {
	Node   string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve type of %s: %s", e.Node, e.Reason)
}

func resolutionErr(node *yang.Statement, format string, args ...any) error {
	return &ResolutionError{
		Node:   yang.PathString(node),
		Reason: fmt.Sprintf(format, args...),
	}
}

// Type resolves a leaf or leaf-list statement to its proto target type.
// It returns the proto type name and the base type statement it resolved
// to; for enumerations the type statement carries the enum members.
func Type(node *yang.Statement) (string, *yang.Statement, error) {
	t, err := chase(node)
	if err != nil {
		return "", nil, err
	}
	protoType, ok := protoTypes[t.Arg]
	if !ok {
		return "", nil, resolutionErr(node, "no proto mapping for type %q", t.Arg)
	}
	return protoType, t, nil
}

// chase follows typedef indirection until an atomic base type is reached,
// then follows leafref indirection to the referenced node's own type.
func chase(node *yang.Statement) (*yang.Statement, error) {
	t := node
	if t.Keyword != "type" {
		t = node.SearchOne("type")
		if t == nil {
			return nil, resolutionErr(node, "statement has no type substatement")
		}
	}

	for !baseTypes[t.Arg] {
		name := t.Arg
		prefix := ""
		if i := strings.IndexByte(name, ':'); i >= 0 {
			prefix, name = name[:i], name[i+1:]
		}

		var typedef *yang.Statement
		if prefix == "" || (t.Module != nil && prefix == t.Module.Prefix) {
			// Module scope first, then the local statement ancestry.
			typedef = t.Root().Typedef(name)
			if typedef == nil {
				typedef = t.Typedef(name)
			}
		} else {
			if t.Module == nil || t.Module.Imports[prefix] == nil {
				return nil, resolutionErr(node, "prefix %q does not map to an imported module", prefix)
			}
			typedef = t.Module.Imports[prefix].Typedef(name)
		}
		if typedef == nil {
			return nil, resolutionErr(node, "typedef %q not found; make sure all dependent modules are present", name)
		}
		t = typedef.SearchOne("type")
		if t == nil {
			return nil, resolutionErr(node, "typedef %q has no type substatement", name)
		}
	}

	if t.Arg == "leafref" {
		target := t.LeafrefTarget
		if target == nil {
			return nil, resolutionErr(node, "leafref has no resolved target")
		}
		if target.Keyword != "leaf" && target.Keyword != "leaf-list" {
			return nil, resolutionErr(node, "leafref points at a %s, not a leaf or leaf-list", target.Keyword)
		}
		return chase(target)
	}
	return t, nil
}
