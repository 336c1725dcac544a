package api

// Module is the compiled form of one YANG module: the message tree plus
// the RPC descriptors extracted from it. It is built once per run and is
// immutable after compilation; emission is a pure derivation.
type Module struct {
	// Name is the PascalCase module name ("sonic-system" -> "SonicSystem").
	Name string
	// NamePlain is the module name with hyphens replaced by underscores.
	NamePlain string
	// Body holds the top-level containers, lists and leafs.
	Body
	// Rpcs are the extracted RPC descriptors, in declaration order.
	Rpcs []*Rpc
	// HasEmpty is set when any RPC lacks an input or output substatement.
	HasEmpty bool
	// HasValueType is set when a union type was resolved anywhere in the
	// module, forcing the struct.proto import.
	HasValueType bool
}

// Body is the shared shape of every node that owns fields: a module, a
// container or a list. Children are owned; traversal is strictly top-down.
type Body struct {
	Containers []*Container
	Lists      []*List
	Leafs      []*Leaf
}

// Container is an emitted message. Referenced from its parent through a
// synthetic message-typed leaf so the container stays addressable.
type Container struct {
	Name string
	Body
}

// List has the same shape as Container but is referenced from its parent
// as a repeated field.
type List struct {
	Name string
	Body
}

// Leaf is a single emitted field. Type is always fully resolved: either a
// proto scalar from the fixed mapping table, google.protobuf.Value, or
// the name of a message/enum produced in the same tree.
type Leaf struct {
	Name string
	Type string
	// JSONName is the frontend-reported qualified path segment, attached
	// as the field's json_name so messages round-trip against
	// YANG-originated JSON payloads.
	JSONName string
	// Repeated marks leaf-lists and list references.
	Repeated bool
	// Enum is non-nil only when the leaf declares an accepted enumeration.
	Enum *Enum
}

// Enum is an ordered, deduplicated member list. Members are renumbered
// 0..N-1 in declaration order; explicit values from the source are
// discarded.
type Enum struct {
	Members []string
	// MemberSet mirrors Members for cross-sibling collision checks: the
	// emitted enum symbol namespace is shared across an entire file.
	MemberSet map[string]bool
}

// Has reports whether name is already a member of the enum.
func (e *Enum) Has(name string) bool {
	return e != nil && e.MemberSet[name]
}

// Rpc describes one extracted RPC: naming for the wrapper messages and
// generated code, plus the schema path used as the wire method route.
type Rpc struct {
	// Name is PascalCase(module + "_" + rpc), unique across all modules.
	Name string
	// Method is PascalCase(rpc), the name inside the service block.
	Method string
	// Request and Response are the wrapper message names. Both always
	// exist, even when the source input/output substatement is absent.
	Request  string
	Response string
	// Path is the qualified schema path, used as the wire route.
	Path string
	// InputEmpty / OutputEmpty record substatement absence as a flag, not
	// an omission, so generated method signatures stay stable.
	InputEmpty  bool
	OutputEmpty bool
}
