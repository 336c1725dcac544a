// Package yang holds the statement-tree contract between the external
// schema frontend and the compiler. The frontend hands over fully parsed
// statement trees with module, prefix and typedef metadata attached and
// every leafref path pre-validated; nothing in this package parses YANG
// source.
package yang

// Module is the owning-module metadata the frontend attaches to every
// statement.
type Module struct {
	// Name is the module name as declared in the source.
	Name string
	// Prefix is the module's own prefix.
	Prefix string
	// Imports maps an import prefix to the imported module's root
	// statement, for resolving prefixed typedef references.
	Imports map[string]*Statement
}

// Statement is one node of a parsed schema statement tree.
type Statement struct {
	// Keyword is the statement keyword ("module", "container", "leaf",
	// "type", "rpc", ...).
	Keyword string
	// Arg is the statement argument (the name, or for "type" statements
	// the type name, possibly prefixed).
	Arg string
	// Children are the substatements, in declaration order.
	Children []*Statement
	// Module is the metadata of the module this statement belongs to.
	Module *Module
	// Parent is the enclosing statement; nil for a module root.
	Parent *Statement
	// LeafrefTarget is the pre-validated target node for a "type leafref"
	// statement. The frontend guarantees the path itself resolves; the
	// compiler still checks the target's kind.
	LeafrefTarget *Statement
}

// Search returns the direct children with the given keyword.
func (s *Statement) Search(keyword string) []*Statement {
	var out []*Statement
	for _, ch := range s.Children {
		if ch.Keyword == keyword {
			out = append(out, ch)
		}
	}
	return out
}

// SearchOne returns the first direct child with the given keyword, or nil.
func (s *Statement) SearchOne(keyword string) *Statement {
	for _, ch := range s.Children {
		if ch.Keyword == keyword {
			return ch
		}
	}
	return nil
}

// Typedef looks for a typedef with the given name in this statement's
// substatements, then in its ancestors' substatements, innermost first.
// Calling it on a module root searches module scope only.
func (s *Statement) Typedef(name string) *Statement {
	for node := s; node != nil; node = node.Parent {
		for _, ch := range node.Children {
			if ch.Keyword == "typedef" && ch.Arg == name {
				return ch
			}
		}
	}
	return nil
}

// Finalize stitches a hand-constructed tree: parent pointers are set and
// owning-module metadata is filled in wherever a node does not carry its
// own. The JSON decoder does this automatically; in-process frontends call
// it once on each module root.
func Finalize(root *Statement, meta *Module) {
	if root.Module == nil {
		root.Module = meta
	}
	for _, ch := range root.Children {
		ch.Parent = root
		m := root.Module
		if ch.Module != nil {
			m = ch.Module
		}
		Finalize(ch, m)
	}
}

// Root returns the module root this statement hangs under.
func (s *Statement) Root() *Statement {
	node := s
	for node.Parent != nil {
		node = node.Parent
	}
	return node
}
