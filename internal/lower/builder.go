// Package lower turns parsed statement trees into the compiled message
// model. Lowering is single-pass and top-down: each statement's children
// become containers, lists and leafs on the parent, RPC statements are
// routed to the extractor, and choice/case frames are flattened into their
// parent (exclusivity semantics are deliberately not preserved).
package lower

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agentic-research/yang2proto/api"
	"github.com/agentic-research/yang2proto/internal/resolve"
	"github.com/agentic-research/yang2proto/internal/yang"
)

// Builder lowers module statement trees. The zero value is not usable;
// construct with New so limitation diagnostics have somewhere to go.
type Builder struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Builder {
	return &Builder{log: log}
}

// Module compiles one module root statement. Module-level facts (a union
// was seen, an RPC lacked input) are flagged on the returned module as the
// recursion merges back up; there is no package-level state.
func (b *Builder) Module(root *yang.Statement) (*api.Module, error) {
	mod := &api.Module{
		Name:      api.Pascal(root.Module.Name),
		NamePlain: api.Plain(root.Module.Name),
	}
	if err := b.children(root, &mod.Body, mod); err != nil {
		return nil, fmt.Errorf("module %s: %w", root.Module.Name, err)
	}
	return mod, nil
}

// children lowers a statement's children onto body. RPCs go to the
// extractor and never become message fields; notifications are ignored;
// choice and case children are inlined.
func (b *Builder) children(node *yang.Statement, body *api.Body, mod *api.Module) error {
	for _, ch := range node.Children {
		switch ch.Keyword {
		case "rpc":
			if err := b.rpc(ch, mod); err != nil {
				return err
			}
		case "notification":
			continue
		case "choice", "case":
			if err := b.children(ch, body, mod); err != nil {
				return err
			}
		case "container", "grouping":
			c := &api.Container{Name: api.Pascal(ch.Arg)}
			if err := b.children(ch, &c.Body, mod); err != nil {
				return err
			}
			body.Containers = append(body.Containers, c)
			body.Leafs = append(body.Leafs, &api.Leaf{
				Name:     api.Plain(ch.Arg),
				Type:     c.Name,
				JSONName: yang.LastSegment(ch),
			})
		case "list":
			l := &api.List{Name: api.Pascal(ch.Arg)}
			if err := b.children(ch, &l.Body, mod); err != nil {
				return err
			}
			body.Lists = append(body.Lists, l)
			body.Leafs = append(body.Leafs, &api.Leaf{
				Name:     api.Plain(ch.Arg),
				Type:     l.Name,
				JSONName: yang.LastSegment(ch),
				Repeated: true,
			})
		case "leaf", "leaf-list":
			if err := b.leaf(ch, body, mod, ch.Keyword == "leaf-list"); err != nil {
				return err
			}
		}
	}
	return nil
}

// leaf resolves one leaf or leaf-list statement and appends it to body.
// Enumerations that proto cannot express downgrade to string with a
// diagnostic; every other resolution failure is fatal.
func (b *Builder) leaf(node *yang.Statement, body *api.Body, mod *api.Module, repeated bool) error {
	protoType, typeStmt, err := resolve.Type(node)
	if err != nil {
		return err
	}
	if protoType == resolve.ValueType {
		mod.HasValueType = true
	}

	leaf := &api.Leaf{
		Name:     api.Plain(node.Arg),
		Type:     protoType,
		JSONName: yang.LastSegment(node),
		Repeated: repeated,
	}
	if protoType == resolve.EnumSentinel {
		enum, collided := resolve.CompileEnum(typeStmt, body.Leafs)
		if enum != nil {
			leaf.Enum = enum
			leaf.Type = api.Pascal(node.Arg)
		} else {
			b.log.Warn().
				Str("leaf", leaf.JSONName).
				Msg("enumeration not expressible as proto enum, downgrading to string")
			leaf.Type = "string"
			// A member-name collision poisons both sides: the sibling's
			// enum must not reach the shared symbol namespace either.
			for _, sibling := range collided {
				b.log.Warn().
					Str("leaf", sibling.JSONName).
					Msg("sibling enum shares a member name, downgrading to string")
				sibling.Type = "string"
				sibling.Enum = nil
			}
		}
	}
	body.Leafs = append(body.Leafs, leaf)
	return nil
}
