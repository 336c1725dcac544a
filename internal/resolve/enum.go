package resolve

import (
	"github.com/agentic-research/yang2proto/api"
	"github.com/agentic-research/yang2proto/internal/yang"
)

// CompileEnum converts an enumeration type statement into an ordered,
// deduplicated member list. It returns nil when the enumeration cannot be
// expressed as a proto enum, in which case the leaf downgrades to string:
//
//   - a member identifier starting with a digit or containing a hyphen is
//     not a valid proto identifier;
//   - a member name already used by a sibling leaf's enum would collide,
//     because proto enum symbols share one namespace per file. No emitted
//     enum may share a member name with a sibling's, so the colliding
//     siblings are returned and the caller downgrades them as well.
//
// Accepted members are renumbered 0..N-1 in declaration order; explicit
// values from the source are discarded.
func CompileEnum(typeStmt *yang.Statement, siblings []*api.Leaf) (*api.Enum, []*api.Leaf) {
	enum := &api.Enum{MemberSet: make(map[string]bool)}
	var collided []*api.Leaf
	seen := make(map[*api.Leaf]bool)
	for _, member := range typeStmt.Search("enum") {
		name := member.Arg
		if name == "" || isDigit(name[0]) || hasHyphen(name) {
			return nil, nil
		}
		for _, sibling := range siblings {
			if sibling.Enum.Has(name) && !seen[sibling] {
				seen[sibling] = true
				collided = append(collided, sibling)
			}
		}
		if enum.MemberSet[name] {
			continue
		}
		enum.Members = append(enum.Members, name)
		enum.MemberSet[name] = true
	}
	if len(collided) > 0 || len(enum.Members) == 0 {
		return nil, collided
	}
	return enum, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func hasHyphen(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return true
		}
	}
	return false
}
