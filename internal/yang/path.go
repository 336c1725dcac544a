package yang

import "strings"

// PathString returns the qualified schema path of a statement, e.g.
// "/sonic-system:reboot". Transparent frames (case, input, output) resolve
// through their parent and contribute no element of their own. An element
// is module-qualified only where the owning module changes along the path,
// which keeps paths stable across grouping expansion.
func PathString(stmt *Statement) string {
	elements := pathElements(stmt)
	var b strings.Builder
	lastPrefix := ""
	for _, el := range elements {
		b.WriteByte('/')
		if el.Module != nil && el.Module.Prefix != lastPrefix {
			b.WriteString(el.Module.Name)
			b.WriteByte(':')
		}
		b.WriteString(el.Arg)
		if el.Module != nil {
			lastPrefix = el.Module.Prefix
		}
	}
	return b.String()
}

// LastSegment returns the final element of a statement's qualified path,
// e.g. "sonic-system:reboot" or "delay". Used as the json_name of emitted
// fields.
func LastSegment(stmt *Statement) string {
	p := PathString(stmt)
	return p[strings.LastIndexByte(p, '/')+1:]
}

// pathElements walks up to the module root collecting the named path
// frames, outermost first.
func pathElements(stmt *Statement) []*Statement {
	var rev []*Statement
	for node := stmt; node != nil && node.Parent != nil; node = node.Parent {
		switch node.Keyword {
		case "case", "input", "output":
			continue
		}
		rev = append(rev, node)
	}
	out := make([]*Statement, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}
