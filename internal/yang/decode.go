package yang

import (
	"fmt"
	"os"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// DecodeFile reads a frontend statement-tree export and returns the module
// root statements it contains.
func DecodeFile(path string) ([]*Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read statement export %s: %w", path, err)
	}
	mods, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return mods, nil
}

// Decode parses a frontend statement-tree export. The export is a JSON
// array of module objects; each node carries keyword, arg and children,
// module roots additionally carry prefix and an imports map (prefix to
// module object), and "type leafref" nodes carry the pre-validated target
// as a slash path of statement arguments.
func Decode(data []byte) ([]*Statement, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	var rawModules []any
	switch v := parsed.(type) {
	case []any:
		rawModules = v
	case map[string]any:
		rawModules = []any{v}
	default:
		return nil, fmt.Errorf("statement export must be an object or array, got %T", parsed)
	}

	var modules []*Statement
	for i, raw := range rawModules {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("module %d: expected object, got %T", i, raw)
		}
		mod, err := decodeModule(obj)
		if err != nil {
			return nil, err
		}
		modules = append(modules, mod)
	}
	return modules, nil
}

type pendingTarget struct {
	node *Statement
	path string
}

func decodeModule(obj map[string]any) (*Statement, error) {
	name := str(obj, "arg")
	if name == "" {
		return nil, fmt.Errorf("module object missing arg")
	}
	meta := &Module{
		Name:   name,
		Prefix: str(obj, "prefix"),
	}
	if imports, ok := obj["imports"].(map[string]any); ok {
		meta.Imports = make(map[string]*Statement, len(imports))
		for prefix, rawImp := range imports {
			impObj, ok := rawImp.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("module %s: import %q is not an object", name, prefix)
			}
			imp, err := decodeModule(impObj)
			if err != nil {
				return nil, fmt.Errorf("module %s: import %q: %w", name, prefix, err)
			}
			meta.Imports[prefix] = imp
		}
	}

	keyword := str(obj, "keyword")
	if keyword == "" {
		keyword = "module"
	}
	root := &Statement{Keyword: keyword, Arg: name, Module: meta}
	var pending []pendingTarget
	if err := decodeChildren(obj, root, meta, &pending); err != nil {
		return nil, fmt.Errorf("module %s: %w", name, err)
	}
	for _, p := range pending {
		target, err := resolvePath(root, p.path)
		if err != nil {
			return nil, fmt.Errorf("module %s: leafref target %q: %w", name, p.path, err)
		}
		p.node.LeafrefTarget = target
	}
	return root, nil
}

func decodeChildren(obj map[string]any, parent *Statement, meta *Module, pending *[]pendingTarget) error {
	rawChildren, ok := obj["children"].([]any)
	if !ok {
		return nil
	}
	for _, rawCh := range rawChildren {
		chObj, ok := rawCh.(map[string]any)
		if !ok {
			return fmt.Errorf("child of %s %q: expected object, got %T", parent.Keyword, parent.Arg, rawCh)
		}
		chMeta := meta
		// A node pulled in from another module (grouping expansion)
		// carries its own owning-module metadata.
		if modObj, ok := chObj["module"].(map[string]any); ok {
			chMeta = &Module{
				Name:    str(modObj, "name"),
				Prefix:  str(modObj, "prefix"),
				Imports: meta.Imports,
			}
		}
		ch := &Statement{
			Keyword: str(chObj, "keyword"),
			Arg:     str(chObj, "arg"),
			Module:  chMeta,
			Parent:  parent,
		}
		if ch.Keyword == "" {
			return fmt.Errorf("child of %s %q: missing keyword", parent.Keyword, parent.Arg)
		}
		if target := str(chObj, "target"); target != "" {
			*pending = append(*pending, pendingTarget{node: ch, path: target})
		}
		if err := decodeChildren(chObj, ch, chMeta, pending); err != nil {
			return err
		}
		parent.Children = append(parent.Children, ch)
	}
	return nil
}

// resolvePath follows a slash path of statement arguments from the module
// root, descending transparently through choice/case frames.
func resolvePath(root *Statement, path string) (*Statement, error) {
	node := root
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		if seg == "" {
			continue
		}
		if i := strings.IndexByte(seg, ':'); i >= 0 {
			seg = seg[i+1:]
		}
		next := findNamed(node, seg)
		if next == nil {
			return nil, fmt.Errorf("no node %q under %s %q", seg, node.Keyword, node.Arg)
		}
		node = next
	}
	if node == root {
		return nil, fmt.Errorf("empty path")
	}
	return node, nil
}

func findNamed(node *Statement, name string) *Statement {
	for _, ch := range node.Children {
		if ch.Arg == name && ch.Keyword != "type" {
			return ch
		}
	}
	for _, ch := range node.Children {
		switch ch.Keyword {
		case "choice", "case", "input", "output":
			if found := findNamed(ch, name); found != nil {
				return found
			}
		}
	}
	return nil
}

func str(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
