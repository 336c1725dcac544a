package stubgen

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// ValidationError locates the first syntax error in a rendered stub.
type ValidationError struct {
	Line    uint32 // 0-indexed
	Column  uint32 // 0-indexed
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Column+1, e.Message)
}

// validateGo parses rendered Go source with tree-sitter and returns an
// error if the AST contains syntax errors. This is a backstop against
// template regressions: no broken stub ever reaches the writer.
func validateGo(content []byte) error {
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return fmt.Errorf("tree-sitter parse: %w", err)
	}
	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("tree-sitter returned nil root")
	}
	if !root.HasError() {
		return nil
	}

	if errNode := findFirstError(root); errNode != nil {
		return &ValidationError{
			Line:    uint32(errNode.StartPoint().Row),
			Column:  uint32(errNode.StartPoint().Column),
			Message: "syntax error in generated code",
		}
	}
	return &ValidationError{Message: "AST contains errors"}
}

// findFirstError does a depth-first search for the first ERROR node.
func findFirstError(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			if found := findFirstError(child); found != nil {
				return found
			}
		}
	}
	return nil
}
