package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lang/internal/ast"
	"lang/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

type treeNode struct {
	label    string
	children []*treeNode
}

// FormatASTTree prints the program as an indented tree.
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}
	root := buildFileTreeNode(builder, file, fs)
	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeTreeChildren(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTreeChildren(sb *strings.Builder, node *treeNode, prefix string) {
	for i, child := range node.children {
		connector, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			connector, next = "└─ ", "   "
		}
		sb.WriteString(prefix + connector + child.label + "\n")
		writeTreeChildren(sb, child, prefix+next)
	}
}

func buildFileTreeNode(builder *ast.Builder, file *ast.File, fs *source.FileSet) *treeNode {
	header := "Program"
	if fs != nil {
		if src := fs.Get(file.Span.File); src != nil {
			header = src.FormatPath("auto", fs.BaseDir())
		}
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, formatSpan(file.Span, fs))}
	for _, itemID := range file.Items {
		root.children = append(root.children, buildFnTreeNode(builder, itemID, fs))
	}
	return root
}

func buildFnTreeNode(builder *ast.Builder, itemID ast.ItemID, fs *source.FileSet) *treeNode {
	fn, ok := builder.Items.Fn(itemID)
	if !ok {
		return &treeNode{label: "<nil item>"}
	}
	node := &treeNode{label: fmt.Sprintf("Fn %s(%s) -> %s (span: %s)",
		builder.Name(fn.Name), formatFnParamsInline(builder, fn), fn.ReturnType.Kind, formatSpan(fn.Span, fs))}
	node.children = append(node.children, buildBlockTreeNode(builder, fn.Body, "Body", fs))
	return node
}

func formatFnParamsInline(builder *ast.Builder, fn *ast.FnItem) string {
	parts := make([]string, 0, len(fn.Params))
	for _, pid := range fn.Params {
		if param := builder.Items.FnParam(pid); param != nil {
			parts = append(parts, builder.Name(param.Name)+": "+param.Type.Kind.String())
		}
	}
	return strings.Join(parts, ", ")
}

// FormatASTJSON writes the program as nested JSON nodes.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}

	output := ASTNodeOutput{Type: "Program", Span: file.Span}
	for _, itemID := range file.Items {
		fn, ok := builder.Items.Fn(itemID)
		if !ok {
			continue
		}
		params := make([]map[string]string, 0, len(fn.Params))
		for _, pid := range fn.Params {
			if param := builder.Items.FnParam(pid); param != nil {
				params = append(params, map[string]string{"name": builder.Name(param.Name), "type": param.Type.Kind.String()})
			}
		}
		output.Children = append(output.Children, ASTNodeOutput{
			Type:     "Fn",
			Span:     fn.Span,
			Text:     builder.Name(fn.Name),
			Fields:   map[string]any{"params": params, "return": fn.ReturnType.Kind.String()},
			Children: []ASTNodeOutput{stmtJSON(builder, fn.Body)},
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
