package output

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// noteGap is the minimum space between a name and its note.
	noteGap = 2
)

// TreeNode is a file or directory in a FileTree.
type TreeNode struct {
	Name string

	// Note is shown dimmed after the name, aligned across the tree.
	Note     string
	IsDir    bool
	Children []*TreeNode
}

// child returns the named child, creating it when missing.
func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			// A path added as a file may later gain children.
			c.IsDir = c.IsDir || isDir
			return c
		}
	}
	c := &TreeNode{Name: name, IsDir: isDir}
	n.Children = append(n.Children, c)
	return c
}

// FileTree collects slash-separated project paths and renders them as a
// box-drawing tree under a root directory.
type FileTree struct {
	root *TreeNode
	size int
}

// NewFileTree creates an empty tree whose root is shown as rootName/.
func NewFileTree(rootName string) *FileTree {
	return &FileTree{root: &TreeNode{Name: rootName, IsDir: true}}
}

// Add records a file path with an optional note. Adding a path twice
// keeps the last non-empty note.
func (t *FileTree) Add(p, note string) {
	p = path.Clean(filepath.ToSlash(p))
	if p == "." || p == "" {
		return
	}

	parts := strings.Split(p, "/")
	current := t.root
	for i, part := range parts {
		current = current.child(part, i < len(parts)-1)
	}
	if note != "" {
		current.Note = note
	}
	t.size++
}

// Len returns the number of paths added.
func (t *FileTree) Len() int {
	return t.size
}

// String renders the tree, directories first and then alphabetically.
// Notes start in a shared column just past the longest annotated line.
func (t *FileTree) String() string {
	if len(t.root.Children) == 0 {
		return ""
	}

	sortTree(t.root)

	var rows []treeRow
	collectRows(&rows, t.root, "", true, true)

	column := 0
	for _, r := range rows {
		if r.note != "" {
			column = max(column, utf8.RuneCountInString(r.text)+noteGap)
		}
	}

	var sb strings.Builder
	for i, r := range rows {
		switch {
		case i == 0:
			sb.WriteString(StyleSummary.Render(r.text))
		case r.note != "":
			sb.WriteString(r.text)
			sb.WriteString(strings.Repeat(" ", column-utf8.RuneCountInString(r.text)))
			sb.WriteString(StyleDim.Render(r.note))
		default:
			sb.WriteString(r.text)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderFileTree renders files, a map of relative paths to notes, under
// rootName. An empty map renders nothing.
func RenderFileTree(rootName string, files map[string]string) string {
	tree := NewFileTree(rootName)
	for p, note := range files {
		tree.Add(p, note)
	}
	return tree.String()
}

// treeRow is one rendered line before note alignment.
type treeRow struct {
	text string
	note string
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

func collectRows(rows *[]treeRow, node *TreeNode, prefix string, isRoot, isLast bool) {
	name := node.Name
	if node.IsDir {
		name += "/"
	}

	if isRoot {
		*rows = append(*rows, treeRow{text: name})
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}
		*rows = append(*rows, treeRow{text: prefix + connector + name, note: node.Note})
	}

	for i, child := range node.Children {
		var childPrefix string
		switch {
		case isRoot:
			childPrefix = ""
		case isLast:
			childPrefix = prefix + treeSpace
		default:
			childPrefix = prefix + treeVert
		}

		collectRows(rows, child, childPrefix, false, i == len(node.Children)-1)
	}
}
