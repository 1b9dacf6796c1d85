package display

import (
	"sort"
	"strings"
)

// Node is one path segment of the report tree. Item is nil for directories
// that only lead to acted-upon paths.
type Node struct {
	Name     string
	Item     *Item
	Children []*Node
}

// BuildTree arranges the report items under a root node named after the
// target. Children are sorted by name.
func BuildTree(r *CleanReport) *Node {
	root := &Node{Name: r.Target}
	index := map[string]*Node{"": root}

	var lookup func(path string) *Node
	lookup = func(path string) *Node {
		if n, ok := index[path]; ok {
			return n
		}
		parent, name := "", path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			parent, name = path[:i], path[i+1:]
		}
		n := &Node{Name: name}
		p := lookup(parent)
		p.Children = append(p.Children, n)
		index[path] = n
		return n
	}

	for i := range r.Items {
		lookup(r.Items[i].Path).Item = &r.Items[i]
	}

	sortNodes(root)
	return root
}

func sortNodes(n *Node) {
	sort.Slice(n.Children, func(i, j int) bool {
		return n.Children[i].Name < n.Children[j].Name
	})
	for _, c := range n.Children {
		sortNodes(c)
	}
}

// Walk calls fn for every node below n in display order with its depth
// (children of n have depth 0).
func (n *Node) Walk(fn func(node *Node, depth int)) {
	var walk func(node *Node, depth int)
	walk = func(node *Node, depth int) {
		for _, c := range node.Children {
			fn(c, depth)
			walk(c, depth+1)
		}
	}
	walk(n, 0)
}
