package display

import "strings"

// Operation markers used in the tree
const (
	MarkerDelete       = "[-]"
	MarkerRename       = "[*]"
	MarkerMoveToParent = "[^]"
)

// Styler decorates the parts of a tree label
type Styler interface {
	Marker(item *Item, marker string) string
	Name(item *Item, name string) string
	Muted(s string) string
	Failure(s string) string
}

// Plain leaves every part undecorated
type Plain struct{}

func (Plain) Marker(_ *Item, marker string) string { return marker }
func (Plain) Name(_ *Item, name string) string     { return name }
func (Plain) Muted(s string) string                { return s }
func (Plain) Failure(s string) string              { return s }

// Marker returns the marker for item's operation
func Marker(item *Item) string {
	switch item.Operation {
	case "delete":
		return MarkerDelete
	case "rename":
		return MarkerRename
	case "move_to_parent":
		return MarkerMoveToParent
	}
	return ""
}

// Label renders one tree line for n
func Label(n *Node, st Styler) string {
	item := n.Item
	if item == nil {
		return n.Name
	}

	var b strings.Builder
	if m := Marker(item); m != "" {
		b.WriteString(st.Marker(item, m))
		b.WriteByte(' ')
	}
	b.WriteString(st.Name(item, n.Name))

	if item.LinkTarget != "" {
		arrow := " -> "
		if item.BrokenLink {
			arrow = " !> "
		}
		b.WriteString(st.Muted(arrow + item.LinkTarget))
	}

	switch item.Operation {
	case "rename":
		b.WriteString(" ==> ")
		b.WriteString(st.Name(item, item.NewName))
		if dest := item.Destination; dest != "" && baseName(dest) != item.NewName {
			b.WriteString(st.Muted(" (as " + baseName(dest) + ")"))
		}
	case "delete":
		if item.Implied {
			b.WriteString(st.Muted(" (with " + item.Reason + ")"))
		} else if item.Reason != "" {
			b.WriteString(st.Muted(" (" + item.Reason + ")"))
		}
	}

	if item.Status == StatusFailed {
		b.WriteString(" ")
		b.WriteString(st.Failure("✗ " + item.Error))
	}
	return b.String()
}

func baseName(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
