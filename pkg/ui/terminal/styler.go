package terminal

import (
	"github.com/kenchou/file-clean/pkg/style"
	"github.com/kenchou/file-clean/pkg/ui/display"
)

// termStyler colors tree labels by operation
type termStyler struct{}

func (termStyler) Marker(item *display.Item, marker string) string {
	switch {
	case item.Implied:
		return style.ImpliedStyle.Render(marker)
	case item.Operation == "delete":
		return style.DeleteStyle.Render(marker)
	case item.Operation == "rename":
		return style.RenameStyle.Render(marker)
	case item.Operation == "move_to_parent":
		return style.MoveStyle.Render(marker)
	}
	return marker
}

func (termStyler) Name(item *display.Item, name string) string {
	switch {
	case item.Implied:
		return style.MutedStyle.Render(name)
	case item.Kind == "symlink":
		return style.LinkStyle.Render(name)
	case item.IsDir():
		return style.Bold(name)
	}
	return name
}

func (termStyler) Muted(s string) string {
	return style.MutedStyle.Render(s)
}

func (termStyler) Failure(s string) string {
	return style.ErrorStyle.Render(s)
}
