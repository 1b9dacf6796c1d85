package types

import "fmt"

// OperationKind names the mutation proposed for a path
type OperationKind string

const (
	// OpNone leaves the entry untouched
	OpNone OperationKind = "none"

	// OpDelete removes the entry (and its subtree for directories)
	OpDelete OperationKind = "delete"

	// OpRename changes the entry's base name in place
	OpRename OperationKind = "rename"

	// OpMoveToParent relocates a directory's children one level up and
	// removes the then-empty directory
	OpMoveToParent OperationKind = "move_to_parent"
)

// Reasons attached to deletions that do not come from a user pattern
const (
	ReasonEmptyDir  = "<EMPTY_DIR>"
	ReasonEmptyName = "<EMPTY_NAME>"
)

// Operation is the single action associated with a path at any point of the
// pipeline. The zero value is OpNone.
type Operation struct {
	Kind OperationKind

	// Reason is the triggering pattern (or pattern:digest) for deletions
	Reason string

	// NewName is the cleaned base name for renames
	NewName string

	// Implied marks a deletion inherited from a deleted ancestor. The
	// executor reports it without touching the filesystem.
	Implied bool
}

// None returns the no-op operation
func None() Operation {
	return Operation{Kind: OpNone}
}

// Delete returns a deletion triggered by reason
func Delete(reason string) Operation {
	return Operation{Kind: OpDelete, Reason: reason}
}

// ImpliedDelete returns a deletion inherited from an ancestor
func ImpliedDelete(ancestor string) Operation {
	return Operation{Kind: OpDelete, Reason: ancestor, Implied: true}
}

// Rename returns a rename to newName
func Rename(newName string) Operation {
	return Operation{Kind: OpRename, NewName: newName}
}

// MoveToParent returns a merge of the directory into its parent
func MoveToParent() Operation {
	return Operation{Kind: OpMoveToParent}
}

// IsNone reports whether the operation leaves the entry untouched
func (o Operation) IsNone() bool {
	return o.Kind == "" || o.Kind == OpNone
}

// IsDelete reports whether the operation removes the entry
func (o Operation) IsDelete() bool {
	return o.Kind == OpDelete
}

func (o Operation) String() string {
	switch o.Kind {
	case OpDelete:
		if o.Implied {
			return fmt.Sprintf("delete (implied by %s)", o.Reason)
		}
		return fmt.Sprintf("delete (%s)", o.Reason)
	case OpRename:
		return fmt.Sprintf("rename => %s", o.NewName)
	case OpMoveToParent:
		return "move to parent"
	default:
		return "none"
	}
}
