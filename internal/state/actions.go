package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type CursorUpAction struct{}
type CursorDownAction struct{}
type CursorTopAction struct{}
type CursorBottomAction struct{}

// ===== TREE ACTIONS =====

// ExpandAction opens the cursor directory.
type ExpandAction struct{}

// CollapseAction closes the cursor directory, or jumps to its parent when
// there is nothing to close.
type CollapseAction struct{}

// ActivateAction toggles a directory, or activates a file (the loop exits
// and the file's path becomes the process result).
type ActivateAction struct{}

type ToggleHiddenAction struct{}
type CycleSortAction struct{}
type RefreshAction struct{}
type RootToParentAction struct{}

// ChangeRootAction re-roots the tree at the cursor directory.
type ChangeRootAction struct{}

// ===== VIEW ACTIONS =====

type ToggleSizeAction struct{}
type ToggleTimeAction struct{}

// ===== SELECTION / CLIPBOARD ACTIONS =====

type ToggleSelectAction struct{}
type SelectAllAction struct{}
type ClearSelectionAction struct{}
type CopyAction struct{}
type CutAction struct{}
type PasteAction struct{}
type DeleteAction struct{}

// ===== NAME-INPUT ACTIONS =====
// The app layer collects the text before dispatching; an empty name means
// the prompt was cancelled.

type RenameAction struct {
	NewName string
}

type CreateFileAction struct {
	Name string
}

type CreateDirAction struct {
	Name string
}
