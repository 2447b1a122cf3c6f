package dropkit

// IntakeState is the session-level UI state of one intake widget:
// focus, dialog and drag status plus the results of the most recent
// completed drop or selection. It is created per widget with all
// booleans false and all lists empty and transitions exclusively
// through Reduce. State is never shared across widget instances.
type IntakeState struct {
	IsFocused          bool
	IsFileDialogActive bool
	IsDragActive       bool

	// IsDragAccept and IsDragReject are derived flags: the reducer
	// never sets them; the widget recomputes them from DraggedFiles
	// and its policy after each dispatch.
	IsDragAccept bool
	IsDragReject bool

	// DraggedFiles are the files currently hovering over the drop
	// region, cleared when the drag ends.
	DraggedFiles []CandidateFile

	// AcceptedFiles and FileRejections hold the outcome of the most
	// recent completed drop/selection.
	AcceptedFiles  []CandidateFile
	FileRejections []FileRejection
}

// ActionKind names a state transition.
type ActionKind string

const (
	ActionFocus           ActionKind = "focus"
	ActionBlur            ActionKind = "blur"
	ActionOpenDialog      ActionKind = "openDialog"
	ActionCloseDialog     ActionKind = "closeDialog"
	ActionSetDraggedFiles ActionKind = "setDraggedFiles"
	ActionSetFiles        ActionKind = "setFiles"
	ActionReset           ActionKind = "reset"
)

// Action is a state-transition request. Payload fields are read only
// by the action kinds that use them.
type Action struct {
	Kind ActionKind

	// Payload of ActionSetDraggedFiles.
	DraggedFiles []CandidateFile
	IsDragActive bool

	// Payload of ActionSetFiles.
	AcceptedFiles  []CandidateFile
	FileRejections []FileRejection
}

// FocusAction marks the widget focused.
func FocusAction() Action { return Action{Kind: ActionFocus} }

// BlurAction marks the widget unfocused.
func BlurAction() Action { return Action{Kind: ActionBlur} }

// OpenDialogAction marks the file dialog open.
func OpenDialogAction() Action { return Action{Kind: ActionOpenDialog} }

// CloseDialogAction marks the file dialog closed.
func CloseDialogAction() Action { return Action{Kind: ActionCloseDialog} }

// SetDraggedFilesAction replaces the hovering file set and the
// drag-active flag.
func SetDraggedFilesAction(draggedFiles []CandidateFile, isDragActive bool) Action {
	return Action{Kind: ActionSetDraggedFiles, DraggedFiles: draggedFiles, IsDragActive: isDragActive}
}

// SetFilesAction replaces both result lists of the last completed
// drop/selection.
func SetFilesAction(acceptedFiles []CandidateFile, fileRejections []FileRejection) Action {
	return Action{Kind: ActionSetFiles, AcceptedFiles: acceptedFiles, FileRejections: fileRejections}
}

// ResetAction clears dialog, drag and result state. Focus is
// deliberately preserved: resetting results must not steal or restore
// keyboard focus.
func ResetAction() Action { return Action{Kind: ActionReset} }

// Reduce computes the next intake state for an action. It is a pure,
// total function: unrecognized action kinds return the state
// unchanged, and the previous state value is never mutated in place,
// so consumers may diff snapshots by reference.
func Reduce(state IntakeState, action Action) IntakeState {
	next := state
	switch action.Kind {
	case ActionFocus:
		next.IsFocused = true
	case ActionBlur:
		next.IsFocused = false
	case ActionOpenDialog:
		next.IsFileDialogActive = true
	case ActionCloseDialog:
		next.IsFileDialogActive = false
	case ActionSetDraggedFiles:
		next.DraggedFiles = action.DraggedFiles
		next.IsDragActive = action.IsDragActive
	case ActionSetFiles:
		next.AcceptedFiles = action.AcceptedFiles
		next.FileRejections = action.FileRejections
	case ActionReset:
		next.IsFileDialogActive = false
		next.IsDragActive = false
		next.DraggedFiles = nil
		next.AcceptedFiles = nil
		next.FileRejections = nil
	}
	return next
}
