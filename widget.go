package dropkit

import (
	"context"
	"fmt"
)

// FileGetter converts a raw UI event into the candidate files it
// carries. It is the injected, async-capable adapter between the host
// environment and the intake core; resolving data-transfer items may
// take time, hence the context. Classification itself never suspends.
type FileGetter func(ctx context.Context, e *Event) ([]CandidateFile, error)

// Widget is the composition root of one file-intake region: it owns
// the intake state, evaluates the acceptance policy on every drop or
// selection, and composes caller-supplied handlers with its own
// bookkeeping. Create one per drop region; a widget's state is never
// shared.
//
// Caller handlers run before the widget's internal handling, so a
// caller that stops propagation on an event suppresses the built-in
// behavior for that event.
type Widget struct {
	policy     Policy
	store      StateContainer
	getter     FileGetter
	disabled   bool
	guessTypes bool

	onFocus     Handler
	onBlur      Handler
	onDragEnter Handler
	onDragOver  Handler
	onDragLeave Handler
	onDrop      Handler

	onDropAccepted     func(files []CandidateFile, e *Event)
	onDropRejected     func(rejections []FileRejection, e *Event)
	onFileDialogOpen   func()
	onFileDialogCancel func()

	focusHandler     Handler
	blurHandler      Handler
	dragOverHandler  Handler
	dragLeaveHandler Handler
}

// New creates a widget around the given file-list adapter. A nil
// getter is allowed and behaves as if every event carried no
// resolvable files. Defaults: DefaultPolicy and a fresh MemoryStore;
// override with options.
func New(getter FileGetter, opts ...Option) *Widget {
	w := &Widget{
		policy: DefaultPolicy(),
		getter: getter,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.store == nil {
		w.store = NewMemoryStore()
	}

	w.focusHandler = ComposeHandlers(w.onFocus, func(e *Event) {
		w.dispatch(FocusAction())
	})
	w.blurHandler = ComposeHandlers(w.onBlur, func(e *Event) {
		w.dispatch(BlurAction())
	})
	w.dragOverHandler = ComposeHandlers(w.onDragOver)
	w.dragLeaveHandler = ComposeHandlers(w.onDragLeave, func(e *Event) {
		w.dispatch(SetDraggedFilesAction(nil, false))
	})
	return w
}

// State returns the current intake state snapshot.
func (w *Widget) State() IntakeState {
	return w.store.Get()
}

// Store returns the widget's state container, for subscription by the
// rendering layer.
func (w *Widget) Store() StateContainer {
	return w.store
}

// Policy returns the widget's acceptance policy.
func (w *Widget) Policy() Policy {
	return w.policy
}

// dispatch applies an action and re-derives the drag accept/reject
// flags before publishing. The reducer itself never touches the
// derived flags.
func (w *Widget) dispatch(action Action) IntakeState {
	next := Reduce(w.store.Get(), action)
	hovering := len(next.DraggedFiles) > 0
	next.IsDragAccept = hovering && allAccepted(next.DraggedFiles, w.policy)
	next.IsDragReject = hovering && !next.IsDragAccept
	w.store.Set(next)
	return next
}

func (w *Widget) resolveFiles(ctx context.Context, e *Event) ([]CandidateFile, error) {
	if w.getter == nil {
		return nil, nil
	}
	files, err := w.getter(ctx, e)
	if err != nil {
		return nil, err
	}
	if w.guessTypes {
		files = NormalizeTypes(files)
	}
	return files, nil
}

// HandleFocus records keyboard focus entering the widget.
func (w *Widget) HandleFocus(e *Event) {
	if w.disabled || e == nil {
		return
	}
	w.focusHandler(e)
}

// HandleBlur records keyboard focus leaving the widget.
func (w *Widget) HandleBlur(e *Event) {
	if w.disabled || e == nil {
		return
	}
	w.blurHandler(e)
}

// HandleDragEnter resolves the hovering files and marks the drag
// active. Events that carry no files are ignored.
func (w *Widget) HandleDragEnter(ctx context.Context, e *Event) error {
	if w.disabled || e == nil {
		return nil
	}
	if w.onDragEnter != nil {
		w.onDragEnter(e)
	}
	if e.PropagationStopped() {
		return nil
	}
	if !CarriesFiles(e) {
		return nil
	}
	files, err := w.resolveFiles(ctx, e)
	if err != nil {
		return fmt.Errorf("resolve dragged files: %w", err)
	}
	w.dispatch(SetDraggedFilesAction(files, true))
	return nil
}

// HandleDragOver runs the caller's drag-over handler. The widget keeps
// no per-move state; hosts use this hook to set the drop effect.
func (w *Widget) HandleDragOver(e *Event) {
	if w.disabled || e == nil {
		return
	}
	w.dragOverHandler(e)
}

// HandleDragLeave clears the hovering file set and drag flags.
func (w *Widget) HandleDragLeave(e *Event) {
	if w.disabled || e == nil {
		return
	}
	w.dragLeaveHandler(e)
}

// HandleDrop ends the drag, classifies the dropped batch under the
// policy, and records the accepted files and rejection records. The
// returned error is an adapter failure only; rejections are state, not
// errors.
func (w *Widget) HandleDrop(ctx context.Context, e *Event) error {
	if w.disabled || e == nil {
		return nil
	}
	if w.onDrop != nil {
		w.onDrop(e)
	}
	if e.PropagationStopped() {
		return nil
	}
	w.dispatch(SetDraggedFilesAction(nil, false))
	if !CarriesFiles(e) {
		return nil
	}
	files, err := w.resolveFiles(ctx, e)
	if err != nil {
		return fmt.Errorf("resolve dropped files: %w", err)
	}
	w.classify(files, e)
	return nil
}

// HandleChange classifies a file-dialog selection. It closes the
// dialog state first, then runs the same classification path as a
// drop.
func (w *Widget) HandleChange(ctx context.Context, e *Event) error {
	if w.disabled || e == nil {
		return nil
	}
	w.dispatch(CloseDialogAction())
	if !CarriesFiles(e) {
		return nil
	}
	files, err := w.resolveFiles(ctx, e)
	if err != nil {
		return fmt.Errorf("resolve selected files: %w", err)
	}
	w.classify(files, e)
	return nil
}

func (w *Widget) classify(files []CandidateFile, e *Event) {
	accepted, rejections := Classify(files, w.policy)
	w.dispatch(SetFilesAction(accepted, rejections))
	if len(accepted) > 0 && w.onDropAccepted != nil {
		w.onDropAccepted(accepted, e)
	}
	if len(rejections) > 0 && w.onDropRejected != nil {
		w.onDropRejected(rejections, e)
	}
}

// OpenFileDialog marks the file dialog active.
func (w *Widget) OpenFileDialog() {
	if w.disabled {
		return
	}
	w.dispatch(OpenDialogAction())
	if w.onFileDialogOpen != nil {
		w.onFileDialogOpen()
	}
}

// FileDialogCancelled marks the file dialog closed without a
// selection.
func (w *Widget) FileDialogCancelled() {
	if w.disabled {
		return
	}
	w.dispatch(CloseDialogAction())
	if w.onFileDialogCancel != nil {
		w.onFileDialogCancel()
	}
}

// Reset clears dialog, drag and result state, preserving focus.
func (w *Widget) Reset() {
	w.dispatch(ResetAction())
}
