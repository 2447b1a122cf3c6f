package dropkit

// Option represents a widget configuration option
type Option func(*Widget)

// WithPolicy sets the widget's acceptance policy.
func WithPolicy(policy Policy) Option {
	return func(w *Widget) {
		w.policy = policy
	}
}

// WithStore sets the observable state container the widget publishes
// to. Hosts with their own reactive store pass a wrapper here; by
// default the widget creates a private MemoryStore.
func WithStore(store StateContainer) Option {
	return func(w *Widget) {
		w.store = store
	}
}

// WithValidator sets the policy's pluggable validator, keeping the
// rest of the policy as configured.
func WithValidator(validator ValidatorFunc) Option {
	return func(w *Widget) {
		w.policy.Validator = validator
	}
}

// WithTypeGuessing fills in missing MIME types from file extensions
// after the adapter resolves a batch.
func WithTypeGuessing() Option {
	return func(w *Widget) {
		w.guessTypes = true
	}
}

// Disabled creates the widget in a disabled state: every entry point
// is a no-op.
func Disabled() Option {
	return func(w *Widget) {
		w.disabled = true
	}
}

// WithOnFocus sets a caller handler for focus events, composed before
// the widget's bookkeeping.
func WithOnFocus(h Handler) Option {
	return func(w *Widget) {
		w.onFocus = h
	}
}

// WithOnBlur sets a caller handler for blur events.
func WithOnBlur(h Handler) Option {
	return func(w *Widget) {
		w.onBlur = h
	}
}

// WithOnDragEnter sets a caller handler for drag-enter events.
func WithOnDragEnter(h Handler) Option {
	return func(w *Widget) {
		w.onDragEnter = h
	}
}

// WithOnDragOver sets a caller handler for drag-over events.
func WithOnDragOver(h Handler) Option {
	return func(w *Widget) {
		w.onDragOver = h
	}
}

// WithOnDragLeave sets a caller handler for drag-leave events.
func WithOnDragLeave(h Handler) Option {
	return func(w *Widget) {
		w.onDragLeave = h
	}
}

// WithOnDrop sets a caller handler for drop events, composed before
// classification. Stopping propagation in it suppresses the widget's
// own drop handling.
func WithOnDrop(h Handler) Option {
	return func(w *Widget) {
		w.onDrop = h
	}
}

// WithOnDropAccepted sets a callback invoked with the accepted set
// after a classification pass that accepted at least one file.
func WithOnDropAccepted(f func(files []CandidateFile, e *Event)) Option {
	return func(w *Widget) {
		w.onDropAccepted = f
	}
}

// WithOnDropRejected sets a callback invoked with the rejection
// records after a classification pass that rejected at least one file.
func WithOnDropRejected(f func(rejections []FileRejection, e *Event)) Option {
	return func(w *Widget) {
		w.onDropRejected = f
	}
}

// WithOnFileDialogOpen sets a callback invoked when the file dialog is
// opened.
func WithOnFileDialogOpen(f func()) Option {
	return func(w *Widget) {
		w.onFileDialogOpen = f
	}
}

// WithOnFileDialogCancel sets a callback invoked when the file dialog
// is dismissed without a selection.
func WithOnFileDialogCancel(f func()) Option {
	return func(w *Widget) {
		w.onFileDialogCancel = f
	}
}
