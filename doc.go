// Package dropkit implements the decision logic behind a drag-and-drop
// or click-to-browse file intake widget: given a batch of candidate
// files from a drag, file picker, or paste event, it classifies them
// under a declarative acceptance policy (MIME/extension patterns, size
// bounds, file-count limits) and tracks the UI-visible intake state in
// a pure reducer bound to an observable state container.
//
// DropKit never reads file content. It is the metadata-side sibling of
// [FileKit]: FileKit validates bytes on the storage side, DropKit
// classifies candidates on the intake side, before any byte moves.
//
// # Quick Start
//
// Classify a batch directly:
//
//	policy := dropkit.Policy{
//	    Accept:   dropkit.AcceptPattern("image/*"),
//	    MaxSize:  10 * dropkit.MB,
//	    Multiple: true,
//	}
//	accepted, rejections := dropkit.Classify(files, policy)
//
// Or drive a full widget from host events:
//
//	widget := dropkit.New(getFilesFromEvent,
//	    dropkit.WithPolicy(dropkit.ImageOnlyPolicy()),
//	    dropkit.WithOnDropAccepted(func(files []dropkit.CandidateFile, e *dropkit.Event) {
//	        // hand accepted files to the upload layer
//	    }),
//	)
//
//	_ = widget.HandleDragEnter(ctx, dropkit.NewDragEvent(dropkit.FilesMarker))
//	_ = widget.HandleDrop(ctx, dropkit.NewDragEvent(dropkit.FilesMarker))
//	state := widget.State() // AcceptedFiles, FileRejections, drag flags
//
// # Acceptance Policies
//
// A [Policy] combines a type filter ([AcceptSpec]: single pattern,
// pattern list, or MIME-to-extensions rule set), inclusive size
// bounds, batch count limits, and an optional pluggable
// [ValidatorFunc]. Policies can be built fluently:
//
//	policy := dropkit.NewBuilder().
//	    Accept("image/*", ".pdf").
//	    MaxSize(5 * dropkit.MB).
//	    MaxFiles(3).
//	    Build()
//
// or loaded from the environment via [GetConfig].
//
// # Rejections Are Data
//
// Classification never fails: every violation becomes a
// [RejectionReason] on a [FileRejection] record, keyed by public codes
// ([CodeInvalidType], [CodeTooLarge], [CodeTooSmall],
// [CodeTooManyFiles], plus custom validator codes preserved verbatim).
// A file accumulates every reason it triggers; a batch over the count
// limit rejects wholesale before per-file checks run.
//
// # Intake State
//
// [IntakeState] transitions only through the pure [Reduce] function
// over focus, dialog, drag and result actions. [Dispatcher] binds the
// reducer to a [StateContainer] with synchronous, in-order dispatch;
// [MemoryStore] is the default container with subscription callbacks
// for rendering layers. The [Widget] composes the pieces, layering
// caller handlers over built-in bookkeeping via [ComposeHandlers] so a
// caller that stops propagation suppresses the default behavior.
//
// # Concurrency
//
// All operations are synchronous pure functions or single-writer state
// updates. Policies are read-only during classification; state is
// owned by one widget. The only asynchrony lives in the injected
// [FileGetter] adapter, which the widget awaits before classifying.
//
// [FileKit]: https://github.com/gobeaver/filekit
package dropkit
