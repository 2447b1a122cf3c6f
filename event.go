package dropkit

// EventKind discriminates the two UI event shapes the intake core
// consumes. The host adapter resolves the raw event's shape once, at
// the boundary, instead of every helper re-sniffing it.
type EventKind int

const (
	// EventDrag is a drag-enter/over/leave or drop event.
	EventDrag EventKind = iota

	// EventInputChange is a file-input change event (dialog selection).
	EventInputChange
)

// FilesMarker is the canonical entry a drag event's data-transfer
// types enumeration carries when the drag holds files. Legacy Mozilla
// used the x-moz-file MIME marker instead; both are honored.
const FilesMarker = "Files"

// Event is the normalized form of a raw UI event. Hosts construct one
// per browser event with the constructors below and hand it to the
// widget's entry points.
type Event struct {
	// Kind tags the event shape.
	Kind EventKind

	// HasDataTransfer is set when a drag event exposed a data-transfer
	// object. Drag-shaped events without one (some synthetic events)
	// fall back to the target's file list.
	HasDataTransfer bool

	// TransferTypes is the data-transfer "types" enumeration of a drag
	// event.
	TransferTypes []string

	// TargetFileCount is the number of entries on the event target's
	// file list.
	TargetFileCount int

	// CancelBubble mirrors the legacy cancel-bubble flag some hosts
	// still set instead of calling StopPropagation.
	CancelBubble bool

	stopped bool
}

// NewDragEvent creates a drag event carrying the given data-transfer
// type markers.
func NewDragEvent(transferTypes ...string) *Event {
	return &Event{Kind: EventDrag, HasDataTransfer: true, TransferTypes: transferTypes}
}

// NewChangeEvent creates a file-input change event whose target holds
// fileCount files.
func NewChangeEvent(fileCount int) *Event {
	return &Event{Kind: EventInputChange, TargetFileCount: fileCount}
}

// StopPropagation marks the event so that no further handler in a
// chain runs.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether propagation was halted, either
// via StopPropagation or the legacy cancel-bubble flag.
func (e *Event) PropagationStopped() bool {
	return e.stopped || e.CancelBubble
}

// CarriesFiles reports whether the event carries files at all: a
// change event with a non-empty target file list, or a drag event
// whose data-transfer types include the files marker (canonical or
// legacy Mozilla). A drag-shaped event without a data-transfer object
// falls back to the target's file list.
func CarriesFiles(e *Event) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case EventInputChange:
		return e.TargetFileCount > 0
	case EventDrag:
		if !e.HasDataTransfer {
			return e.TargetFileCount > 0
		}
		for _, t := range e.TransferTypes {
			if t == FilesMarker || t == mozFileMarker {
				return true
			}
		}
		return false
	default:
		return false
	}
}
