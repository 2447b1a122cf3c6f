package dropkit

// Policy is the declarative rule set controlling which files an intake
// widget accepts. A policy is read-only during a classification pass;
// concurrent passes over the same policy do not interfere.
type Policy struct {
	// Accept is the type filter. The zero value accepts every type.
	Accept AcceptSpec

	// MinSize is the minimum accepted file size in bytes.
	// Zero means unbounded.
	MinSize int64

	// MaxSize is the maximum accepted file size in bytes.
	// Zero means unbounded.
	MaxSize int64

	// MaxFiles caps the batch size when Multiple is on.
	// Zero means unbounded.
	MaxFiles int

	// Multiple allows more than one file per batch.
	Multiple bool

	// Validator is an optional pluggable check layered after the
	// built-in type/size evaluation. It can only add rejection
	// reasons, never suppress built-in ones. Custom reason codes are
	// preserved verbatim.
	Validator ValidatorFunc
}

// DefaultPolicy creates a policy with sensible defaults: any type,
// multiple files, 10MB size cap.
func DefaultPolicy() Policy {
	return Policy{
		MaxSize:  10 * MB,
		Multiple: true,
	}
}

// ImageOnlyPolicy creates a policy that only accepts image files.
func ImageOnlyPolicy() Policy {
	p := DefaultPolicy()
	p.Accept = AcceptPattern("image/*")
	return p
}

// DocumentOnlyPolicy creates a policy that only accepts common
// document formats.
func DocumentOnlyPolicy() Policy {
	p := DefaultPolicy()
	p.MaxSize = 50 * MB
	p.Accept = AcceptPatterns(
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"text/plain",
		"text/csv",
	)
	return p
}

// MediaOnlyPolicy creates a policy that only accepts audio and video
// files, with a size cap suited to media uploads.
func MediaOnlyPolicy() Policy {
	p := DefaultPolicy()
	p.MaxSize = 500 * MB
	p.Accept = AcceptPatterns("audio/*", "video/*")
	return p
}
