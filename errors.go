package dropkit

import (
	"fmt"
	"strings"
)

// RejectionCode categorizes why a file was rejected.
type RejectionCode string

// Canonical rejection codes. These are part of the public contract:
// UI layers key error rendering off them. Pluggable validators may
// return arbitrary additional codes, which are preserved verbatim.
const (
	CodeInvalidType  RejectionCode = "file-invalid-type"
	CodeTooLarge     RejectionCode = "file-too-large"
	CodeTooSmall     RejectionCode = "file-too-small"
	CodeTooManyFiles RejectionCode = "too-many-files"
)

// RejectionReason explains a single acceptance-policy violation.
// Rejections are data, not errors: classification never fails, it
// classifies.
type RejectionReason struct {
	// Code categorizes the violation (type, size, count, or custom).
	Code RejectionCode

	// Message is the human-readable description.
	Message string
}

// NewRejectionReason creates a RejectionReason with the given code and message.
func NewRejectionReason(code RejectionCode, message string) RejectionReason {
	return RejectionReason{Code: code, Message: message}
}

// String implements fmt.Stringer.
func (r RejectionReason) String() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// FileRejection pairs a rejected file with its ordered, non-empty list
// of rejection reasons. It is produced once per rejected file per
// classification pass and never mutated afterwards.
type FileRejection struct {
	File    CandidateFile
	Reasons []RejectionReason
}

// HasCode reports whether any of the rejection's reasons carries the given code.
func (fr FileRejection) HasCode(code RejectionCode) bool {
	for _, r := range fr.Reasons {
		if r.Code == code {
			return true
		}
	}
	return false
}

// Summary returns a one-line description of the rejection.
func (fr FileRejection) Summary() string {
	msgs := make([]string, len(fr.Reasons))
	for i, r := range fr.Reasons {
		msgs[i] = r.Message
	}
	return fmt.Sprintf("%s: %s", fr.File.Name, strings.Join(msgs, "; "))
}

func invalidTypeReason(patterns []string) RejectionReason {
	var suffix string
	switch len(patterns) {
	case 0:
		// Nothing matches; there is no pattern to name.
		return NewRejectionReason(CodeInvalidType, "File type is not accepted")
	case 1:
		suffix = patterns[0]
	default:
		suffix = "one of " + strings.Join(patterns, ", ")
	}
	return NewRejectionReason(CodeInvalidType, "File type must be "+suffix)
}

func tooLargeReason(maxSize int64) RejectionReason {
	return NewRejectionReason(CodeTooLarge, fmt.Sprintf("File is larger than %d bytes", maxSize))
}

func tooSmallReason(minSize int64) RejectionReason {
	return NewRejectionReason(CodeTooSmall, fmt.Sprintf("File is smaller than %d bytes", minSize))
}

func tooManyFilesReason() RejectionReason {
	return NewRejectionReason(CodeTooManyFiles, "Too many files")
}
