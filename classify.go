package dropkit

import (
	"strings"

	"github.com/samber/lo"
)

// mozFileMarker is the MIME type pre-53 Firefox reports for files
// during drag, before the real type is known. It doubles as the legacy
// Mozilla data-transfer marker for "this drag carries files".
const mozFileMarker = "application/x-moz-file"

// TypeAccepted reports whether the file's type satisfies the accept
// spec, with the rejection reason when it does not.
//
// Matching is by MIME wildcard ("image/*" matches any image MIME),
// exact MIME, or filename suffix for extension patterns (".png",
// ".tar.gz"), all case-insensitive. A file reporting the pre-53
// Firefox drag sentinel is always accepted, since its real type is
// simply not known yet.
func TypeAccepted(file CandidateFile, accept AcceptSpec) (bool, *RejectionReason) {
	if accept.IsZero() {
		return true, nil
	}
	if file.Type == mozFileMarker {
		return true, nil
	}

	patterns := accept.Normalize()
	mimeType := strings.ToLower(strings.TrimSpace(file.Type))
	baseType := ""
	if idx := strings.Index(mimeType, "/"); idx > 0 {
		baseType = mimeType[:idx]
	}
	name := strings.ToLower(file.Name)

	for _, p := range patterns {
		pattern := strings.ToLower(strings.TrimSpace(p))
		switch {
		case pattern == "*/*":
			return true, nil
		case strings.HasPrefix(pattern, "."):
			if strings.HasSuffix(name, pattern) {
				return true, nil
			}
		case strings.HasSuffix(pattern, "/*"):
			if baseType != "" && baseType == strings.TrimSuffix(pattern, "/*") {
				return true, nil
			}
		default:
			if mimeType == pattern {
				return true, nil
			}
		}
	}

	reason := invalidTypeReason(patterns)
	return false, &reason
}

// SizeAccepted reports whether the file's size lies within the given
// inclusive bounds, with the rejection reason when it does not. A
// bound of zero (or below) is unbounded. A file whose size is unknown
// (zero) is never held against either bound: directory entries and
// unresolved data-transfer items report no size.
//
// When both bounds are violated only the max violation is reported;
// max is checked first.
func SizeAccepted(file CandidateFile, minSize, maxSize int64) (bool, *RejectionReason) {
	if file.Size <= 0 {
		return true, nil
	}
	if maxSize > 0 && file.Size > maxSize {
		reason := tooLargeReason(maxSize)
		return false, &reason
	}
	if minSize > 0 && file.Size < minSize {
		reason := tooSmallReason(minSize)
		return false, &reason
	}
	return true, nil
}

// CountAccepted reports whether a batch of fileCount files fits under
// maxFiles. A maxFiles of zero (or below) is unbounded.
func CountAccepted(fileCount, maxFiles int) bool {
	return maxFiles <= 0 || fileCount <= maxFiles
}

// Classify partitions one batch of candidate files into the accepted
// set and the rejection records, in input order, under the given
// policy.
//
// The batch-wide count check runs first: a batch that exceeds the
// policy's file count (more than one file when Multiple is off, or
// more than MaxFiles when set) rejects every file with too-many-files
// and skips per-file evaluation entirely. Otherwise each file is
// evaluated independently for type, then size, then the policy's
// pluggable validator, accumulating every triggered reason — a file
// can be both wrong-type and wrong-size at once.
func Classify(files []CandidateFile, policy Policy) (accepted []CandidateFile, rejections []FileRejection) {
	tooMany := (!policy.Multiple && len(files) > 1) ||
		(policy.Multiple && policy.MaxFiles > 0 && len(files) > policy.MaxFiles)
	if tooMany {
		rejections = make([]FileRejection, len(files))
		for i, f := range files {
			rejections[i] = FileRejection{File: f, Reasons: []RejectionReason{tooManyFilesReason()}}
		}
		return nil, rejections
	}

	for _, f := range files {
		var reasons []RejectionReason
		if ok, reason := TypeAccepted(f, policy.Accept); !ok {
			reasons = append(reasons, *reason)
		}
		if ok, reason := SizeAccepted(f, policy.MinSize, policy.MaxSize); !ok {
			reasons = append(reasons, *reason)
		}
		if policy.Validator != nil {
			reasons = append(reasons, policy.Validator(f)...)
		}
		if len(reasons) == 0 {
			accepted = append(accepted, f)
		} else {
			rejections = append(rejections, FileRejection{File: f, Reasons: reasons})
		}
	}
	return accepted, rejections
}

// allAccepted reports whether every file in a hovering drag batch
// would pass the policy's count, type and size checks. Used to derive
// the drag accept/reject flags while files are still hovering.
func allAccepted(files []CandidateFile, policy Policy) bool {
	if !policy.Multiple && len(files) > 1 {
		return false
	}
	if !CountAccepted(len(files), policy.MaxFiles) {
		return false
	}
	return lo.EveryBy(files, func(f CandidateFile) bool {
		typeOK, _ := TypeAccepted(f, policy.Accept)
		sizeOK, _ := SizeAccepted(f, policy.MinSize, policy.MaxSize)
		return typeOK && sizeOK
	})
}
