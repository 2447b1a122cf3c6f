package dropkit

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ValidatorFunc is a pluggable per-file check layered after the
// built-in type/size evaluation. It returns the rejection reasons it
// triggers, or nil/empty when the file passes. Reason codes other than
// the canonical ones are passed through to rejection records verbatim.
type ValidatorFunc func(file CandidateFile) []RejectionReason

// Reason codes produced by the validators shipped with this package.
const (
	CodeNameNotAllowed RejectionCode = "file-name-not-allowed"
	CodeDuplicateFile  RejectionCode = "duplicate-file"
	CodeEmptyName      RejectionCode = "file-name-empty"
)

// ChainValidators combines validators into one that runs each in order
// and accumulates all triggered reasons. Nil validators are skipped.
func ChainValidators(validators ...ValidatorFunc) ValidatorFunc {
	return func(file CandidateFile) []RejectionReason {
		var reasons []RejectionReason
		for _, v := range validators {
			if v == nil {
				continue
			}
			reasons = append(reasons, v(file)...)
		}
		return reasons
	}
}

// MatchNames creates a validator that rejects files whose name does
// not match the given glob pattern (e.g. "*.csv", "report-??.pdf").
func MatchNames(pattern string) (ValidatorFunc, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	return func(file CandidateFile) []RejectionReason {
		if g.Match(file.Name) {
			return nil
		}
		return []RejectionReason{
			NewRejectionReason(CodeNameNotAllowed, fmt.Sprintf("File name must match %s", pattern)),
		}
	}, nil
}

// RejectDuplicates creates a validator that rejects a file whose
// path/size fingerprint was already seen by this validator instance.
// The seen set lives as long as the validator; create a fresh one per
// widget to scope duplicate detection to a session.
//
// Not safe for use from multiple goroutines; a validator instance
// belongs to one widget, like the intake state itself.
func RejectDuplicates() ValidatorFunc {
	seen := make(map[uint64]struct{})
	return func(file CandidateFile) []RejectionReason {
		key := file.Fingerprint()
		if _, dup := seen[key]; dup {
			return []RejectionReason{
				NewRejectionReason(CodeDuplicateFile, fmt.Sprintf("File %s was already added", file.Name)),
			}
		}
		seen[key] = struct{}{}
		return nil
	}
}

// RejectEmptyNames rejects files with an empty name, which some hosts
// produce for synthetic paste entries.
func RejectEmptyNames() ValidatorFunc {
	return func(file CandidateFile) []RejectionReason {
		if file.Name != "" {
			return nil
		}
		return []RejectionReason{
			NewRejectionReason(CodeEmptyName, "File has no name"),
		}
	}
}
