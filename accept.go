package dropkit

import (
	"sort"

	"github.com/samber/lo"
)

type acceptKind int

const (
	acceptUnset acceptKind = iota
	acceptPattern
	acceptList
	acceptRules
	acceptInvalid
)

// AcceptRule maps one MIME pattern to the list of file extensions
// allowed for it, e.g. {"image/*", [".png", ".jpg"]}. Rules are
// ordered; flattening preserves rule order.
type AcceptRule struct {
	MIME       string
	Extensions []string
}

// AcceptSpec is the type filter of an acceptance policy, expressed in
// one of three shapes: a single MIME/extension pattern, an ordered
// list of patterns, or an ordered mapping from MIME pattern to allowed
// extensions. The zero value means "no type filter": every file is
// type-accepted.
//
// A spec parsed from an unrecognized shape (see ParseAccept) is the
// opposite extreme: it normalizes to an empty pattern list, which
// matches nothing.
type AcceptSpec struct {
	kind     acceptKind
	pattern  string
	patterns []string
	rules    []AcceptRule
}

// AcceptPattern builds a single-pattern spec, e.g. "image/*" or ".pdf".
func AcceptPattern(pattern string) AcceptSpec {
	return AcceptSpec{kind: acceptPattern, pattern: pattern}
}

// AcceptPatterns builds a spec from an ordered list of patterns.
func AcceptPatterns(patterns ...string) AcceptSpec {
	return AcceptSpec{kind: acceptList, patterns: patterns}
}

// AcceptRuleSet builds a spec from an ordered MIME-pattern-to-extensions
// mapping.
func AcceptRuleSet(rules ...AcceptRule) AcceptSpec {
	return AcceptSpec{kind: acceptRules, rules: rules}
}

// ParseAccept converts a loosely-typed accept value into an AcceptSpec.
// Recognized shapes: nil (no filter), string, []string, []AcceptRule,
// map[string][]string (rules; keys are sorted for determinism, since
// Go maps carry no order) and AcceptSpec itself. Any other shape
// degrades to a spec that matches nothing rather than failing.
func ParseAccept(v any) AcceptSpec {
	switch accept := v.(type) {
	case nil:
		return AcceptSpec{}
	case AcceptSpec:
		return accept
	case string:
		return AcceptPattern(accept)
	case []string:
		return AcceptPatterns(accept...)
	case []AcceptRule:
		return AcceptRuleSet(accept...)
	case map[string][]string:
		keys := make([]string, 0, len(accept))
		for k := range accept {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rules := make([]AcceptRule, len(keys))
		for i, k := range keys {
			rules[i] = AcceptRule{MIME: k, Extensions: accept[k]}
		}
		return AcceptRuleSet(rules...)
	default:
		return AcceptSpec{kind: acceptInvalid}
	}
}

// IsZero reports whether the spec is unset (no type filter).
func (a AcceptSpec) IsZero() bool {
	return a.kind == acceptUnset
}

// Normalize flattens the spec into the list of pattern strings files
// are matched against. A single pattern yields a one-element list; a
// list is returned as-is; a rule set yields all mapped extensions in
// rule order (the MIME keys are dropped in this flattened form, since
// matching accepts either MIME or extension). An unset spec yields
// nil; a spec from an unrecognized shape yields an empty, non-nil list.
func (a AcceptSpec) Normalize() []string {
	switch a.kind {
	case acceptUnset:
		return nil
	case acceptPattern:
		return []string{a.pattern}
	case acceptList:
		out := make([]string, len(a.patterns))
		copy(out, a.patterns)
		return out
	case acceptRules:
		return lo.FlatMap(a.rules, func(rule AcceptRule, _ int) []string {
			return rule.Extensions
		})
	default:
		return []string{}
	}
}
