package dropkit

// Builder provides a fluent API for constructing acceptance policies
type Builder struct {
	policy     Policy
	patterns   []string
	rules      []AcceptRule
	validators []ValidatorFunc
}

// NewBuilder creates a new policy builder with sensible defaults
func NewBuilder() *Builder {
	return &Builder{policy: DefaultPolicy()}
}

// Empty creates a builder with no restrictions at all
func Empty() *Builder {
	return &Builder{policy: Policy{Multiple: true}}
}

// --- Size constraints ---

// MaxSize sets the maximum accepted file size
func (b *Builder) MaxSize(size int64) *Builder {
	b.policy.MaxSize = size
	return b
}

// MinSize sets the minimum accepted file size
func (b *Builder) MinSize(size int64) *Builder {
	b.policy.MinSize = size
	return b
}

// SizeRange sets both minimum and maximum file size
func (b *Builder) SizeRange(minSize, maxSize int64) *Builder {
	b.policy.MinSize = minSize
	b.policy.MaxSize = maxSize
	return b
}

// --- Type constraints ---

// Accept adds accepted type patterns (e.g. "image/png", "image/*", ".pdf")
func (b *Builder) Accept(patterns ...string) *Builder {
	b.patterns = append(b.patterns, patterns...)
	return b
}

// AcceptRule adds a MIME-pattern-to-extensions rule. Rules and plain
// patterns are mutually exclusive; rules win when both are given.
func (b *Builder) AcceptRule(mimePattern string, extensions ...string) *Builder {
	b.rules = append(b.rules, AcceptRule{MIME: mimePattern, Extensions: extensions})
	return b
}

// AcceptImages allows all image types
func (b *Builder) AcceptImages() *Builder {
	return b.Accept("image/*")
}

// AcceptAudio allows all audio types
func (b *Builder) AcceptAudio() *Builder {
	return b.Accept("audio/*")
}

// AcceptVideo allows all video types
func (b *Builder) AcceptVideo() *Builder {
	return b.Accept("video/*")
}

// AcceptAll allows all file types
func (b *Builder) AcceptAll() *Builder {
	return b.Accept("*/*")
}

// --- Count constraints ---

// MaxFiles caps the number of files per batch
func (b *Builder) MaxFiles(n int) *Builder {
	b.policy.MaxFiles = n
	return b
}

// Multiple allows more than one file per batch
func (b *Builder) Multiple() *Builder {
	b.policy.Multiple = true
	return b
}

// Single restricts batches to one file
func (b *Builder) Single() *Builder {
	b.policy.Multiple = false
	return b
}

// --- Pluggable validation ---

// WithValidator adds a pluggable validator; multiple validators are
// chained in the order added
func (b *Builder) WithValidator(v ValidatorFunc) *Builder {
	b.validators = append(b.validators, v)
	return b
}

// --- Build ---

// Build creates the policy
func (b *Builder) Build() Policy {
	p := b.policy
	switch {
	case len(b.rules) > 0:
		p.Accept = AcceptRuleSet(b.rules...)
	case len(b.patterns) == 1:
		p.Accept = AcceptPattern(b.patterns[0])
	case len(b.patterns) > 1:
		p.Accept = AcceptPatterns(b.patterns...)
	}
	switch len(b.validators) {
	case 0:
	case 1:
		p.Validator = b.validators[0]
	default:
		p.Validator = ChainValidators(b.validators...)
	}
	return p
}

// --- Presets ---

// ForImages creates a builder pre-configured for image intake
func ForImages() *Builder {
	return NewBuilder().
		AcceptImages().
		MaxSize(10 * MB)
}

// ForDocuments creates a builder pre-configured for document intake
func ForDocuments() *Builder {
	return NewBuilder().
		Accept(
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
			"text/csv",
		).
		MaxSize(50 * MB)
}

// ForMedia creates a builder pre-configured for audio/video intake
func ForMedia() *Builder {
	return NewBuilder().
		AcceptAudio().
		AcceptVideo().
		MaxSize(500 * MB)
}

// ForAvatar creates a builder for single-image avatar intake
func ForAvatar() *Builder {
	return NewBuilder().
		AcceptImages().
		MaxSize(5 * MB).
		Single()
}
