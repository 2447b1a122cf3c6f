package dropkit

import (
	"reflect"
	"testing"
)

func TestFluentBuilder(t *testing.T) {
	policy := NewBuilder().
		Accept("image/png", "image/jpeg").
		SizeRange(1*KB, 20*MB).
		MaxFiles(5).
		Multiple().
		Build()

	if policy.MaxSize != 20*MB {
		t.Errorf("Expected MaxSize %d, got %d", 20*MB, policy.MaxSize)
	}
	if policy.MinSize != 1*KB {
		t.Errorf("Expected MinSize %d, got %d", 1*KB, policy.MinSize)
	}
	if policy.MaxFiles != 5 {
		t.Errorf("Expected MaxFiles 5, got %d", policy.MaxFiles)
	}
	if !policy.Multiple {
		t.Error("Expected Multiple true")
	}
	want := []string{"image/png", "image/jpeg"}
	if got := policy.Accept.Normalize(); !reflect.DeepEqual(got, want) {
		t.Errorf("Accept.Normalize() = %v, want %v", got, want)
	}
}

func TestBuilderSinglePattern(t *testing.T) {
	policy := NewBuilder().Accept("image/*").Build()
	if got := policy.Accept.Normalize(); !reflect.DeepEqual(got, []string{"image/*"}) {
		t.Errorf("Accept.Normalize() = %v", got)
	}
}

func TestBuilderRulesWinOverPatterns(t *testing.T) {
	policy := NewBuilder().
		Accept("audio/*").
		AcceptRule("image/*", ".png", ".jpg").
		AcceptRule("text/*", ".txt").
		Build()

	want := []string{".png", ".jpg", ".txt"}
	if got := policy.Accept.Normalize(); !reflect.DeepEqual(got, want) {
		t.Errorf("Accept.Normalize() = %v, want %v", got, want)
	}
}

func TestBuilderSingle(t *testing.T) {
	policy := NewBuilder().Single().Build()
	if policy.Multiple {
		t.Error("Expected Multiple false after Single()")
	}
}

func TestBuilderChainsValidators(t *testing.T) {
	nameCheck, err := MatchNames("*.png")
	if err != nil {
		t.Fatal(err)
	}
	policy := NewBuilder().
		WithValidator(nameCheck).
		WithValidator(RejectEmptyNames()).
		Build()

	if policy.Validator == nil {
		t.Fatal("Expected a chained validator")
	}
	reasons := policy.Validator(CandidateFile{})
	if len(reasons) != 2 {
		t.Errorf("Expected both validators to run, got %v", reasons)
	}
}

func TestEmptyBuilder(t *testing.T) {
	policy := Empty().Build()
	if policy.MaxSize != 0 || policy.MinSize != 0 || policy.MaxFiles != 0 {
		t.Errorf("Expected unbounded policy, got %+v", policy)
	}
	if !policy.Accept.IsZero() {
		t.Error("Expected no type filter")
	}
	if !policy.Multiple {
		t.Error("Expected Multiple true")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		accepted CandidateFile
		rejected CandidateFile
	}{
		{
			name:     "ForImages",
			policy:   ForImages().Build(),
			accepted: File("a.png", "image/png", 100),
			rejected: File("a.mp3", "audio/mpeg", 100),
		},
		{
			name:     "ForDocuments",
			policy:   ForDocuments().Build(),
			accepted: File("a.pdf", "application/pdf", 100),
			rejected: File("a.png", "image/png", 100),
		},
		{
			name:     "ForMedia",
			policy:   ForMedia().Build(),
			accepted: File("a.mp4", "video/mp4", 100),
			rejected: File("a.pdf", "application/pdf", 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ok, _ := TypeAccepted(tt.accepted, tt.policy.Accept); !ok {
				t.Errorf("Expected %s accepted by %s", tt.accepted.Name, tt.name)
			}
			if ok, _ := TypeAccepted(tt.rejected, tt.policy.Accept); ok {
				t.Errorf("Expected %s rejected by %s", tt.rejected.Name, tt.name)
			}
		})
	}
}

func TestForAvatarIsSingle(t *testing.T) {
	policy := ForAvatar().Build()
	if policy.Multiple {
		t.Error("Avatar preset must be single-file")
	}
	_, rejections := Classify([]CandidateFile{
		File("a.png", "image/png", 100),
		File("b.png", "image/png", 100),
	}, policy)
	if len(rejections) != 2 {
		t.Errorf("Expected wholesale rejection of a 2-file batch, got %v", rejections)
	}
}
