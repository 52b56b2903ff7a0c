package moderation

import "testing"

func TestIsFlagged(t *testing.T) {
	checker := NewChecker()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "clean message", text: "I need a laptop for gaming", want: false},
		{name: "flagged word", text: "how to attack a server", want: true},
		{name: "case insensitive", text: "KILL the process", want: true},
		{name: "substring match", text: "this laptop is a weapon of productivity", want: true},
		{name: "word inside another word", text: "the killer feature is battery life", want: true},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.IsFlagged(tt.text); got != tt.want {
				t.Errorf("IsFlagged(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCheckerWithCustomWords(t *testing.T) {
	checker := NewCheckerWithWords([]string{"banana"})

	if !checker.IsFlagged("I want a banana laptop") {
		t.Error("custom word should be flagged")
	}
	if checker.IsFlagged("how to attack a server") {
		t.Error("default words should not apply to a custom checker")
	}
}
