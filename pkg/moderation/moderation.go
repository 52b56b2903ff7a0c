package moderation

import "strings"

// defaultFlaggedWords is the fixed keyword list for the moderation gate.
var defaultFlaggedWords = []string{"kill", "harm", "attack", "violence", "weapon"}

// Checker flags user input containing blocked keywords. Pure and synchronous,
// safe to share across goroutines.
type Checker struct {
	flagged []string
}

func NewChecker() *Checker {
	return &Checker{flagged: defaultFlaggedWords}
}

func NewCheckerWithWords(words []string) *Checker {
	return &Checker{flagged: words}
}

func (c *Checker) IsFlagged(text string) bool {
	lowered := strings.ToLower(text)
	for _, word := range c.flagged {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
