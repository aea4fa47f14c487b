// Package affirm picks the affirmation phrase shown for a calendar day.
package affirm

import "math/rand"

var phrases = []string{
	"Today is full of possibilities and I embrace them with confidence.",
	"I am capable of achieving great things, one step at a time.",
	"My efforts today will create the tomorrow I desire.",
	"I choose to focus on progress, not perfection.",
	"Every challenge I face makes me stronger and wiser.",
	"I am worthy of success and happiness in all areas of my life.",
	"Today I will be kind to myself and celebrate small victories.",
	"I have the power to create positive change in my life.",
	"My potential is limitless and I trust in my abilities.",
	"I am grateful for this moment and the opportunities it brings.",
	"I choose to see obstacles as opportunities for growth.",
	"Today I will take action towards my dreams with courage.",
	"I am deserving of love, respect, and all good things.",
	"My mindset shapes my reality, and I choose positivity.",
	"I trust the process and know that everything unfolds perfectly.",
	"Today I will be present and find joy in simple moments.",
	"I am resilient and can handle whatever comes my way.",
	"My unique gifts and talents make a difference in the world.",
	"I choose to let go of what I cannot control and focus on what I can.",
	"Today is a fresh start and I embrace it with enthusiasm.",
}

// Phrases returns the fixed ordered phrase list.
func Phrases() []string {
	return phrases
}

// Count returns the number of phrases.
func Count() int {
	return len(phrases)
}

// Hash computes the rolling hash of a day key. The arithmetic is int32 with
// natural wraparound so the result matches the hashes stored selections were
// derived from, character for character.
func Hash(day string) int32 {
	var h int32
	for _, c := range day {
		h = h<<5 - h + int32(c)
	}
	return h
}

// IndexFor maps a day key onto a phrase index.
func IndexFor(day string) int {
	h := int64(Hash(day))
	if h < 0 {
		h = -h
	}
	return int(h % int64(len(phrases)))
}

// Pick returns the deterministic phrase for a day key. The same key always
// yields the same phrase.
func Pick(day string) string {
	return phrases[IndexFor(day)]
}

// Random returns a uniformly random phrase. This is the only
// non-deterministic selection path.
func Random() string {
	return phrases[rand.Intn(len(phrases))]
}
