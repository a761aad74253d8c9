package game

import "strings"

// Scoring selects how repeated letters are marked Present.
type Scoring int

const (
	// ScoringSimple marks a letter Present whenever it occurs anywhere in
	// the secret. A repeated guess letter may be Present more than once
	// even if the secret holds a single instance.
	ScoringSimple Scoring = iota
	// ScoringStandard consumes each secret letter at most once.
	ScoringStandard
)

// ParseScoring maps "simple" or "standard" to a Scoring. Anything else is
// reported as not ok.
func ParseScoring(s string) (Scoring, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simple":
		return ScoringSimple, true
	case "standard":
		return ScoringStandard, true
	}
	return ScoringSimple, false
}

func (m Scoring) String() string {
	if m == ScoringStandard {
		return "standard"
	}
	return "simple"
}

// LetterStatusAt classifies guess[pos] against secret with the simple rule:
// Correct on a positional match, Present if the letter occurs anywhere in
// secret, Absent otherwise.
func LetterStatusAt(guess, secret string, pos int) LetterStatus {
	switch {
	case guess[pos] == secret[pos]:
		return StatusCorrect
	case strings.IndexByte(secret, guess[pos]) >= 0:
		return StatusPresent
	}
	return StatusAbsent
}

// Score evaluates every position of guess against secret.
// guess and secret must be the same length.
func (m Scoring) Score(guess, secret string) []LetterStatus {
	if m == ScoringStandard {
		return scoreStandard(guess, secret)
	}
	res := make([]LetterStatus, len(guess))
	for i := range res {
		res[i] = LetterStatusAt(guess, secret, i)
	}
	return res
}

// scoreStandard is the two-pass algorithm.
//
// Pass 1 marks exact matches and counts the remaining secret letters.
// Pass 2 marks a non-matching guess letter Present while its count lasts.
func scoreStandard(guess, secret string) []LetterStatus {
	n := len(guess)
	res := make([]LetterStatus, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = StatusCorrect
		} else if j := idx(secret[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = StatusPresent
			counts[j]--
		} else {
			res[i] = StatusAbsent
		}
	}
	return res
}

// idx maps 'A'..'Z' to 0..25, anything else to -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}
