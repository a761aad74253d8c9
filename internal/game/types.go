// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - LetterStatus: per-letter classification of a guess.
//   - State: value describing one game; threaded through every command.
//   - Outcome/Result: what a command reports back to the caller.
//   - Phase: coarse in_progress/won/lost view of a State.

package game

import "errors"

// MaxGuesses is the number of attempts per game.
const MaxGuesses = 6

// LetterStatus is the evaluation of a letter against the secret word.
// Ranked Correct > Present > Absent > Unused.
type LetterStatus string

const (
	StatusUnused  LetterStatus = "unused"
	StatusAbsent  LetterStatus = "absent"
	StatusPresent LetterStatus = "present"
	StatusCorrect LetterStatus = "correct"
)

func (s LetterStatus) rank() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusPresent:
		return 2
	case StatusAbsent:
		return 1
	}
	return 0
}

// State holds one game. It is a value: commands return a new State and
// never modify the one they were given.
type State struct {
	Secret  string   // upper-case, always a dictionary word
	Guesses []string // submitted guesses in order, upper-case
	Pending string   // in-progress entry, 0–5 upper-case letters
	Over    bool     // won, or MaxGuesses reached
	Won     bool     // last guess equals Secret
}

// Attempts returns the number of submitted guesses.
func (s State) Attempts() int { return len(s.Guesses) }

// Phase is the coarse state of a game.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
)

// Phase reports whether the game is running, won or lost.
func (s State) Phase() Phase {
	switch {
	case s.Won:
		return PhaseWon
	case s.Over:
		return PhaseLost
	}
	return PhaseInProgress
}

// Outcome tags a command result.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeWon      Outcome = "won"
	OutcomeLost     Outcome = "lost"
)

// Result is reported by every command alongside the new State.
// Err is set only for rejected commands.
type Result struct {
	Outcome Outcome
	Message string
	Err     error
}

// OK reports whether the command was applied.
func (r Result) OK() bool { return r.Outcome != OutcomeRejected }

// Tag renders the outcome as "accepted", "won", "lost" or "rejected:<reason>".
func (r Result) Tag() string {
	if r.Outcome == OutcomeRejected {
		return string(OutcomeRejected) + ":" + Reason(r.Err)
	}
	return string(r.Outcome)
}

func accepted(msg string) Result { return Result{Outcome: OutcomeAccepted, Message: msg} }

func rejected(err error, msg string) Result {
	return Result{Outcome: OutcomeRejected, Message: msg, Err: err}
}

var (
	ErrInvalidLength   = errors.New("invalid length")
	ErrNotInDictionary = errors.New("not in dictionary")
	ErrGameOver        = errors.New("game already over")
	ErrNoOp            = errors.New("no-op: guess empty or full")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Reason maps a command error to its short machine-readable name.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrNotInDictionary):
		return "not_in_dictionary"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	case errors.Is(err, ErrNoOp):
		return "no_op"
	case errors.Is(err, ErrInvalidLetter):
		return "invalid_letter"
	case errors.Is(err, ErrUnknownCommand):
		return "unknown_command"
	}
	return "unknown"
}
