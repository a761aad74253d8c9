// internal/game/engine.go
//
// Core game engine.
// Responsibilities:
//   - Start new games with a secret sampled from the dictionary.
//   - Apply letter/delete/submit/reset commands to a State value.
//   - Track transitions: in_progress → won/lost.
//
// Notes:
//   - Commands never mutate the State they receive; each returns a new one.
//   - An over game rejects every command except Reset.
//   - The win check runs before the exhaustion check, so a correct sixth
//     guess is a win.
//   - The Engine's rng is shared between sessions and guarded by a mutex.
//     States are not shared; each session owns its own.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/robalobadob/werdle/internal/words"
)

// Engine applies commands against a fixed dictionary.
type Engine struct {
	dict    *words.Dictionary
	scoring Scoring

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithScoring selects the duplicate-letter rule used by Board and Keyboard.
func WithScoring(m Scoring) Option {
	return func(e *Engine) { e.scoring = m }
}

// NewEngine constructs an Engine. src drives secret selection; pass a
// fixed-seed source for reproducible games.
func NewEngine(dict *words.Dictionary, src rand.Source, opts ...Option) (*Engine, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, words.ErrEmpty
	}
	if src == nil {
		return nil, errors.New("game: nil random source")
	}
	e := &Engine{dict: dict, rng: rand.New(src)}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Dictionary returns the engine's word list.
func (e *Engine) Dictionary() *words.Dictionary { return e.dict }

// Scoring returns the engine's duplicate-letter rule.
func (e *Engine) Scoring() Scoring { return e.scoring }

// NewGame starts a game with a uniformly sampled secret.
func (e *Engine) NewGame() State {
	e.mu.Lock()
	i := e.rng.IntN(e.dict.Len())
	e.mu.Unlock()
	return State{Secret: e.dict.At(i), Guesses: []string{}}
}

// NewGameWithSecret starts a game with a fixed secret, which must be a
// dictionary word.
func (e *Engine) NewGameWithSecret(secret string) (State, error) {
	w := words.Normalize(secret)
	if !e.dict.Contains(w) {
		return State{}, fmt.Errorf("game: secret %q: %w", secret, ErrNotInDictionary)
	}
	return State{Secret: w, Guesses: []string{}}, nil
}

// AddLetter appends an upper-cased letter to the pending guess.
func (e *Engine) AddLetter(s State, letter rune) (State, Result) {
	if s.Over {
		return s, rejected(ErrGameOver, "Game is over. Start a new game")
	}
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return s, rejected(ErrInvalidLetter, "Only letters A-Z are allowed")
	}
	if len(s.Pending) >= words.Length {
		return s, rejected(ErrNoOp, "Guess is already 5 letters")
	}
	s.Pending += string(letter)
	return s, accepted("")
}

// RemoveLetter drops the last letter of the pending guess.
func (e *Engine) RemoveLetter(s State) (State, Result) {
	if s.Over {
		return s, rejected(ErrGameOver, "Game is over. Start a new game")
	}
	if s.Pending == "" {
		return s, rejected(ErrNoOp, "Nothing to delete")
	}
	s.Pending = s.Pending[:len(s.Pending)-1]
	return s, accepted("")
}

// SubmitGuess validates the pending guess and, if valid, records it.
// Rejected submissions leave Pending untouched so the player can correct it.
func (e *Engine) SubmitGuess(s State) (State, Result) {
	if s.Over {
		return s, rejected(ErrGameOver, "Game is over. Start a new game")
	}
	if len(s.Pending) != words.Length {
		return s, rejected(ErrInvalidLength, "Word must be 5 letters")
	}
	guess := words.Normalize(s.Pending)
	if !e.dict.Contains(guess) {
		return s, rejected(ErrNotInDictionary, "Not a valid word")
	}

	// Clip forces append to copy, so the caller's slice is never shared.
	s.Guesses = append(slices.Clip(s.Guesses), guess)
	s.Pending = ""

	switch {
	case guess == s.Secret:
		s.Won, s.Over = true, true
		return s, Result{Outcome: OutcomeWon, Message: "Congratulations! You won!"}
	case len(s.Guesses) >= MaxGuesses:
		s.Over = true
		return s, Result{Outcome: OutcomeLost, Message: "Game over! The word was " + s.Secret}
	}
	return s, accepted(fmt.Sprintf("Guess %d/%d accepted", len(s.Guesses), MaxGuesses))
}

// Reset discards the current game and starts a fresh one. It always succeeds.
func (e *Engine) Reset() (State, Result) {
	return e.NewGame(), accepted("New game started!")
}

// Apply is the reducer form of the four commands.
func (e *Engine) Apply(s State, cmd Command) (State, Result) {
	switch cmd.Kind {
	case CommandLetter:
		return e.AddLetter(s, cmd.Letter)
	case CommandDelete:
		return e.RemoveLetter(s)
	case CommandSubmit:
		return e.SubmitGuess(s)
	case CommandReset:
		return e.Reset()
	}
	return s, rejected(ErrUnknownCommand, "Unknown command")
}
