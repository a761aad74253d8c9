package game

import "github.com/robalobadob/werdle/internal/words"

// RowKind tells a presentation layer how to draw a board row.
type RowKind string

const (
	RowGuess   RowKind = "guess"   // submitted, cells carry a status
	RowCurrent RowKind = "current" // the pending guess
	RowEmpty   RowKind = "empty"   // not yet reached
)

// Cell is one tile of the board. Status is empty outside guess rows.
type Cell struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status,omitempty"`
}

// Row is one line of the board, always words.Length cells wide.
type Row struct {
	Kind  RowKind `json:"kind"`
	Cells []Cell  `json:"cells"`
}

// KeyStatus is one letter of the keyboard.
type KeyStatus struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status"`
}

// Board derives MaxGuesses rows from s: every submitted guess with its
// statuses, then the pending guess unless the game is over, then empty rows.
func (e *Engine) Board(s State) []Row {
	rows := make([]Row, 0, MaxGuesses)
	for _, g := range s.Guesses {
		marks := e.scoring.Score(g, s.Secret)
		cells := make([]Cell, len(g))
		for i := range cells {
			cells[i] = Cell{Letter: g[i : i+1], Status: marks[i]}
		}
		rows = append(rows, Row{Kind: RowGuess, Cells: cells})
	}
	if !s.Over && len(rows) < MaxGuesses {
		cells := make([]Cell, words.Length)
		for i := 0; i < len(s.Pending) && i < words.Length; i++ {
			cells[i].Letter = s.Pending[i : i+1]
		}
		rows = append(rows, Row{Kind: RowCurrent, Cells: cells})
	}
	for len(rows) < MaxGuesses {
		rows = append(rows, Row{Kind: RowEmpty, Cells: make([]Cell, words.Length)})
	}
	return rows
}

// KeyboardStatus is the best status of letter across every position of
// every guess in s, or StatusUnused if no guess contains it.
func (e *Engine) KeyboardStatus(s State, letter rune) LetterStatus {
	return keyboardStatus(e.scoring, s, letter)
}

// Keyboard returns KeyboardStatus for each letter A–Z, in order.
func (e *Engine) Keyboard(s State) []KeyStatus {
	best := bestStatuses(e.scoring, s)
	out := make([]KeyStatus, 26)
	for i := range out {
		out[i] = KeyStatus{Letter: string(rune('A' + i)), Status: best[i]}
	}
	return out
}

// KeyboardStatus applies the simple rule of LetterStatusAt.
func KeyboardStatus(s State, letter rune) LetterStatus {
	return keyboardStatus(ScoringSimple, s, letter)
}

func keyboardStatus(m Scoring, s State, letter rune) LetterStatus {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return StatusUnused
	}
	return bestStatuses(m, s)[letter-'A']
}

func bestStatuses(m Scoring, s State) [26]LetterStatus {
	var best [26]LetterStatus
	for i := range best {
		best[i] = StatusUnused
	}
	for _, g := range s.Guesses {
		marks := m.Score(g, s.Secret)
		for i := 0; i < len(g); i++ {
			j := idx(g[i])
			if j < 0 {
				continue
			}
			if marks[i].rank() > best[j].rank() {
				best[j] = marks[i]
			}
		}
	}
	return best
}
