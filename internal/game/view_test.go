package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardShape(t *testing.T) {
	e := newTestEngine(t, smallWords)
	s := newTestGame(t, e, "CRANE")
	s, _ = submit(t, e, s, "SLATE")
	s = typeWord(t, e, s, "PL")

	rows := e.Board(s)
	require.Len(t, rows, MaxGuesses)

	assert.Equal(t, RowGuess, rows[0].Kind)
	assert.Equal(t, Cell{Letter: "S", Status: StatusAbsent}, rows[0].Cells[0])
	assert.Equal(t, Cell{Letter: "A", Status: StatusCorrect}, rows[0].Cells[2])

	assert.Equal(t, RowCurrent, rows[1].Kind)
	assert.Equal(t, []Cell{{Letter: "P"}, {Letter: "L"}, {}, {}, {}}, rows[1].Cells)

	for _, r := range rows[2:] {
		assert.Equal(t, RowEmpty, r.Kind)
		assert.Len(t, r.Cells, 5)
	}
}

func TestBoardWhenOverHasNoCurrentRow(t *testing.T) {
	e := newTestEngine(t, smallWords)
	s, _ := submit(t, e, newTestGame(t, e, "CRANE"), "CRANE")

	rows := e.Board(s)
	require.Len(t, rows, MaxGuesses)
	assert.Equal(t, RowGuess, rows[0].Kind)
	for _, r := range rows[1:] {
		assert.Equal(t, RowEmpty, r.Kind)
	}
}

func TestBoardFull(t *testing.T) {
	e := newTestEngine(t, smallWords)
	s := newTestGame(t, e, "CRANE")
	for i := 0; i < MaxGuesses; i++ {
		s, _ = submit(t, e, s, "SLATE")
	}
	rows := e.Board(s)
	require.Len(t, rows, MaxGuesses)
	for _, r := range rows {
		assert.Equal(t, RowGuess, r.Kind)
	}
}

func TestKeyboardStatus(t *testing.T) {
	e := newTestEngine(t, smallWords)
	s := newTestGame(t, e, "CRANE")

	assert.Equal(t, StatusUnused, KeyboardStatus(s, 'A'))

	s, _ = submit(t, e, s, "TRACE")
	// TRACE has C out of place.
	assert.Equal(t, StatusPresent, KeyboardStatus(s, 'C'))
	assert.Equal(t, StatusAbsent, KeyboardStatus(s, 't'))
	assert.Equal(t, StatusCorrect, KeyboardStatus(s, 'R'))
	assert.Equal(t, StatusUnused, KeyboardStatus(s, 'Z'))
	assert.Equal(t, StatusUnused, KeyboardStatus(s, '?'))

	s, _ = submit(t, e, s, "CRANE")
	// Best status wins across guesses.
	assert.Equal(t, StatusCorrect, KeyboardStatus(s, 'C'))
	assert.Equal(t, StatusCorrect, e.KeyboardStatus(s, 'C'))
}

func TestKeyboardCoversAlphabet(t *testing.T) {
	e := newTestEngine(t, smallWords)
	s, _ := submit(t, e, newTestGame(t, e, "CRANE"), "SLATE")

	keys := e.Keyboard(s)
	require.Len(t, keys, 26)
	assert.Equal(t, KeyStatus{Letter: "A", Status: StatusCorrect}, keys[0])
	assert.Equal(t, KeyStatus{Letter: "S", Status: StatusAbsent}, keys['S'-'A'])
	assert.Equal(t, KeyStatus{Letter: "Z", Status: StatusUnused}, keys[25])
}

func TestKeyboardFollowsScoring(t *testing.T) {
	list := []string{"CRANE", "EERIE"}
	simple := newTestEngine(t, list)
	standard := newTestEngine(t, list, WithScoring(ScoringStandard))

	s, _ := submit(t, simple, newTestGame(t, simple, "CRANE"), "EERIE")
	assert.Equal(t, StatusCorrect, simple.KeyboardStatus(s, 'E'))
	assert.Equal(t, StatusPresent, simple.KeyboardStatus(s, 'R'))
	assert.Equal(t, StatusPresent, standard.KeyboardStatus(s, 'R'))

	rows := standard.Board(s)
	assert.Equal(t, StatusAbsent, rows[0].Cells[0].Status)
	assert.Equal(t, StatusPresent, simple.Board(s)[0].Cells[0].Status)
}
