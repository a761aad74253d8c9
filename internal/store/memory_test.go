package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/werdle/internal/game"
)

func TestCreateGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	id, err := m.Create(ctx, game.State{Secret: "CRANE"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	s, err := m.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "CRANE", s.Secret)
	assert.Equal(t, 1, m.Len())

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	a, _ := m.Create(ctx, game.State{Secret: "CRANE"})
	b, _ := m.Create(ctx, game.State{Secret: "SLATE"})
	require.NotEqual(t, a, b)

	_, err := m.Update(ctx, a, func(s game.State) (game.State, error) {
		s.Pending = "CR"
		return s, nil
	})
	require.NoError(t, err)

	sb, _ := m.Get(ctx, b)
	assert.Empty(t, sb.Pending)
}

func TestUpdateErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id, _ := m.Create(ctx, game.State{Secret: "CRANE", Pending: "C"})

	boom := errors.New("boom")
	got, err := m.Update(ctx, id, func(s game.State) (game.State, error) {
		s.Pending = "XYZ"
		return s, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "C", got.Pending)

	s, _ := m.Get(ctx, id)
	assert.Equal(t, "C", s.Pending)

	_, err = m.Update(ctx, "missing", func(s game.State) (game.State, error) { return s, nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSerializes(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id, _ := m.Create(ctx, game.State{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Update(ctx, id, func(s game.State) (game.State, error) {
				s.Guesses = append(s.Guesses, "CRANE")
				return s, nil
			})
		}()
	}
	wg.Wait()

	s, _ := m.Get(ctx, id)
	assert.Len(t, s.Guesses, 50)
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newMemory(func() time.Time { return now })

	old, _ := m.Create(ctx, game.State{})
	now = now.Add(2 * time.Hour)
	fresh, _ := m.Create(ctx, game.State{})

	assert.Equal(t, 1, m.Prune(ctx, time.Hour))
	_, err := m.Get(ctx, old)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, fresh)
	assert.NoError(t, err)

	require.NoError(t, m.Delete(ctx, fresh))
	assert.Equal(t, 0, m.Len())
}
