package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDedupes(t *testing.T) {
	d, err := New([]string{"crane", " Slate ", "CRANE", "plane"})
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"CRANE", "SLATE", "PLANE"}, d.Words())
	assert.True(t, d.Contains("crane"))
	assert.True(t, d.Contains("SlAtE"))
	assert.False(t, d.Contains("grape"))
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		list []string
		want error
	}{
		{name: "empty", list: nil, want: ErrEmpty},
		{name: "too short", list: []string{"CRANE", "CAT"}, want: ErrMalformed},
		{name: "too long", list: []string{"CRANES"}, want: ErrMalformed},
		{name: "digits", list: []string{"CR4NE"}, want: ErrMalformed},
		{name: "blank entry", list: []string{""}, want: ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.list)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# header\n\ncrane\n  slate  \n# trailing\n"
	d, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, d.Words())
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("crane\nnope\n"))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("# only comments\n\n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("grape\ntrace\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "GRAPE", d.At(0))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 100)
	for _, w := range []string{"CRANE", "SLATE", "PLANE", "GRAPE", "TRACE"} {
		assert.True(t, d.Contains(w), w)
	}
	for _, w := range d.Words() {
		assert.True(t, IsWord(w), w)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	d, err := New([]string{"CRANE"})
	require.NoError(t, err)
	list := d.Words()
	list[0] = "XXXXX"
	assert.Equal(t, "CRANE", d.At(0))
}
