// internal/words/words.go
//
// Dictionary of valid guesses and secret words.
//
// Responsibilities:
//   - Load a word list from a file or fall back to the embedded default.
//   - Normalize every entry to its upper-case canonical form.
//   - Answer case-insensitive membership queries.
//   - Expose a stable, indexable order for sampling.
//
// Word list format:
//   - One word per line, exactly 5 letters a–z (any case).
//   - Blank lines and lines starting with '#' are ignored.
//   - Duplicates collapse to the first occurrence.
//
// Constraints:
//   • A Dictionary is immutable once built and safe for concurrent reads.
//   • Empty or malformed input is rejected at construction.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/werdle/assets"
)

// Length is the number of letters in every dictionary word.
const Length = 5

var (
	// ErrEmpty is returned when a word source yields no words.
	ErrEmpty = errors.New("words: dictionary is empty")
	// ErrMalformed is returned for entries that are not 5 letters a–z.
	ErrMalformed = errors.New("words: malformed word")
)

// Dictionary is an immutable set of canonical (upper-case) words.
type Dictionary struct {
	list []string           // insertion order, deduplicated
	set  map[string]struct{} // membership
}

// New builds a Dictionary from raw words.
// Every word is normalized; a single malformed word fails the whole list.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{
		list: make([]string, 0, len(list)),
		set:  make(map[string]struct{}, len(list)),
	}
	for _, raw := range list {
		w := Normalize(raw)
		if !IsWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, raw)
		}
		d.add(w)
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w := Normalize(s)
		if !IsWord(w) {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, line, s)
		}
		d.add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load reads the dictionary at path, or the embedded default if path is empty.
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Default parses the embedded word list.
func Default() (*Dictionary, error) {
	f, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (d *Dictionary) add(w string) {
	if _, ok := d.set[w]; ok {
		return
	}
	d.set[w] = struct{}{}
	d.list = append(d.list, w)
}

// Contains reports whether w is in the dictionary, ignoring case.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[Normalize(w)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

// At returns the i-th word in load order. It panics if i is out of range.
func (d *Dictionary) At(i int) string { return d.list[i] }

// Words returns a copy of all words in load order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.list))
	copy(out, d.list)
	return out
}

// Normalize trims whitespace and upper-cases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

// IsWord reports whether w is exactly Length upper-case ASCII letters.
func IsWord(w string) bool {
	if len(w) != Length {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
