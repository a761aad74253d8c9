// assets/embed.go
//
// Embedded default word list, used when no WORDS_FILE is configured.
package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// WordList opens the embedded default dictionary.
// The caller closes the returned reader.
func WordList() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}
