package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the embedded default word list, in the same one-word-per-line
// format as a WORDS_FILE.
const WordsFile = "words.txt"

// DefaultWords opens the embedded word list. The caller closes it.
func DefaultWords() (fs.File, error) {
	return FS.Open(WordsFile)
}
