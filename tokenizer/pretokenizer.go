// pretokenizer.go - Regex-basierte Vor-Segmentierung
//
// Dieses Modul enthaelt:
// - DefaultPretokenizer: das feste Llama-3-Pattern
// - split: zerlegt Text in Chunks entlang der Pattern-Alternativen
//
// Das Pattern braucht negatives Lookahead (\s+(?!\S)), das die
// Standardbibliothek nicht kann, daher dlclark/regexp2. Die Alternativen-
// Reihenfolge bestimmt die Chunk-Grenzen und damit bit-genau die
// Merge-Ergebnisse; das Pattern darf nicht umgestellt werden.
package tokenizer

import (
	"github.com/dlclark/regexp2"
)

// DefaultPretokenizer ist das Pre-Tokenizer-Pattern der Llama-3-Familie:
// Kontraktionen, Buchstaben-Runs, Ziffern-Runs (max. 3), Symbol-Runs mit
// optionalen Newlines, Whitespace-Runs.
const DefaultPretokenizer = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

func compilePretokenizer(pattern string) (*regexp2.Regexp, error) {
	return regexp2.Compile(pattern, regexp2.Unicode|regexp2.RE2)
}

// split zerlegt s in Chunks. Die Alternativen des Patterns decken jedes
// Zeichen ab, die Chunks ergeben konkateniert wieder s.
func (t *Tokenizer) split(s string) []string {
	var chunks []string
	for m, _ := t.pretokenizer.FindStringMatch(s); m != nil; m, _ = t.pretokenizer.FindNextMatch(m) {
		chunks = append(chunks, m.String())
	}

	return chunks
}
