// special.go - Special-Token-Scan mit Allow-Liste
//
// Dieses Modul enthaelt:
// - AllowedSpecials: Allow-Liste des Aufrufers
// - scanSpecials: zerlegt Input in Literal- und Special-Fragmente
//
// Der Scanner laeuft von links nach rechts und nimmt an jeder Position
// den fruehesten Treffer; bei gleichem Offset gewinnt das laengste
// Literal, damit kein kuerzeres Literal ein laengeres mit ihm als
// Praefix verdeckt. Ein Treffer ausserhalb der Allow-Liste bricht mit
// SpecialTokenError ab - das verhindert, dass unvertrauter Text
// Steuer-Tokens einschleust.
package tokenizer

import (
	"strings"
)

// AllowedSpecials bestimmt, welche Special-Token-Literale im Input
// woertlich vorkommen duerfen. nil oder ein leerer Wert erlaubt keines.
type AllowedSpecials map[string]bool

// AllSpecials gibt eine Allow-Liste mit allen registrierten
// Special-Tokens zurueck.
func (t *Tokenizer) AllSpecials() AllowedSpecials {
	allowed := make(AllowedSpecials, len(t.vocab.specials))
	for _, special := range t.vocab.specials {
		allowed[special.Literal] = true
	}

	return allowed
}

// fragment ist ein Input-Abschnitt; ids ist bei Special-Fragmenten
// bereits belegt, Literal-Fragmente gehen durch Pre-Tokenizer und Merge.
type fragment struct {
	value string
	ids   []int32
}

func (t *Tokenizer) scanSpecials(s string, allowed AllowedSpecials) ([]fragment, error) {
	var fragments []fragment

	rest, offset := s, 0
	for rest != "" {
		matchIndex, matchLiteral := -1, ""
		for _, special := range t.vocab.specials {
			i := strings.Index(rest, special.Literal)
			if i < 0 {
				continue
			}

			if matchIndex < 0 || i < matchIndex || (i == matchIndex && len(special.Literal) > len(matchLiteral)) {
				matchIndex, matchLiteral = i, special.Literal
			}
		}

		if matchIndex < 0 {
			fragments = append(fragments, fragment{value: rest})
			break
		}

		if !allowed[matchLiteral] {
			return nil, &SpecialTokenError{Literal: matchLiteral, Offset: offset + matchIndex}
		}

		if matchIndex > 0 {
			fragments = append(fragments, fragment{value: rest[:matchIndex]})
		}

		id, _ := t.vocab.SpecialID(matchLiteral)
		fragments = append(fragments, fragment{value: matchLiteral, ids: []int32{id}})

		rest = rest[matchIndex+len(matchLiteral):]
		offset += matchIndex + len(matchLiteral)
	}

	return fragments, nil
}
