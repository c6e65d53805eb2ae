// errors.go - Fehlertypen des Tokenizers
//
// Dieses Modul enthaelt:
// - ErrInvalidVocabulary: Sentinel fuer fehlerhafte Vokabular-Konstruktion
// - SpecialTokenError: nicht erlaubtes Special-Token im Input
// - UnknownTokenError: unbekannte Token-ID beim Decodieren
package tokenizer

import (
	"errors"
	"fmt"
)

// ErrInvalidVocabulary wird bei fehlerhafter Vokabular-Konstruktion
// zurueckgegeben (Duplikate, fehlende Byte-Fallbacks, ungueltige IDs).
// Konkrete Ursachen werden mit %w um diesen Sentinel gewickelt.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

// SpecialTokenError meldet ein Special-Token-Literal, das im Input
// vorkommt, aber nicht in der Allow-Liste des Aufrufers steht.
// Der Aufrufer kann mit EncodeOrdinary oder einer erweiterten
// Allow-Liste erneut encodieren.
type SpecialTokenError struct {
	Literal string
	Offset  int
}

func (e *SpecialTokenError) Error() string {
	return fmt.Sprintf("special token %q not allowed in input (offset %d)", e.Literal, e.Offset)
}

// UnknownTokenError meldet eine Token-ID ausserhalb des gueltigen
// Bereichs beim Decodieren.
type UnknownTokenError struct {
	ID int32
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token id %d", e.ID)
}
