// vocabulary.go - Unveraenderliches Byte-Vokabular
//
// Dieses Modul enthaelt:
// - SpecialToken: Literal/ID-Paar fuer Steuer-Tokens
// - Vocabulary: bidirektionales Mapping Token-Bytes <-> IDs
// - NewVocabulary: Konstruktion mit Validierung
//
// Die IDs 0..255 sind Einzelbyte-Fallbacks in Byte-Reihenfolge, damit
// jede moegliche Byte-Folge encodierbar ist. Die Slice-Position eines
// Tokens ist zugleich sein Merge-Rang: niedrigere IDs werden zuerst
// gemergt. Nach der Konstruktion ist das Vokabular unveraenderlich und
// ohne Synchronisation von beliebig vielen Goroutinen lesbar.
package tokenizer

import (
	"fmt"
)

// SpecialToken ist ein reserviertes Literal mit fester ID. Special-Tokens
// umgehen den BPE-Merge und tragen strukturelle Bedeutung (Rollen-Marker,
// Turn-Grenzen). Ihre IDs liegen oberhalb des gewoehnlichen Vokabulars.
type SpecialToken struct {
	Literal string
	ID      int32
}

// Vocabulary haelt das gewoehnliche Vokabular (Rang-Reihenfolge) und die
// Special-Token-Registry.
type Vocabulary struct {
	values []string
	ids    map[string]int32

	specials     []SpecialToken
	specialByLit map[string]int32
	specialByID  map[int32]string

	// BOS und EOS sind die IDs von Begin- und End-of-Text
	BOS, EOS int32
}

// NewVocabulary baut ein Vokabular aus der Token-Liste in Rang-Reihenfolge
// und der Special-Token-Registry. beginOfText und endOfText muessen als
// Literale in specials vorkommen.
//
// Fehler (alle um ErrInvalidVocabulary gewickelt):
// - weniger als 256 Tokens oder fehlende Einzelbyte-Fallbacks
// - doppelte Tokens oder Special-Literale
// - Special-IDs innerhalb des gewoehnlichen ID-Bereichs oder doppelt
func NewVocabulary(values []string, beginOfText, endOfText string, specials ...SpecialToken) (*Vocabulary, error) {
	if len(values) < 256 {
		return nil, fmt.Errorf("%w: %d tokens, need at least 256 byte fallbacks", ErrInvalidVocabulary, len(values))
	}

	v := &Vocabulary{
		values:       values,
		ids:          make(map[string]int32, len(values)),
		specials:     specials,
		specialByLit: make(map[string]int32, len(specials)),
		specialByID:  make(map[int32]string, len(specials)),
		BOS:          -1,
		EOS:          -1,
	}

	for i, value := range values {
		if i < 256 && value != string(byte(i)) {
			return nil, fmt.Errorf("%w: rank %d is %q, want byte fallback %q", ErrInvalidVocabulary, i, value, string(byte(i)))
		}

		if _, ok := v.ids[value]; ok {
			return nil, fmt.Errorf("%w: duplicate token %q at rank %d", ErrInvalidVocabulary, value, i)
		}

		v.ids[value] = int32(i)
	}

	for _, special := range specials {
		if special.ID < int32(len(values)) {
			return nil, fmt.Errorf("%w: special token %q id %d collides with ordinary range", ErrInvalidVocabulary, special.Literal, special.ID)
		}

		if _, ok := v.specialByLit[special.Literal]; ok {
			return nil, fmt.Errorf("%w: duplicate special token %q", ErrInvalidVocabulary, special.Literal)
		}

		if _, ok := v.specialByID[special.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate special token id %d", ErrInvalidVocabulary, special.ID)
		}

		v.specialByLit[special.Literal] = special.ID
		v.specialByID[special.ID] = special.Literal
	}

	var ok bool
	if v.BOS, ok = v.specialByLit[beginOfText]; !ok {
		return nil, fmt.Errorf("%w: begin-of-text %q not in special tokens", ErrInvalidVocabulary, beginOfText)
	}

	if v.EOS, ok = v.specialByLit[endOfText]; !ok {
		return nil, fmt.Errorf("%w: end-of-text %q not in special tokens", ErrInvalidVocabulary, endOfText)
	}

	return v, nil
}

// Encode gibt die ID eines gewoehnlichen Tokens zurueck, -1 wenn die
// Byte-Folge kein Token ist. Die ID ist zugleich der Merge-Rang.
func (v *Vocabulary) Encode(piece string) int32 {
	if id, ok := v.ids[piece]; ok {
		return id
	}

	return -1
}

// Decode gibt die Byte-Folge einer Token-ID zurueck, Special-Tokens
// liefern ihr Literal.
func (v *Vocabulary) Decode(id int32) (string, error) {
	if id >= 0 && id < int32(len(v.values)) {
		return v.values[id], nil
	}

	if literal, ok := v.specialByID[id]; ok {
		return literal, nil
	}

	return "", &UnknownTokenError{ID: id}
}

// SpecialID gibt die ID eines Special-Token-Literals zurueck.
func (v *Vocabulary) SpecialID(literal string) (int32, bool) {
	id, ok := v.specialByLit[literal]
	return id, ok
}

// IsSpecial meldet, ob eine ID zu einem Special-Token gehoert.
func (v *Vocabulary) IsSpecial(id int32) bool {
	_, ok := v.specialByID[id]
	return ok
}

// SpecialTokens gibt die Registry in Registrierungs-Reihenfolge zurueck.
// Der Slice darf nicht veraendert werden.
func (v *Vocabulary) SpecialTokens() []SpecialToken {
	return v.specials
}

// Len gibt die Gesamtzahl der Tokens inklusive Special-Tokens zurueck.
func (v *Vocabulary) Len() int {
	return len(v.values) + len(v.specials)
}
