// Package tokenizer implementiert einen Byte-Level-BPE-Tokenizer der
// Llama-3-Familie.
//
// Modul: tokenizer.go - Encoder/Decoder-Orchestrierung
// Enthaelt: Tokenizer-Struktur, New, Encode, EncodeOrdinary, Decode
//
// Encode und Decode sind reine, deterministische Funktionen ohne
// geteilten veraenderlichen Zustand; ein Tokenizer darf nach der
// Konstruktion von beliebig vielen Goroutinen gleichzeitig benutzt
// werden.
package tokenizer

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tokenwerk/tokenwerk/logutil"
)

// Tokenizer verbindet Special-Token-Scan, Pre-Tokenizer und Merge-Engine
// zu einem encode/decode-Kontrakt. Pre-Tokenizer-Pattern und Special-Set
// sind Konfigurationsdaten, keine Subtypen.
type Tokenizer struct {
	vocab        *Vocabulary
	pretokenizer *regexp2.Regexp
}

// New baut einen Tokenizer ueber dem Vokabular. Ohne Angabe wird
// DefaultPretokenizer verwendet.
func New(vocab *Vocabulary, pretokenizer ...string) (*Tokenizer, error) {
	pattern := DefaultPretokenizer
	if len(pretokenizer) > 0 {
		pattern = pretokenizer[0]
	}

	re, err := compilePretokenizer(pattern)
	if err != nil {
		return nil, err
	}

	return &Tokenizer{
		vocab:        vocab,
		pretokenizer: re,
	}, nil
}

// Vocabulary gibt das zugrundeliegende Vokabular zurueck.
func (t *Tokenizer) Vocabulary() *Vocabulary {
	return t.vocab
}

// Encode wandelt Text in Token-IDs. Special-Token-Literale im Input
// werden gescannt: erlaubte liefern ihre feste ID, nicht erlaubte
// brechen mit SpecialTokenError ab.
func (t *Tokenizer) Encode(s string, allowed AllowedSpecials) ([]int32, error) {
	fragments, err := t.scanSpecials(s, allowed)
	if err != nil {
		return nil, err
	}

	ids := []int32{}
	for _, frag := range fragments {
		if len(frag.ids) > 0 {
			ids = append(ids, frag.ids...)
			continue
		}

		ids = t.encodeOrdinary(frag.value, ids)
	}

	logutil.Trace("encoded", "text", s, "ids", ids)
	return ids, nil
}

// EncodeOrdinary wandelt Text in Token-IDs, ohne Special-Token-Literale
// zu interpretieren - fuer Inhalte, die nie als Steuer-Tokens gelesen
// werden duerfen.
func (t *Tokenizer) EncodeOrdinary(s string) []int32 {
	ids := t.encodeOrdinary(s, []int32{})
	logutil.Trace("encoded ordinary", "text", s, "ids", ids)
	return ids
}

func (t *Tokenizer) encodeOrdinary(s string, ids []int32) []int32 {
	for _, chunk := range t.split(s) {
		ids = t.mergeChunk(chunk, ids)
	}

	return ids
}

// Decode konkateniert die Byte-Folgen der IDs, Special-Tokens ihr
// Literal eingeschlossen. Eine ID ausserhalb des gueltigen Bereichs
// liefert UnknownTokenError. Das Ergebnis sind rohe Bytes; UTF-8-
// Validierung ist Sache des Aufrufers.
func (t *Tokenizer) Decode(ids []int32) (string, error) {
	var sb strings.Builder
	for _, id := range ids {
		piece, err := t.vocab.Decode(id)
		if err != nil {
			return "", err
		}

		sb.WriteString(piece)
	}

	logutil.Trace("decoded", "ids", ids, "text", sb.String())
	return sb.String(), nil
}
