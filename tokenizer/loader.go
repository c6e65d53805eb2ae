// loader.go - Laden des Rang-Formats und Llama-3-Registry
//
// Dieses Modul enthaelt:
// - LoadRanks: liest das tiktoken-Rang-Format (base64-Token + Rang)
// - Llama3Specials: die feste Special-Token-Registry der Llama-3-Familie
// - FromFile: Komplett-Konstruktor aus einer Rang-Datei
//
// Das Rang-Format ist eine Zeile pro Token: base64(token_bytes),
// Leerzeichen, Rang. Raenge steigen strikt von 0, die ersten 256 sind
// die Einzelbyte-Fallbacks in Byte-Reihenfolge (validiert von
// NewVocabulary).
package tokenizer

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Special-Token-Literale der Llama-3-Familie.
const (
	BeginOfText   = "<|begin_of_text|>"
	EndOfText     = "<|end_of_text|>"
	StartHeaderID = "<|start_header_id|>"
	EndHeaderID   = "<|end_header_id|>"
	EndOfTurn     = "<|eot_id|>"
)

// NumReservedSpecials ist die Gesamtgroesse des Special-Blocks; nicht
// benannte Plaetze sind reserved_special_token-Platzhalter.
const NumReservedSpecials = 256

// LoadRanks liest Token aus dem tiktoken-Rang-Format in Rang-Reihenfolge.
// Doppelte Tokens und nicht monoton steigende Raenge sind Fehler.
func LoadRanks(r io.Reader) ([]string, error) {
	ranks := orderedmap.New[string, int]()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		encoded, rankField, ok := strings.Cut(text, " ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: want \"base64 rank\", got %q", ErrInvalidVocabulary, line, text)
		}

		token, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidVocabulary, line, err)
		}

		rank, err := strconv.Atoi(rankField)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidVocabulary, line, err)
		}

		if rank != ranks.Len() {
			return nil, fmt.Errorf("%w: line %d: rank %d out of order, want %d", ErrInvalidVocabulary, line, rank, ranks.Len())
		}

		if _, ok := ranks.Get(string(token)); ok {
			return nil, fmt.Errorf("%w: line %d: duplicate token %q", ErrInvalidVocabulary, line, token)
		}

		ranks.Set(string(token), rank)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	values := make([]string, 0, ranks.Len())
	for pair := ranks.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Key)
	}

	return values, nil
}

// Llama3Specials gibt die Registry der Llama-3-Familie zurueck: die
// benannten Steuer-Tokens plus reserved-Platzhalter bis
// NumReservedSpecials, IDs fortlaufend ab base.
func Llama3Specials(base int32) []SpecialToken {
	literals := []string{
		BeginOfText,
		EndOfText,
		"<|reserved_special_token_0|>",
		"<|reserved_special_token_1|>",
		"<|reserved_special_token_2|>",
		"<|reserved_special_token_3|>",
		StartHeaderID,
		EndHeaderID,
		"<|reserved_special_token_4|>",
		EndOfTurn,
	}

	for i := 5; len(literals) < NumReservedSpecials; i++ {
		literals = append(literals, fmt.Sprintf("<|reserved_special_token_%d|>", i))
	}

	specials := make([]SpecialToken, len(literals))
	for i, literal := range literals {
		specials[i] = SpecialToken{Literal: literal, ID: base + int32(i)}
	}

	return specials
}

// FromFile laedt eine Rang-Datei und baut einen Tokenizer mit der
// Llama-3-Registry und dem Default-Pre-Tokenizer.
func FromFile(path string) (*Tokenizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := LoadRanks(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	vocab, err := NewVocabulary(values, BeginOfText, EndOfText, Llama3Specials(int32(len(values)))...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	slog.Debug("loaded vocabulary", "path", path, "tokens", len(values), "specials", NumReservedSpecials)
	return New(vocab)
}
