// loader_test.go - Unit Tests fuer Rang-Datei und Llama-3-Registry
//
// Testet LoadRanks (Format- und Konsistenz-Fehler), Llama3Specials und
// FromFile.
package tokenizer

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rankData baut den Inhalt einer Rang-Datei aus Tokens in Rang-Reihenfolge
func rankData(tokens []string) string {
	var sb strings.Builder
	for i, token := range tokens {
		fmt.Fprintf(&sb, "%s %d\n", base64.StdEncoding.EncodeToString([]byte(token)), i)
	}

	return sb.String()
}

func TestLoadRanks(t *testing.T) {
	tokens := byteValues("ab", "cd")
	values, err := LoadRanks(strings.NewReader(rankData(tokens)))
	require.NoError(t, err)
	assert.Equal(t, tokens, values)
}

func TestLoadRanksErrors(t *testing.T) {
	ab := base64.StdEncoding.EncodeToString([]byte("ab"))
	cd := base64.StdEncoding.EncodeToString([]byte("cd"))

	tests := []struct {
		name, data string
	}{
		{"kein Rang-Feld", ab + "\n"},
		{"invalides base64", "!!! 0\n"},
		{"invalider Rang", ab + " zero\n"},
		{"Rang-Luecke", ab + " 0\n" + cd + " 2\n"},
		{"Rang faellt", ab + " 1\n" + cd + " 0\n"},
		{"doppeltes Token", ab + " 0\n" + ab + " 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRanks(strings.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrInvalidVocabulary)
		})
	}
}

func TestLlama3Specials(t *testing.T) {
	specials := Llama3Specials(1000)
	require.Len(t, specials, NumReservedSpecials)

	// IDs fortlaufend ab base
	for i, special := range specials {
		assert.Equal(t, int32(1000+i), special.ID)
	}

	byLiteral := make(map[string]int32, len(specials))
	for _, special := range specials {
		byLiteral[special.Literal] = special.ID
	}

	assert.Equal(t, int32(1000), byLiteral[BeginOfText])
	assert.Equal(t, int32(1001), byLiteral[EndOfText])
	assert.Equal(t, int32(1006), byLiteral[StartHeaderID])
	assert.Equal(t, int32(1007), byLiteral[EndHeaderID])
	assert.Equal(t, int32(1009), byLiteral[EndOfTurn])
	assert.Equal(t, int32(1255), byLiteral["<|reserved_special_token_250|>"])
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranks.tiktoken")
	require.NoError(t, os.WriteFile(path, []byte(rankData(byteValues("he", "ll", "llo"))), 0o644))

	tok, err := FromFile(path)
	require.NoError(t, err)

	// he + (ll+o): Merges kaskadieren nach Rang
	ids, err := tok.Encode("hello", nil)
	require.NoError(t, err)
	assert.Equal(t, []int32{256, 258}, ids)

	decoded, err := tok.Decode(ids)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)

	// Registry sitzt direkt hinter dem gewoehnlichen Vokabular
	bos, ok := tok.Vocabulary().SpecialID(BeginOfText)
	require.True(t, ok)
	assert.Equal(t, int32(259), bos)
	assert.Equal(t, bos, tok.Vocabulary().BOS)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "fehlt.tiktoken"))
	assert.Error(t, err)
}
