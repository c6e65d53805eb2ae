// merge_test.go - Unit Tests fuer die Merge-Engine
//
// Testet Rang-Reihenfolge, Leftmost-Tie-Break und Einzelbyte-Fallback.
package tokenizer

import (
	"reflect"
	"testing"
)

func TestMergeChunk(t *testing.T) {
	tests := []struct {
		name  string
		extra []string
		chunk string
		want  []int32
	}{
		{
			name:  "Paar mit Rang wird gemergt",
			extra: []string{"ab"},
			chunk: "ab",
			want:  []int32{256},
		},
		{
			name:  "ohne Rang nur Fallbacks",
			extra: []string{"ab"},
			chunk: "ba",
			want:  []int32{'b', 'a'},
		},
		{
			name:  "niedrigster Rang zuerst",
			extra: []string{"bc", "ab"},
			chunk: "abc",
			want:  []int32{'a', 256}, // bc (Rang 256) schlaegt ab (Rang 257)
		},
		{
			name:  "Leftmost bei Rang-Gleichstand",
			extra: []string{"aa"},
			chunk: "aaa",
			want:  []int32{256, 'a'},
		},
		{
			name:  "Kaskade bis zum vollen Token",
			extra: []string{"ab", "abc"},
			chunk: "abc",
			want:  []int32{257},
		},
		{
			name:  "Chunk direkt im Vokabular",
			extra: []string{"hello"},
			chunk: "hello",
			want:  []int32{256},
		},
		{
			name:  "leerer Chunk",
			extra: nil,
			chunk: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := newTestTokenizer(t, tt.extra...)
			got := tok.mergeChunk(tt.chunk, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mergeChunk(%q) = %v, want %v", tt.chunk, got, tt.want)
			}
		})
	}
}

// TestMergeDeterminism prueft, dass wiederholte Merges identisch sind
func TestMergeDeterminism(t *testing.T) {
	tok := newTestTokenizer(t, "ab", "ba", "aba", "bab", "abab")

	first := tok.mergeChunk("abababab", nil)
	for range 10 {
		if got := tok.mergeChunk("abababab", nil); !reflect.DeepEqual(got, first) {
			t.Fatalf("mergeChunk nicht deterministisch: %v vs %v", got, first)
		}
	}
}
