// merge.go - BPE-Merge-Engine
//
// Dieses Modul enthaelt:
// - mergeChunk: mergt einen Chunk rangweise zu Token-IDs
//
// Der Chunk startet als Folge von Einzelbytes. Benachbarte Paare werden
// nach dem Rang ihrer konkatenierten Byte-Folge in einer Prioritaets-
// Queue gehalten; das Paar mit dem niedrigsten Rang wird gemergt, bei
// Rang-Gleichstand gewinnt die linkeste Position. Pieces sind als
// doppelt verkettete Liste ueber Indizes verbunden, veraltete Queue-
// Eintraege werden ueber einen Wert-Vergleich erkannt und verworfen.
package tokenizer

import (
	"cmp"

	heap "github.com/emirpasic/gods/v2/trees/binaryheap"
)

// mergePair ist ein benachbartes Piece-Paar mit dem Rang seiner
// konkatenierten Byte-Folge.
type mergePair struct {
	a, b  int
	rank  int32
	value string
}

// mergePiece ist ein Listen-Element; p und n verketten die lebenden
// Pieces, ein leerer value markiert ein wegmergtes Piece.
type mergePiece struct {
	p, n  int
	value string
}

// mergeChunk haengt die Token-IDs eines Chunks an ids an. Dank der
// Einzelbyte-Fallbacks loest jedes ueberlebende Piece zu einer ID auf.
func (t *Tokenizer) mergeChunk(chunk string, ids []int32) []int32 {
	if chunk == "" {
		return ids
	}

	// short circuit if the chunk is in the vocabulary
	if id := t.vocab.Encode(chunk); id >= 0 {
		return append(ids, id)
	}

	pieces := make([]mergePiece, len(chunk))
	for i := range pieces {
		pieces[i] = mergePiece{
			p:     i - 1,
			n:     i + 1,
			value: chunk[i : i+1],
		}
	}

	pairwise := func(a, b int) *mergePair {
		if a < 0 || b >= len(pieces) {
			return nil
		}

		left, right := pieces[a].value, pieces[b].value
		rank := t.vocab.Encode(left + right)
		if rank < 0 {
			return nil
		}

		return &mergePair{
			a:     a,
			b:     b,
			rank:  rank,
			value: left + right,
		}
	}

	pairs := heap.NewWith(func(i, j *mergePair) int {
		if n := cmp.Compare(i.rank, j.rank); n != 0 {
			return n
		}

		// leftmost position wins on equal rank
		return cmp.Compare(i.a, j.a)
	})

	for i := range len(pieces) - 1 {
		if pair := pairwise(i, i+1); pair != nil {
			pairs.Push(pair)
		}
	}

	for !pairs.Empty() {
		pair, _ := pairs.Pop()

		left, right := pieces[pair.a], pieces[pair.b]
		if left.value == "" || right.value == "" || left.value+right.value != pair.value {
			continue
		}

		pieces[pair.a].value = pair.value
		pieces[pair.b].value = ""

		pieces[pair.a].n = right.n
		if right.n < len(pieces) {
			pieces[right.n].p = pair.a
		}

		if pair := pairwise(pieces[pair.a].p, pair.a); pair != nil {
			pairs.Push(pair)
		}

		if pair := pairwise(pair.a, pieces[pair.a].n); pair != nil {
			pairs.Push(pair)
		}
	}

	for _, piece := range pieces {
		if piece.value != "" {
			ids = append(ids, t.vocab.Encode(piece.value))
		}
	}

	return ids
}
