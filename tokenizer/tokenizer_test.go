// tokenizer_test.go - Unit Tests fuer Encode/Decode
//
// Testet Round-Trips, Determinismus und die Special-Token-Allow-Liste.
package tokenizer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestRoundTrip: decode(encode(text)) liefert die Input-Bytes fuer Text
// ohne Special-Literale
func TestRoundTrip(t *testing.T) {
	tok := newTestTokenizer(t, "he", "ll", "llo", "hello", " w", "or", "ld")

	inputs := []string{
		"hello world",
		"it's 123456!",
		"  leading and trailing  ",
		"mixed CASE, punct!? and\nnewlines\r\n",
		"umlauts äöü and emoji 🙂",
		"tab\tand\x00null bytes",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ids, err := tok.Encode(input, tok.AllSpecials())
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			decoded, err := tok.Decode(ids)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if decoded != input {
				t.Errorf("Round-Trip = %q, want %q", decoded, input)
			}
		})
	}
}

// TestDeterminism: Encode ist eine reine Funktion von (Text, Allow-Liste)
func TestDeterminism(t *testing.T) {
	tok := newTestTokenizer(t, "he", "llo")

	input := "hello hello hello " + EndOfTurn
	first, err := tok.Encode(input, tok.AllSpecials())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for range 10 {
		got, err := tok.Encode(input, tok.AllSpecials())
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("Encode nicht deterministisch: %v vs %v", got, first)
		}
	}
}

func TestSpecialTokens(t *testing.T) {
	tok := newTestTokenizer(t)
	eot, _ := tok.Vocabulary().SpecialID(EndOfTurn)

	t.Run("nicht erlaubt wird abgelehnt", func(t *testing.T) {
		_, err := tok.Encode("bye"+EndOfTurn, nil)

		var specialErr *SpecialTokenError
		if !errors.As(err, &specialErr) {
			t.Fatalf("Fehler %v, want SpecialTokenError", err)
		}
		if specialErr.Literal != EndOfTurn {
			t.Errorf("Literal = %q, want %q", specialErr.Literal, EndOfTurn)
		}
		if specialErr.Offset != len("bye") {
			t.Errorf("Offset = %d, want %d", specialErr.Offset, len("bye"))
		}
	})

	t.Run("erlaubt liefert feste ID", func(t *testing.T) {
		ids, err := tok.Encode("bye"+EndOfTurn, AllowedSpecials{EndOfTurn: true})
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}

		want := []int32{'b', 'y', 'e', eot}
		if !reflect.DeepEqual(ids, want) {
			t.Errorf("Encode = %v, want %v", ids, want)
		}

		decoded, err := tok.Decode(ids)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if decoded != "bye"+EndOfTurn {
			t.Errorf("Decode = %q", decoded)
		}
	})

	t.Run("EncodeOrdinary interpretiert nie", func(t *testing.T) {
		ids := tok.EncodeOrdinary("bye" + EndOfTurn)

		for _, id := range ids {
			if tok.Vocabulary().IsSpecial(id) {
				t.Fatalf("EncodeOrdinary emittierte Special-ID %d", id)
			}
		}

		decoded, err := tok.Decode(ids)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if decoded != "bye"+EndOfTurn {
			t.Errorf("Round-Trip = %q", decoded)
		}
	})

	t.Run("laengstes Literal gewinnt", func(t *testing.T) {
		// ein kuerzeres Literal, das Praefix eines laengeren ist, darf den
		// Treffer am gleichen Offset nicht verdecken
		vocab, err := NewVocabulary(byteValues(), BeginOfText, EndOfText,
			SpecialToken{Literal: BeginOfText, ID: 256},
			SpecialToken{Literal: EndOfText, ID: 257},
			SpecialToken{Literal: "<|a|>", ID: 258},
			SpecialToken{Literal: "<|a|>x|>", ID: 259},
		)
		if err != nil {
			t.Fatalf("NewVocabulary: %v", err)
		}

		prefixTok, err := New(vocab)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		ids, err := prefixTok.Encode("<|a|>x|>", prefixTok.AllSpecials())
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}

		if !reflect.DeepEqual(ids, []int32{259}) {
			t.Errorf("Encode = %v, want [259]", ids)
		}
	})
}

func TestDecodeUnknownID(t *testing.T) {
	tok := newTestTokenizer(t)

	var unknownErr *UnknownTokenError
	if _, err := tok.Decode([]int32{0, 65, 99999}); !errors.As(err, &unknownErr) {
		t.Fatalf("Fehler %v, want UnknownTokenError", err)
	}
	if unknownErr.ID != 99999 {
		t.Errorf("ID = %d, want 99999", unknownErr.ID)
	}
}

// TestConcurrentEncode: ein Tokenizer darf ohne Synchronisation geteilt
// werden
func TestConcurrentEncode(t *testing.T) {
	tok := newTestTokenizer(t, "he", "llo")

	input := strings.Repeat("hello world ", 32)
	want, err := tok.Encode(input, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	done := make(chan []int32)
	for range 8 {
		go func() {
			ids, _ := tok.Encode(input, nil)
			done <- ids
		}()
	}

	for range 8 {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Fatalf("paralleler Encode divergiert")
		}
	}
}
