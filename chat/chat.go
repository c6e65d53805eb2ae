// Package chat implementiert das Dialog-Framing der Llama-3-Familie
// ueber dem Tokenizer.
//
// Modul: chat.go - Message- und Dialog-Encoding
// Enthaelt: Message, Renderer, EncodeMessage, EncodeDialog
//
// Die emittierte Token-Reihenfolge ist Protokoll-Kontrakt, kein
// Implementierungsdetail: jede Abweichung erzeugt Sequenzen, die zu
// einem auf diesem Framing trainierten Modell inkompatibel sind.
// Pro Message: start-header, Rolle, end-header, "\n\n", Inhalt,
// end-of-turn. Rolle und Inhalt laufen durch EncodeOrdinary und koennen
// deshalb nie Steuer-Tokens einschleusen.
package chat

import (
	"fmt"
	"slices"

	"github.com/tokenwerk/tokenwerk/tokenizer"
)

// Message ist ein (Rolle, Inhalt)-Paar eines Dialogs.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// roles ist die geschlossene Rollen-Menge des Framings.
var roles = []string{"system", "user", "assistant", "ipython"}

// Renderer bindet das Framing an einen Tokenizer; die vier Steuer-IDs
// werden bei der Konstruktion aufgeloest.
type Renderer struct {
	tok *tokenizer.Tokenizer

	beginOfText int32
	startHeader int32
	endHeader   int32
	endOfTurn   int32
}

// NewRenderer baut einen Renderer. Fehlt eines der Framing-Literale im
// Vokabular, schlaegt die Konstruktion fehl.
func NewRenderer(tok *tokenizer.Tokenizer) (*Renderer, error) {
	r := Renderer{tok: tok}

	vocab := tok.Vocabulary()
	for _, s := range []struct {
		literal string
		id      *int32
	}{
		{tokenizer.BeginOfText, &r.beginOfText},
		{tokenizer.StartHeaderID, &r.startHeader},
		{tokenizer.EndHeaderID, &r.endHeader},
		{tokenizer.EndOfTurn, &r.endOfTurn},
	} {
		id, ok := vocab.SpecialID(s.literal)
		if !ok {
			return nil, fmt.Errorf("vocabulary has no special token %q", s.literal)
		}

		*s.id = id
	}

	return &r, nil
}

// encodeHeader emittiert start-header, Rolle, end-header und die beiden
// Trenn-Newlines.
func (r *Renderer) encodeHeader(role string, ids []int32) []int32 {
	ids = append(ids, r.startHeader)
	ids = append(ids, r.tok.EncodeOrdinary(role)...)
	ids = append(ids, r.endHeader)
	ids = append(ids, r.tok.EncodeOrdinary("\n\n")...)
	return ids
}

// EncodeMessage emittiert eine Message als Token-Sequenz inklusive
// end-of-turn.
func (r *Renderer) EncodeMessage(m Message) ([]int32, error) {
	if !slices.Contains(roles, m.Role) {
		return nil, fmt.Errorf("unknown role %q", m.Role)
	}

	ids := r.encodeHeader(m.Role, []int32{})
	ids = append(ids, r.tok.EncodeOrdinary(m.Content)...)
	ids = append(ids, r.endOfTurn)
	return ids, nil
}

// EncodeDialog emittiert begin-of-text, alle Messages in Reihenfolge und
// einen offenen assistant-Header ohne end-of-turn, an dem das Modell
// weitergeneriert.
func (r *Renderer) EncodeDialog(messages []Message) ([]int32, error) {
	ids := []int32{r.beginOfText}
	for _, m := range messages {
		mids, err := r.EncodeMessage(m)
		if err != nil {
			return nil, err
		}

		ids = append(ids, mids...)
	}

	return r.encodeHeader("assistant", ids), nil
}
