// cmd_chat.go - Chat Command
// Hauptfunktionen: newChatCmd
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenwerk/tokenwerk/chat"
)

// newChatCmd - Encodiert einen Dialog im Llama-3-Framing
// Liest ein JSON-Array von Messages ({"role","content"}) von stdin und
// gibt die Token-Sequenz inklusive offenem assistant-Header aus.
func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Encode a JSON dialog into framed token ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}

			var messages []chat.Message
			if err := json.NewDecoder(os.Stdin).Decode(&messages); err != nil {
				return fmt.Errorf("read messages: %w", err)
			}

			renderer, err := chat.NewRenderer(tok)
			if err != nil {
				return err
			}

			ids, err := renderer.EncodeDialog(messages)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatIDs(ids))
			return nil
		},
	}
}
