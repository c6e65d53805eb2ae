// cmd_decode.go - Decode Command
// Hauptfunktionen: newDecodeCmd
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// newDecodeCmd - Decodiert Token-IDs zurueck zu Text
// IDs kommen aus den Argumenten oder Whitespace-getrennt von stdin.
// Die Ausgabe sind rohe Bytes; keine UTF-8-Validierung.
func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [ID...]",
		Short: "Decode token ids back into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}

			fields := args
			if len(fields) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				scanner.Split(bufio.ScanWords)
				for scanner.Scan() {
					fields = append(fields, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			ids := make([]int32, len(fields))
			for i, field := range fields {
				n, err := strconv.ParseInt(field, 10, 32)
				if err != nil {
					return fmt.Errorf("invalid token id %q: %w", field, err)
				}

				ids[i] = int32(n)
			}

			text, err := tok.Decode(ids)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
