// cmd_encode.go - Encode Command
// Hauptfunktionen: newEncodeCmd, encodeBatch, formatIDs
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tokenwerk/tokenwerk/envconfig"
	"github.com/tokenwerk/tokenwerk/tokenizer"
)

// newEncodeCmd - Encodiert Text in Token-IDs
// Ohne Argument werden Zeilen von stdin gelesen und parallel encodiert.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [TEXT]",
		Short: "Encode text into token ids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}

			ordinary, _ := cmd.Flags().GetBool("ordinary")
			allow, _ := cmd.Flags().GetStringSlice("allow")

			encode := func(s string) ([]int32, error) {
				return encodeText(tok, s, ordinary, allow)
			}

			if len(args) == 1 {
				ids, err := encode(args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), formatIDs(ids))
				return nil
			}

			parallel, _ := cmd.Flags().GetUint("parallel")
			return encodeBatch(cmd, encode, parallel)
		},
	}

	cmd.Flags().Bool("ordinary", false, "Never interpret special token literals in the input")
	cmd.Flags().StringSlice("allow", nil, "Special token literals allowed in the input (or \"all\")")
	cmd.Flags().Uint("parallel", envconfig.Parallel(), "Number of workers for stdin batch encoding")
	return cmd
}

// encodeText - Encodiert einen Text unter Beachtung von --ordinary/--allow
func encodeText(tok *tokenizer.Tokenizer, s string, ordinary bool, allow []string) ([]int32, error) {
	if ordinary {
		return tok.EncodeOrdinary(s), nil
	}

	allowed := tokenizer.AllowedSpecials{}
	for _, literal := range allow {
		if literal == "all" {
			allowed = tok.AllSpecials()
			break
		}

		allowed[literal] = true
	}

	return tok.Encode(s, allowed)
}

// encodeBatch - Encodiert stdin-Zeilen ueber errgroup-Worker
// Die Ausgabe-Reihenfolge entspricht der Eingabe-Reihenfolge.
func encodeBatch(cmd *cobra.Command, encode func(string) ([]int32, error), parallel uint) error {
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	results := make([][]int32, len(lines))

	var g errgroup.Group
	g.SetLimit(max(int(parallel), 1))
	for i, line := range lines {
		g.Go(func() error {
			ids, err := encode(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}

			results[i] = ids
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, ids := range results {
		fmt.Fprintln(cmd.OutOrStdout(), formatIDs(ids))
	}

	return nil
}

// formatIDs - Formatiert IDs als Leerzeichen-getrennte Liste
func formatIDs(ids []int32) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%d", id)
	}

	return sb.String()
}
