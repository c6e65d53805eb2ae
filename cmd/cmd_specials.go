// cmd_specials.go - Specials Command
// Hauptfunktionen: newSpecialsCmd
package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// newSpecialsCmd - Listet die Special-Token-Registry
// reserved-Platzhalter werden ohne --all zu einer Zeile zusammengefasst.
func newSpecialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specials",
		Short: "List the special token registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := loadTokenizer(cmd)
			if err != nil {
				return err
			}

			all, _ := cmd.Flags().GetBool("all")

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"LITERAL", "ID"})
			table.SetBorder(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			reserved := 0
			for _, special := range tok.Vocabulary().SpecialTokens() {
				if !all && strings.HasPrefix(special.Literal, "<|reserved_special_token_") {
					reserved++
					continue
				}

				table.Append([]string{special.Literal, strconv.Itoa(int(special.ID))})
			}

			if reserved > 0 {
				table.Append([]string{"<|reserved_special_token_*|>", strconv.Itoa(reserved) + " slots"})
			}

			table.Render()
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "List reserved placeholder tokens individually")
	return cmd
}
