// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, loadTokenizer, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tokenwerk/tokenwerk/envconfig"
	"github.com/tokenwerk/tokenwerk/logutil"
	"github.com/tokenwerk/tokenwerk/tokenizer"
	"github.com/tokenwerk/tokenwerk/version"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// loadTokenizer - Laedt den Tokenizer aus --vocab bzw. TOKENWERK_VOCAB
func loadTokenizer(cmd *cobra.Command) (*tokenizer.Tokenizer, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		path = envconfig.VocabPath()
	}

	if path == "" {
		return nil, fmt.Errorf("no vocabulary: pass --vocab or set TOKENWERK_VOCAB")
	}

	return tokenizer.FromFile(path)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "tokenwerk",
		Short:         "Byte-level BPE tokenizer for llama-style models",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Println(version.Version)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
	rootCmd.PersistentFlags().String("vocab", "", "Path to the tiktoken rank file")

	encodeCmd := newEncodeCmd()
	decodeCmd := newDecodeCmd()
	chatCmd := newChatCmd()
	specialsCmd := newSpecialsCmd()

	envVars := envconfig.AsMap()
	appendEnvDocs(encodeCmd, []envconfig.EnvVar{envVars["TOKENWERK_VOCAB"], envVars["TOKENWERK_DEBUG"], envVars["TOKENWERK_PARALLEL"]})
	for _, c := range []*cobra.Command{decodeCmd, chatCmd, specialsCmd} {
		appendEnvDocs(c, []envconfig.EnvVar{envVars["TOKENWERK_VOCAB"], envVars["TOKENWERK_DEBUG"]})
	}

	rootCmd.AddCommand(encodeCmd, decodeCmd, chatCmd, specialsCmd)
	return rootCmd
}
