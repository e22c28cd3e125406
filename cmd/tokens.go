package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sqlbridge/sql-translator/pkg/translator"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] <sql-file>",
	Short: "Dump the token stream for a SQL file",
	Long: `Dump the tokens the matcher will see for a SQL file, with their byte
offsets. Useful when authoring search patterns: a pattern matches
token-by-token, so this shows exactly what a pattern has to line up
against.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringP("output", "o", "text", "output format (text, json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	sqlFile := args[0]
	sqlContent, err := os.ReadFile(sqlFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read SQL file: %s", sqlFile)
	}

	tokens := translator.Tokenize(string(sqlContent))

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tokens)
	case "text":
		for _, token := range tokens {
			fmt.Printf("%5d..%-5d %s\n", token.Start, token.End, token.Text)
		}
		return nil
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}
