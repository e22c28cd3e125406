package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sqlbridge/sql-translator/pkg/logger"
	"github.com/sqlbridge/sql-translator/pkg/rules"
	"github.com/sqlbridge/sql-translator/pkg/translator"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] <sql-file>",
	Short: "Translate a SQL file using a replacement rule set",
	Long: `Translate the SQL statements in a file by applying the replacement
rules configured for the chosen target dialect.

Rules are applied in file order, each to fixpoint, and the rewritten
SQL is written to stdout. An invalid search pattern in the rule set
aborts the translation.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringP("rules", "r", "", "path to rules file (YAML or CSV)")
	translateCmd.Flags().StringP("target", "t", "postgresql", "target dialect")
	translateCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")

	_ = viper.BindPFlag("rules", translateCmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("target", translateCmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("output", translateCmd.Flags().Lookup("output"))
}

// translationReport is the JSON/YAML output shape.
type translationReport struct {
	Target     string `json:"target" yaml:"target"`
	Rules      int    `json:"rules" yaml:"rules"`
	Translated string `json:"translated" yaml:"translated"`
}

func runTranslate(cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelWarn
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(logger.NewWithLevel(logLevel).GetSlogLogger())

	sqlFile := args[0]
	sqlContent, err := os.ReadFile(sqlFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read SQL file: %s", sqlFile)
	}
	slog.Debug("read SQL file", "file", sqlFile, "size", len(sqlContent))

	rulesPath := viper.GetString("rules")
	if rulesPath == "" {
		rulesPath = rules.FindRulesFile()
	}
	if rulesPath == "" {
		return errors.New("no rules file found; pass --rules or add config/rules.yaml")
	}

	ruleFile, err := rules.LoadFile(rulesPath)
	if err != nil {
		return err
	}

	target := viper.GetString("target")
	ruleList := ruleFile.ForTarget(target)
	slog.Debug("selected rules", "target", target, "count", len(ruleList))

	translated, err := translator.Translate(string(sqlContent), ruleList)
	if err != nil {
		return errors.Wrapf(err, "failed to translate %s", sqlFile)
	}

	report := translationReport{
		Target:     target,
		Rules:      len(ruleList),
		Translated: translated,
	}

	switch format := viper.GetString("output"); format {
	case "text":
		fmt.Print(translated)
		return nil
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(report)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}
