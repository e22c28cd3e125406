// Package rules loads ordered replacement rule sets from disk.
//
// Two formats are supported: a YAML document with a top-level rules
// list, and the legacy CSV format (target,pattern,replacement records)
// used by older replacement-pattern files. Rule order in the file is
// application order and is preserved.
package rules

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sqlbridge/sql-translator/pkg/translator"
)

// Rule is one replacement rule as authored in a rules file. Targets
// optionally restricts the rule to the named dialects; an empty list
// applies the rule to every target.
type Rule struct {
	Pattern     string   `yaml:"pattern"`
	Replacement string   `yaml:"replacement"`
	Targets     []string `yaml:"targets,omitempty"`
}

// File is an ordered replacement rule set loaded from disk.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// LoadFile loads a rule set from a YAML or CSV file. Files with a
// .csv extension are parsed as CSV; anything else is tried as YAML
// first with a CSV fallback.
func LoadFile(filename string) (*File, error) {
	slog.Debug("loading rules file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file: %s", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return parseCSV(filename, data)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		slog.Debug("YAML unmarshal failed, trying CSV", "error", err)
		return parseCSV(filename, data)
	}
	slog.Debug("loaded rules", "filename", filename, "count", len(f.Rules))
	return &f, nil
}

// parseCSV reads target,pattern,replacement records. A leading header
// row is skipped when its first field is "target".
func parseCSV(filename string, data []byte) (*File, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = 3
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse rules file: %s", filename)
	}

	f := &File{}
	for i, record := range records {
		if i == 0 && strings.EqualFold(record[0], "target") {
			continue
		}
		rule := Rule{Pattern: record[1], Replacement: record[2]}
		if target := strings.TrimSpace(record[0]); target != "" {
			rule.Targets = []string{target}
		}
		f.Rules = append(f.Rules, rule)
	}
	slog.Debug("loaded rules", "filename", filename, "count", len(f.Rules))
	return f, nil
}

// ForTarget returns the ordered rules that apply when translating to
// the given dialect. Dialect names compare case-insensitively.
func (f *File) ForTarget(target string) []translator.Rule {
	var out []translator.Rule
	for _, rule := range f.Rules {
		if !appliesTo(rule, target) {
			continue
		}
		out = append(out, translator.Rule{
			Pattern:     rule.Pattern,
			Replacement: rule.Replacement,
		})
	}
	return out
}

func appliesTo(rule Rule, target string) bool {
	if len(rule.Targets) == 0 {
		return true
	}
	for _, t := range rule.Targets {
		if strings.EqualFold(t, target) {
			return true
		}
	}
	return false
}

// CompileForTarget compiles the rules for one target dialect, so a
// caller translating many statements pays the compile cost once.
func (f *File) CompileForTarget(target string) ([]translator.CompiledRule, error) {
	return translator.CompileRules(f.ForTarget(target))
}

// FindRulesFile searches upwards from the working directory for a
// default rules file and returns the first hit, or "".
func FindRulesFile() string {
	candidates := []string{
		"config/rules.yaml",
		"rules.yaml",
		"../config/rules.yaml",
		"../../config/rules.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
