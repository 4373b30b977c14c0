// Package rulesfile loads the courier allocation rule table from a YAML document.
//
// File format:
//
//	rules:
//	  - courier: BlueDart
//	    max_weight: 10
//	    region: Metro
//	  - courier: Delhivery
//	    max_weight: 20
//	    region: Urban
//
// Rules keep their file order, which is also the order the allocator evaluates them in.
package rulesfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"orderintake/internal/core/domain/model/kernel"
	"orderintake/internal/core/domain/model/rule"

	"gopkg.in/yaml.v3"
)

var ErrNoRules = errors.New("rules file contains no rules")

type document struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Courier   string  `yaml:"courier"`
	MaxWeight float64 `yaml:"max_weight"`
	Region    string  `yaml:"region"`
}

// Load reads the table from path. An empty path selects rule.DefaultTable.
func Load(path string) (rule.Table, error) {
	if path == "" {
		return rule.DefaultTable(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return rule.Table{}, fmt.Errorf("opening rules file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return rule.Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// Parse decodes a rules document. Unknown keys are rejected so typos such as
// "max_wieght" fail at startup instead of silently producing a zero limit.
func Parse(r io.Reader) (rule.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return rule.Table{}, fmt.Errorf("reading rules: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc document
	if err = dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return rule.Table{}, ErrNoRules
		}
		return rule.Table{}, fmt.Errorf("decoding rules: %w", err)
	}

	if len(doc.Rules) == 0 {
		return rule.Table{}, ErrNoRules
	}

	rules := make([]rule.Rule, 0, len(doc.Rules))
	for i, entry := range doc.Rules {
		maxWeight, err := kernel.NewWeight(entry.MaxWeight)
		if err != nil {
			return rule.Table{}, fmt.Errorf("rule #%d: %w", i+1, err)
		}

		r, err := rule.NewRule(entry.Courier, maxWeight, entry.Region)
		if err != nil {
			return rule.Table{}, fmt.Errorf("rule #%d: %w", i+1, err)
		}

		rules = append(rules, r)
	}

	return rule.NewTable(rules...)
}
