// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grammar

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the YAML form of a grammar.
//
//	start: S
//	rules:
//	  - "S -> E"
//	  - "E -> number E'"
//	  - "E' -> '+' number E'"
//	  - "E' -> ε"
type document struct {
	Start string   `yaml:"start"`
	Rules []string `yaml:"rules"`
}

// Load parses a grammar from YAML.
//
// Rules whose name matches a rule of the built-in grammar are given that
// rule's [RuleID].
func Load(data []byte) (*Grammar, error) {
	var s document
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	if s.Start == "" {
		return nil, errors.New("grammar: missing start symbol")
	}

	rules := make([]*Rule, 0, len(s.Rules))
	for _, name := range s.Rules {
		r, err := ParseRule(name)
		if err != nil {
			return nil, fmt.Errorf("grammar: %w", err)
		}
		r.ID, _ = LookupRule(name)
		rules = append(rules, r)
	}

	g, err := New(s.Start, rules...)
	if err != nil {
		return nil, fmt.Errorf("grammar: %w", err)
	}
	return g, nil
}
