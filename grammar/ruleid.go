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

import "fmt"

// RuleID identifies a rule of the built-in expression grammar.
//
// The set of IDs is closed: a switch over RuleID that covers every value
// handles every rule the parser can produce.
type RuleID int

const (
	RuleUnknown RuleID = iota

	RuleStatement   // S -> S' CMP_0 A
	RuleAssign      // A -> = S
	RuleAssignEmpty // A -> ε

	RuleEqualChain // CMP_0 -> == S' CMP_0
	RuleEqualEmpty // CMP_0 -> ε

	RuleComparison     // S' -> E CMP_2
	RuleGreater        // CMP_2 -> > E CMP_2
	RuleLess           // CMP_2 -> < E CMP_2
	RuleGreaterEqual   // CMP_2 -> >= E CMP_2
	RuleLessEqual      // CMP_2 -> <= E CMP_2
	RuleComparisonTail // CMP_2 -> ε

	RuleSum      // E -> T E'
	RulePlus     // E' -> '+' T E'
	RuleMinus    // E' -> '-' T E'
	RuleSumEmpty // E' -> ε

	RuleProduct      // T -> REM_0 T'
	RuleTimes        // T' -> '*' REM_0 T'
	RuleDivide       // T' -> '/' REM_0 T'
	RuleProductEmpty // T' -> ε

	RuleRemainder      // REM_0 -> NEG REM_1
	RuleMod            // REM_1 -> % NEG REM_1
	RuleRemainderEmpty // REM_1 -> ε

	RuleNegative // NEG -> - POW_0
	RulePositive // NEG -> POW_0

	RulePowerChain // POW_0 -> F POW_1
	RulePower      // POW_1 -> ^ F POW_1
	RulePowerEmpty // POW_1 -> ε

	RuleFactor // F -> F' P
	RuleParen  // F' -> ( E )
	RuleNumber // F' -> number
	RuleIdent  // F' -> id
	RuleString // F' -> str
	RuleList   // F' -> { L }

	RuleApply      // P -> [ L ] P
	RuleApplyEmpty // P -> ε

	RuleElements      // L -> S L'
	RuleElementsEmpty // L -> ε
	RuleMore          // L' -> , S L'
	RuleMoreEmpty     // L' -> ε

	ruleCount
)

var ruleNames = [...]string{
	RuleStatement:   "S -> S' CMP_0 A",
	RuleAssign:      "A -> = S",
	RuleAssignEmpty: "A -> ε",

	RuleEqualChain: "CMP_0 -> == S' CMP_0",
	RuleEqualEmpty: "CMP_0 -> ε",

	RuleComparison:     "S' -> E CMP_2",
	RuleGreater:        "CMP_2 -> > E CMP_2",
	RuleLess:           "CMP_2 -> < E CMP_2",
	RuleGreaterEqual:   "CMP_2 -> >= E CMP_2",
	RuleLessEqual:      "CMP_2 -> <= E CMP_2",
	RuleComparisonTail: "CMP_2 -> ε",

	RuleSum:      "E -> T E'",
	RulePlus:     "E' -> '+' T E'",
	RuleMinus:    "E' -> '-' T E'",
	RuleSumEmpty: "E' -> ε",

	RuleProduct:      "T -> REM_0 T'",
	RuleTimes:        "T' -> '*' REM_0 T'",
	RuleDivide:       "T' -> '/' REM_0 T'",
	RuleProductEmpty: "T' -> ε",

	RuleRemainder:      "REM_0 -> NEG REM_1",
	RuleMod:            "REM_1 -> % NEG REM_1",
	RuleRemainderEmpty: "REM_1 -> ε",

	RuleNegative: "NEG -> - POW_0",
	RulePositive: "NEG -> POW_0",

	RulePowerChain: "POW_0 -> F POW_1",
	RulePower:      "POW_1 -> ^ F POW_1",
	RulePowerEmpty: "POW_1 -> ε",

	RuleFactor: "F -> F' P",
	RuleParen:  "F' -> ( E )",
	RuleNumber: "F' -> number",
	RuleIdent:  "F' -> id",
	RuleString: "F' -> str",
	RuleList:   "F' -> { L }",

	RuleApply:      "P -> [ L ] P",
	RuleApplyEmpty: "P -> ε",

	RuleElements:      "L -> S L'",
	RuleElementsEmpty: "L -> ε",
	RuleMore:          "L' -> , S L'",
	RuleMoreEmpty:     "L' -> ε",
}

var ruleByName = func() map[string]RuleID {
	m := make(map[string]RuleID, ruleCount)
	for id := RuleStatement; id < ruleCount; id++ {
		m[ruleNames[id]] = id
	}
	return m
}()

// RuleIDs returns every known rule ID, excluding [RuleUnknown].
func RuleIDs() []RuleID {
	out := make([]RuleID, 0, ruleCount-1)
	for id := RuleStatement; id < ruleCount; id++ {
		out = append(out, id)
	}
	return out
}

// LookupRule returns the ID of the built-in rule with the given name.
func LookupRule(name string) (RuleID, bool) {
	id, ok := ruleByName[name]
	return id, ok
}

// Name returns the canonical name of this rule.
func (id RuleID) Name() string {
	if id <= RuleUnknown || id >= ruleCount {
		return ""
	}
	return ruleNames[id]
}

// String implements [fmt.Stringer].
func (id RuleID) String() string {
	if name := id.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("RuleID(%d)", int(id))
}
