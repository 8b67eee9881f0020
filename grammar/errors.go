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
	"fmt"

	"github.com/bufbuild/exprc/report"
	"github.com/bufbuild/exprc/token"
)

// TagGrammarError is the diagnostic tag for [GrammarError].
const TagGrammarError report.Tag = "grammar-error"

// GrammarError is returned by [Build] when a grammar is not LL(1): two
// rules claim the same table slot.
type GrammarError struct {
	Nonterminal Symbol
	Terminal    token.Kind

	// The rule already in the slot, and the rule that collided with it.
	Existing, Conflicting *Rule
}

// Error implements [error].
func (e *GrammarError) Error() string {
	return fmt.Sprintf(
		"grammar is not LL(1): %q and %q both apply to %s on %s",
		e.Existing.Name, e.Conflicting.Name, e.Nonterminal, e.Terminal.Terminal(),
	)
}

// Diagnose implements [report.Diagnose].
func (e *GrammarError) Diagnose(d *report.Diagnostic) {
	d.Apply(
		TagGrammarError,
		report.Message("grammar is not LL(1)"),
		report.Note("table slot (%s, %s) is claimed by two rules", e.Nonterminal, e.Terminal.Terminal()),
		report.Note("first:  %s", e.Existing.Name),
		report.Note("second: %s", e.Conflicting.Name),
		report.Help("left-factor the rules for %s, or move one of them elsewhere", e.Nonterminal),
	)
}
