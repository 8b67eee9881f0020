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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of
// errors and warnings that were rendered. The error return is an error
// writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		if !r.ShowRemarks && d.level == Remark {
			continue
		}

		if _, err = io.WriteString(out, r.Diagnostic(d)); err != nil {
			return errorCount, warningCount, err
		}

		switch d.level {
		case ICE, Error:
			errorCount++
		case Warning:
			if r.WarningsAreErrors {
				errorCount++
			} else {
				warningCount++
			}
		}
	}
	if r.Compact {
		return errorCount, warningCount, nil
	}

	c := r.colors()
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.bError, "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.bWarning, "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	errorCount, warningCount, _ = r.Render(report, &buf)
	return buf.String(), errorCount, warningCount
}

// Diagnostic renders a single diagnostic, including a trailing newline.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := r.colors()
	level := d.level
	if level == Warning && r.WarningsAreErrors {
		level = Error
	}

	var out strings.Builder
	primary := d.Primary()

	if r.Compact {
		switch {
		case !primary.IsZero():
			fmt.Fprintf(&out, "%s: ", primary)
		case d.inFile != "":
			fmt.Fprintf(&out, "%s: ", d.inFile)
		}
		fmt.Fprintf(&out, "%s%s:%s %s", c.level(level), level, c.reset, d.message)
		if d.tag != "" && r.ShowDebug {
			fmt.Fprintf(&out, " [%s]", d.tag)
		}
		out.WriteByte('\n')
		return out.String()
	}

	fmt.Fprintf(&out, "%s%s:%s %s%s%s\n", c.level(level), level, c.reset, c.bold, d.message, c.reset)

	// The gutter is wide enough for the largest line number we print.
	gutter := 1
	for _, a := range d.annotations {
		gutter = max(gutter, len(strconv.Itoa(a.End.Line)))
	}
	margin := strings.Repeat(" ", gutter)

	switch {
	case !primary.IsZero():
		fmt.Fprintf(&out, "%s%s-->%s %s\n", margin, c.blue, c.reset, primary)
	case d.inFile != "":
		fmt.Fprintf(&out, "%s%s-->%s %s\n", margin, c.blue, c.reset, d.inFile)
	}

	for _, a := range d.annotations {
		r.snippet(&out, c, margin, level, a)
	}

	for _, note := range d.notes {
		fmt.Fprintf(&out, "%s %s=%s note: %s\n", margin, c.blue, c.reset, note)
	}
	for _, help := range d.help {
		fmt.Fprintf(&out, "%s %s=%s help: %s\n", margin, c.blue, c.reset, help)
	}
	if r.ShowDebug {
		if d.tag != "" {
			fmt.Fprintf(&out, "%s %s=%s debug: tag %s\n", margin, c.blue, c.reset, d.tag)
		}
		for _, debug := range d.debug {
			fmt.Fprintf(&out, "%s %s=%s debug: %s\n", margin, c.blue, c.reset, debug)
		}
		for _, frame := range d.trace {
			fmt.Fprintf(&out, "%s   at %s\n", margin, frame)
		}
	}
	out.WriteByte('\n')
	return out.String()
}

// snippet renders one annotation: the source line it starts on, and a row
// of carets underneath the annotated range.
func (r Renderer) snippet(out *strings.Builder, c colors, margin string, level Level, a annotation) {
	line := a.File.Line(a.Start.Line)
	if a.File == nil || line == "" && a.Len() > 0 {
		if a.message != "" {
			fmt.Fprintf(out, "%s %s=%s %s\n", margin, c.blue, c.reset, a.message)
		}
		return
	}

	var rendered strings.Builder
	stringWidth(0, line, &rendered)

	// Measure where the carets go in terms of terminal columns.
	lineStart := a.Start.Offset - columnBytes(line, a.Start.Column)
	prefix := line[:a.Start.Offset-lineStart]
	end := a.End.Offset - lineStart
	if a.End.Line != a.Start.Line || end > len(line) {
		end = len(line)
	}
	start := stringWidth(0, prefix, nil)
	width := max(1, stringWidth(start, line[len(prefix):end], nil)-start)

	color := c.blue
	caret := "-"
	if a.primary {
		color = c.level(level)
		caret = "^"
	}

	fmt.Fprintf(out, "%s %s|%s\n", margin, c.blue, c.reset)
	fmt.Fprintf(out, "%*d %s|%s %s\n", len(margin), a.Start.Line, c.blue, c.reset, rendered.String())
	fmt.Fprintf(out, "%s %s|%s %s%s%s", margin, c.blue, c.reset,
		strings.Repeat(" ", start), color, strings.Repeat(caret, width))
	if a.message != "" {
		fmt.Fprintf(out, " %s", a.message)
	}
	fmt.Fprintf(out, "%s\n", c.reset)
}

// columnBytes converts a 1-indexed rune column on line into a byte count of
// the text before it.
func columnBytes(line string, column int) int {
	for i := range line {
		if column <= 1 {
			return i
		}
		column--
	}
	return len(line)
}

type colors struct {
	reset, bold, blue, bError, bWarning      string
	ice, error, warning, remark, noteColored string
}

func (r Renderer) colors() colors {
	if !r.Colorize {
		return colors{}
	}
	return colors{
		reset:       "\033[0m",
		bold:        "\033[1m",
		blue:        "\033[1;94m",
		bError:      "\033[1;31m",
		bWarning:    "\033[1;33m",
		ice:         "\033[1;95m",
		error:       "\033[1;31m",
		warning:     "\033[1;33m",
		remark:      "\033[1;96m",
		noteColored: "\033[1m",
	}
}

func (c colors) level(l Level) string {
	switch l {
	case ICE:
		return c.ice
	case Error:
		return c.error
	case Warning:
		return c.warning
	case Remark:
		return c.remark
	default:
		return c.noteColored
	}
}
