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
	"errors"
	"fmt"
	"runtime"
	rtdebug "runtime/debug"
	"strings"
)

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set the diagnostic's level; that is set by
	// the diagnostics framework.
	Diagnose(*Diagnostic)
}

// Report is a collection of diagnostics.
//
// Report is not thread-safe (in the sense that distinct goroutines should
// not all write to Report at the same time). Instead, the recommendation is
// to create one report per goroutine and then combine them with
// [Report.Merge].
type Report struct {
	Options

	// The actual diagnostics on this report. Generally, you'll want to use one of
	// the helpers like [Report.Error] instead of appending directly.
	Diagnostics []Diagnostic
}

// Options for how a report should be constructed.
type Options struct {
	// If set, diagnostics will capture a Go stack trace, up to this many
	// frames, at the point they are pushed. This is in addition to
	// the EXPRC_DEBUG environment variable.
	Tracing int
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	return r.diagnose(err, Error)
}

// Warnf creates an ad-hoc warning diagnostic with the given message; analogous
// to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, Warning).Apply(Message(format, args...))
}

// Remarkf creates an ad-hoc remark diagnostic with the given message; analogous
// to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(1, Remark).Apply(Message(format, args...))
}

// Push pushes an arbitrary error onto this report.
//
// If err implements [Diagnose], it is used to build the diagnostic. Errors
// with a [Diagnose] in their chain are unwrapped to it. Anything else becomes
// an error-level diagnostic whose message is err.Error().
func (r *Report) Push(err error) *Diagnostic {
	if err == nil {
		return nil
	}

	var diagnose Diagnose
	if errors.As(err, &diagnose) {
		level := Error
		var leveled interface{ Level() Level }
		if errors.As(err, &leveled) {
			level = leveled.Level()
		}
		return r.diagnose(diagnose, level)
	}

	d := r.push(1, Error).Apply(Message("%v", err))
	d.err = err
	return d
}

// ErrorCount returns the number of ICE and error diagnostics in this report.
func (r *Report) ErrorCount() int {
	var n int
	for i := range r.Diagnostics {
		if l := r.Diagnostics[i].level; l == Error || l == ICE {
			n++
		}
	}
	return n
}

// HasErrors returns whether this report contains any errors.
func (r *Report) HasErrors() bool {
	return r.ErrorCount() > 0
}

// Tags returns the tags of every diagnostic in this report, in order.
func (r *Report) Tags() []Tag {
	tags := make([]Tag, 0, len(r.Diagnostics))
	for i := range r.Diagnostics {
		tags = append(tags, r.Diagnostics[i].tag)
	}
	return tags
}

// Merge appends the diagnostics of every other report onto r.
func (r *Report) Merge(others ...*Report) {
	for _, other := range others {
		if other != nil {
			r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
		}
	}
}

// CatchICE will recover a panic (an internal error) and append it to this
// report as an ICE diagnostic.
//
// If resume is false, CatchICE will place the ICE into the report and then
// re-panic the same error.
//
// Must be called as defer r.CatchICE(...). diagnose, if not nil, is called to
// apply additional options to the ICE diagnostic.
func (r *Report) CatchICE(resume bool, diagnose func(*Diagnostic)) {
	panicked := recover()
	if panicked == nil {
		return
	}

	d := r.push(1, ICE).Apply(
		Message("unexpected panic; this is a bug"),
		Note("panic: %v", panicked),
		Debug("%s", rtdebug.Stack()),
	)
	if err, ok := panicked.(error); ok {
		d.err = err
	}
	if diagnose != nil {
		diagnose(d)
	}

	if !resume {
		panic(panicked)
	}
}

func (r *Report) diagnose(err Diagnose, level Level) *Diagnostic {
	d := r.push(2, level)
	d.err = err
	err.Diagnose(d)
	return d
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{level: level})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	frames := r.Tracing
	if frames == 0 && debugMode {
		frames = 64
	}
	if frames > 0 {
		pc := make([]uintptr, frames)
		pc = pc[:runtime.Callers(skip+2, pc)]

		trace := runtime.CallersFrames(pc)
		for {
			frame, more := trace.Next()
			if frame.Function != "" {
				d.trace = append(d.trace, fmt.Sprintf("%s\n\t%s:%d", frame.Function, frame.File, frame.Line))
			}
			if !more {
				break
			}
		}
	}

	return d
}

// String implements [fmt.Stringer], rendering the report compactly.
func (r *Report) String() string {
	var out strings.Builder
	_, _, _ = Renderer{Compact: true}.Render(r, &out)
	return out.String()
}
