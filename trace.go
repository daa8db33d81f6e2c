// Copyright 2024 The licensefp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package classifier

import "fmt"

// This file implements a simple trace execution mechanism for debugging the
// matching algorithm, adapted from the teacher's v2/trace.go. Unlike the
// teacher, this core package takes no dependency on flag parsing or any
// logging library of its own (the ambient logging stack lives at the CLI
// and loader layers instead) — callers opt in programmatically via
// EnableTrace.
//
// The map lookups below incur some overhead; that's acceptable since
// tracing is off by default and this is a debugging aid, not a hot path.

var traceLicenses = map[string]bool{}
var tracePhases = map[string]bool{}

// EnableTrace turns on tracing for the given SPDX identifiers and phase
// names ("tokenize", "candidate", "score", "arbiter"). Of these phases only
// "score" has a trace call site (in alignAndScore); enabling the others
// produces no output. Calling it with no
// arguments is a no-op; calling it again adds to, rather than replaces, the
// existing set.
func EnableTrace(licenses, phases []string) {
	for _, lic := range licenses {
		traceLicenses[lic] = true
	}
	for _, phase := range phases {
		tracePhases[phase] = true
	}
}

// ResetTrace clears every enabled license and phase filter.
func ResetTrace() {
	traceLicenses = map[string]bool{}
	tracePhases = map[string]bool{}
}

func shouldTrace(phase string) bool {
	return tracePhases[phase]
}

func traceTokenize(lic string) bool {
	return traceLicenses[lic] && shouldTrace("tokenize")
}

func traceCandidate(lic string) bool {
	return traceLicenses[lic] && shouldTrace("candidate")
}

func traceScoring(lic string) bool {
	return traceLicenses[lic] && shouldTrace("score")
}

func traceArbiter(lic string) bool {
	return traceLicenses[lic] && shouldTrace("arbiter")
}

type traceFunc func(string, ...interface{}) (int, error)

// Trace holds the function called to emit trace output. Overridable by
// callers (e.g. to route through logrus at the CLI layer); defaults to
// stdout, matching the teacher.
var Trace traceFunc = fmt.Printf
