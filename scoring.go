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

import "strings"

// Rejection reasons returned by unacceptableSubstitution, ported from the
// real v2/scoring.go's score-rejection sentinels: a diff that introduces one
// of these changes alters the underlying license, so it is rejected
// regardless of how small its token-level edit distance is.
const (
	acceptable = iota
	versionChange
	introducedPhraseChange
	lesserGPLChange
)

// forbiddenPhrases are substrings that, if introduced by an insert diff,
// change which license the text actually is (an exception grant, or a
// different permissive license's name entirely) even though the surrounding
// tokens still look like a close match.
var forbiddenPhrases = []string{
	"autoconf exception", "class path exception", "gcc linking exception",
	"bison exception", "font exception", "imagemagick", "x consortium",
	"apache", "bsd", "affero", "sun standards",
}

// trimDiffRange walks inward from both ends of the diff list, dropping
// leading/trailing runs of non-equal entries. It returns the half-open
// [start, end) range of diffs that contains the first
// through last DiffEqual entries; if there is no equal entry at all it
// returns (0, 0), an empty range.
func trimDiffRange(diffs []Diff) (start, end int) {
	first := -1
	last := -1
	for i, d := range diffs {
		if d.Kind == DiffEqual {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0
	}
	return first, last + 1
}

// countEqualAndEdits counts equal tokens (E) and insert+delete tokens (M)
// across diffs.
func countEqualAndEdits(diffs []Diff) (e, m int) {
	for _, d := range diffs {
		switch d.Kind {
		case DiffEqual:
			e += len(d.Tokens)
		case DiffInsert, DiffDelete:
			m += len(d.Tokens)
		}
	}
	return e, m
}

// confidence computes E / (E + M) inside diffRange, or 0 if the range is
// empty.
func confidence(e, m int) float64 {
	if e+m == 0 {
		return 0
	}
	return float64(e) / float64(e+m)
}

// unacceptableSubstitution walks a diffRange looking for edits that change
// the underlying license rather than merely reformatting it: a version
// number swapped for another, a forbidden exception/license-name phrase
// introduced, or "Lesser" inserted/removed in a GNU context outside a
// warranty clause (GPL vs LGPL). Adapted from the real v2/scoring.go's
// scoreDiffs; unlike that function this one only reports acceptability, not
// a distance, since §4.5's confidence formula already supplies the score.
func unacceptableSubstitution(diffs []Diff) int {
	// prevEqualTail is the full text of the most recent equal run, so the
	// multi-word suffix and "warranty" checks below see the whole context.
	prevEqualTail := ""
	prevDeleteTail := ""

	for _, d := range diffs {
		joined := strings.Join(d.Tokens, " ")
		tail := ""
		if len(d.Tokens) > 0 {
			tail = d.Tokens[len(d.Tokens)-1]
		}

		switch d.Kind {
		case DiffEqual:
			prevEqualTail = joined
			prevDeleteTail = ""

		case DiffDelete:
			if tail == "lesser" && strings.HasSuffix(prevEqualTail, "gnu") {
				if !strings.Contains(prevEqualTail, "warranty") {
					return lesserGPLChange
				}
			}
			prevDeleteTail = tail

		case DiffInsert:
			if len(d.Tokens) > 0 {
				head := d.Tokens[0]
				if isNumeric(head) && strings.HasSuffix(prevEqualTail, "version") {
					if !strings.HasSuffix(prevEqualTail, "the standard version") && !strings.HasSuffix(prevEqualTail, "the contributor version") {
						return versionChange
					}
				}
			}
			for _, p := range forbiddenPhrases {
				if strings.Contains(joined, p) {
					return introducedPhraseChange
				}
			}
			if tail == "lesser" && strings.HasSuffix(prevEqualTail, "gnu") && prevDeleteTail != "library" {
				if !strings.Contains(prevEqualTail, "warranty") {
					return lesserGPLChange
				}
			}
		}
	}
	return acceptable
}
