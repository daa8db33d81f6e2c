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

// Range is a half-open integer interval [Start, End) over token indices.
type Range struct {
	Start int
	End   int
}

// Overlaps reports whether r and o share any token index.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// MatchType distinguishes a match against a reference's full text from a
// match against only its opening portion, e.g. a ".header" variant loaded
// from the corpus.
type MatchType int

const (
	MatchText MatchType = iota
	MatchHeader
)

func (t MatchType) String() string {
	if t == MatchHeader {
		return "Header"
	}
	return "Text"
}

// LicenseMatch is one detected license occurrence.
type LicenseMatch struct {
	Identifier    string
	Confidence    float64
	Diffs         []Diff
	DiffRange     Range
	Tokens        []Token
	TokensClaimed int
	TokenRange    Range
	MatchType     MatchType
	Start         int // byte offset in the original unknown text
	End           int // byte offset in the original unknown text
}

// rebuildFromTokenRange recomputes Tokens, TokensClaimed and the byte
// Start/End from an authoritative TokenRange. Open Question (b):
// alignAndScore calls it once TokenRange is known, so Tokens and
// TokensClaimed always agree; the arbiter only selects matches and never
// rewrites their TokenRange.
func (m *LicenseMatch) rebuildFromTokenRange(unknown []Token) {
	if m.TokenRange.Start < 0 || m.TokenRange.End > len(unknown) || m.TokenRange.Start >= m.TokenRange.End {
		m.Tokens = nil
		m.TokensClaimed = 0
		return
	}
	m.Tokens = unknown[m.TokenRange.Start:m.TokenRange.End]
	m.TokensClaimed = len(m.Tokens)
	m.Start = m.Tokens[0].Span.Start
	m.End = m.Tokens[len(m.Tokens)-1].Span.End
}
