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

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// dmp is the shared diff/match/patch engine, mirroring the teacher's package-
// level var dmp in stringclassifier/classifier.go.
var dmp = diffmatchpatch.New()

// DiffKind identifies one edit-script entry's relationship to the two token
// streams being compared.
type DiffKind int

const (
	DiffEqual DiffKind = iota
	DiffInsert
	DiffDelete
)

// Diff is one entry of a token-level edit script: a run of token values
// that are either common to both streams (DiffEqual), present only in the
// unknown stream (DiffInsert), or present only in the reference
// (DiffDelete).
type Diff struct {
	Kind   DiffKind
	Tokens []string
}

// tokenRuneEncoder assigns each distinct token value a private-use rune so
// a word-level diff can be computed by a character-level diff engine, the
// same trick diffmatchpatch's own DiffLinesToChars/DiffCharsToLines applies
// to lines.
type tokenRuneEncoder struct {
	valueToRune map[string]rune
	runeToValue []string
	next        rune
}

func newTokenRuneEncoder() *tokenRuneEncoder {
	return &tokenRuneEncoder{
		valueToRune: make(map[string]rune),
		next:        0xE000, // start of the Unicode Private Use Area
	}
}

func (e *tokenRuneEncoder) encode(tokens []Token) []rune {
	out := make([]rune, len(tokens))
	for i, t := range tokens {
		r, ok := e.valueToRune[t.Value]
		if !ok {
			r = e.next
			e.next++
			e.valueToRune[t.Value] = r
			e.runeToValue = append(e.runeToValue, t.Value)
		}
		out[i] = r
	}
	return out
}

func (e *tokenRuneEncoder) decode(r rune) string {
	return e.runeToValue[r-0xE000]
}

// diffTokens computes a minimal token-level edit script between two token
// streams. It encodes each distinct token value to a private-use rune and
// delegates to diffmatchpatch.DiffMainRunes for a
// Myers-class minimal edit distance, then decodes the result back into
// token values.
func diffTokens(reference, unknown []Token) []Diff {
	enc := newTokenRuneEncoder()
	refRunes := enc.encode(reference)
	unkRunes := enc.encode(unknown)

	raw := dmp.DiffMainRunes(refRunes, unkRunes, false)

	diffs := make([]Diff, 0, len(raw))
	for _, d := range raw {
		runes := []rune(d.Text)
		values := make([]string, len(runes))
		for i, r := range runes {
			values[i] = enc.decode(r)
		}
		var kind DiffKind
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			kind = DiffEqual
		case diffmatchpatch.DiffInsert:
			kind = DiffInsert
		case diffmatchpatch.DiffDelete:
			kind = DiffDelete
		}
		diffs = append(diffs, Diff{Kind: kind, Tokens: values})
	}
	return diffs
}
