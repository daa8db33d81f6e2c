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

// Package report formats the results of scanning one or more files through
// the classifier, as JSON or as a human-readable summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	classifier "github.com/licensefp/licensefp"
)

// Finding is one reported match, naming the file it came from alongside the
// fields carried over from LicenseMatch.
type Finding struct {
	Filename      string  `json:"filename"`
	Identifier    string  `json:"identifier"`
	Confidence    float64 `json:"confidence"`
	MatchType     string  `json:"matchType"`
	Start         int     `json:"start"`
	End           int     `json:"end"`
	TokensClaimed int     `json:"tokensClaimed"`
}

// Findings is a sortable list of Finding, ordered the way the teacher's
// results.LicenseTypes orders its hits: highest confidence first, ties
// broken by filename.
type Findings []Finding

func (f Findings) Len() int      { return len(f) }
func (f Findings) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f Findings) Less(i, j int) bool {
	if f[i].Confidence != f[j].Confidence {
		return f[i].Confidence > f[j].Confidence
	}
	return f[i].Filename < f[j].Filename
}

// FromMatches converts one file's detection results into Findings.
func FromMatches(filename string, matches []*classifier.LicenseMatch) Findings {
	out := make(Findings, 0, len(matches))
	for _, m := range matches {
		out = append(out, Finding{
			Filename:      filename,
			Identifier:    m.Identifier,
			Confidence:    m.Confidence,
			MatchType:     m.MatchType.String(),
			Start:         m.Start,
			End:           m.End,
			TokensClaimed: m.TokensClaimed,
		})
	}
	return out
}

// WriteJSON marshals findings as indented JSON, sorted by confidence.
func WriteJSON(w io.Writer, findings Findings) error {
	sort.Sort(findings)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// confidenceColor picks a terminal color for a confidence value: green at
// or above 0.9, yellow at or above the conventional 0.8 licensing-tools
// threshold, red below it.
func confidenceColor(confidence float64) *color.Color {
	switch {
	case confidence >= 0.9:
		return color.New(color.FgGreen)
	case confidence >= 0.8:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// WriteText writes a human-readable report, one line per finding, with the
// confidence colour-coded the way awslabs-yesiscan's wrapper around this
// classifier presents results to a terminal.
func WriteText(w io.Writer, findings Findings) {
	sort.Sort(findings)
	for _, f := range findings {
		c := confidenceColor(f.Confidence)
		c.Fprintf(w, "%s: %s", f.Filename, f.Identifier)
		fmt.Fprintf(w, " (confidence: %.3f, type: %s, offset: %d, extent: %d)\n",
			f.Confidence, f.MatchType, f.Start, f.End-f.Start)
	}
}
